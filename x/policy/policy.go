// Package policy gates operations on capability tokens issued by authorization checks
package policy

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

var tracer = otel.Tracer("policy")

// Predicate decides whether actor may perform the action. It may perform I/O.
type Predicate func(ctx context.Context, actor core.Actor) (bool, error)

// Effect is a deferred operation producing T
type Effect[T any] func(ctx context.Context) (T, error)

// Policy is a deferred authorization check for (E, A)
type Policy[E Entity, A Action] func(ctx context.Context) (AuthorizedActor[E, A], error)

// Gated is an operation that can only run with a capability for (E, A)
type Gated[E Entity, A Action, T any] func(ctx context.Context, actor AuthorizedActor[E, A]) (T, error)

// New builds a policy for (E, A).
//
// Each evaluation reads the actor bound to ctx and calls predicate exactly once.
// No actor yields core.ErrorUnauthenticated without calling predicate.
// A predicate error is returned unchanged; false yields core.ErrorUnauthorized.
func New[E Entity, A Action](predicate Predicate, reason ...string) Policy[E, A] {
	return func(ctx context.Context) (AuthorizedActor[E, A], error) {
		var entity E
		var action A

		ctx, span := tracer.Start(ctx, "Policy.Evaluate")
		defer span.End()

		span.SetAttributes(
			attribute.String("Entity", entity.EntityName()),
			attribute.String("Action", action.ActionName()),
		)

		actor, err := core.CurrentActor(ctx)
		if err != nil {
			span.RecordError(err)
			return AuthorizedActor[E, A]{}, err
		}
		span.SetAttributes(attribute.String("ActorID", actor.ID))

		ok, err := predicate(ctx, actor)
		if err != nil {
			span.RecordError(err)
			return AuthorizedActor[E, A]{}, err
		}

		if !ok {
			denied := core.NewErrorUnauthorized(actor.ID, entity.EntityName(), action.ActionName(), strings.Join(reason, " "))
			span.RecordError(denied)
			slog.DebugContext(
				ctx, "policy denied",
				slog.String("module", "policy"),
				slog.String("actor", actor.ID),
				slog.String("entity", denied.Entity),
				slog.String("action", denied.Action),
			)
			return AuthorizedActor[E, A]{}, denied
		}

		return issue[E, A](actor), nil
	}
}

// Use runs p and, only if it passes, op. The capability is discarded and op's result is returned unchanged.
func Use[E Entity, A Action, T any](p Policy[E, A], op Effect[T]) Effect[T] {
	return func(ctx context.Context) (T, error) {
		if _, err := p(ctx); err != nil {
			var zero T
			return zero, err
		}
		return op(ctx)
	}
}

// Compose runs a then b and returns b's capability. b is not evaluated when a fails.
func Compose[E1 Entity, A1 Action, E2 Entity, A2 Action](a Policy[E1, A1], b Policy[E2, A2]) Policy[E2, A2] {
	return func(ctx context.Context) (AuthorizedActor[E2, A2], error) {
		if _, err := a(ctx); err != nil {
			return AuthorizedActor[E2, A2]{}, err
		}
		return b(ctx)
	}
}

// Require declares that op needs a capability for (E, A).
// It performs no policy check; it rejects a token that no check issued before op runs.
func Require[E Entity, A Action, T any](op Gated[E, A, T]) Gated[E, A, T] {
	return func(ctx context.Context, actor AuthorizedActor[E, A]) (T, error) {
		if err := actor.Verify(); err != nil {
			var zero T
			return zero, err
		}
		return op(ctx, actor)
	}
}

// Grant runs p and hands the issued capability to op
func Grant[E Entity, A Action, T any](p Policy[E, A], op Gated[E, A, T]) Effect[T] {
	return func(ctx context.Context) (T, error) {
		actor, err := p(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		return Require(op)(ctx, actor)
	}
}

// WithSystemActor runs op as the system actor without any check.
// Only for operations open to anyone, such as sign-up and sign-in.
func WithSystemActor[E Entity, A Action, T any](op Gated[E, A, T]) Effect[T] {
	return func(ctx context.Context) (T, error) {
		return Require(op)(ctx, issue[E, A](core.SystemActor))
	}
}
