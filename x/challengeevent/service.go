//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package challengeevent

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

var tracer = otel.Tracer("challengeevent")

// Service is the interface for challenge event service
type Service interface {
	Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], challengeID string, input CreateInput) (core.ChallengeEvent, error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.ChallengeEvent, error)
	ListByChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Read], challengeID string, page core.Pagination) (core.Page[core.ChallengeEvent], error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.ChallengeEvent, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Check(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Check], id string) (core.ChallengeEventCheck, error)
	ListChecks(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string, page core.Pagination) (core.Page[core.ChallengeEventCheck], error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
}

// NewService creates a new challenge event service
func NewService(repository Repository) Service {
	return &service{repository}
}

func checkPeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return core.NewErrorBadRequest("endDatetime must not be before startDatetime")
	}
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

func (s *service) Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], challengeID string, input CreateInput) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Create")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.ChallengeEvent{}, err
	}

	if err := checkPeriod(input.StartDatetime, input.EndDatetime); err != nil {
		return core.ChallengeEvent{}, err
	}

	created, err := s.repository.Create(ctx, core.ChallengeEvent{
		ID:            xid.New().String(),
		ChallengeID:   challengeID,
		AccountID:     actor.ID(),
		Title:         input.Title,
		Description:   input.Description,
		StartDatetime: input.StartDatetime,
		EndDatetime:   input.EndDatetime,
	})
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEvent{}, err
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.ChallengeEvent{}, err
	}

	return s.repository.Get(ctx, id)
}

func (s *service) ListByChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Read], challengeID string, page core.Pagination) (core.Page[core.ChallengeEvent], error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.ListByChallenge")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.ChallengeEvent]{}, err
	}

	events, total, err := s.repository.ListByChallenge(ctx, challengeID, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.ChallengeEvent]{}, err
	}

	return core.NewPage(events, total, page), nil
}

func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.ChallengeEvent{}, err
	}

	event, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.ChallengeEvent{}, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.StartDatetime != nil {
		event.StartDatetime = input.StartDatetime
	}
	if input.EndDatetime != nil {
		event.EndDatetime = input.EndDatetime
	}
	if input.IsFinished != nil {
		event.IsFinished = *input.IsFinished
	}

	if err := checkPeriod(event.StartDatetime, event.EndDatetime); err != nil {
		return core.ChallengeEvent{}, err
	}

	updated, err := s.repository.Update(ctx, event)
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEvent{}, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Delete")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	slog.InfoContext(
		ctx, "challenge event deleted",
		slog.String("module", "challengeevent"),
		slog.String("event", id),
		slog.String("by", actor.ID()),
	)

	return nil
}

func (s *service) Check(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Check], id string) (core.ChallengeEventCheck, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.Check")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.ChallengeEventCheck{}, err
	}

	check, err := s.repository.Check(ctx, core.ChallengeEventCheck{
		ChallengeEventID: id,
		AccountID:        actor.ID(),
	})
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEventCheck{}, err
	}

	return check, nil
}

func (s *service) ListChecks(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string, page core.Pagination) (core.Page[core.ChallengeEventCheck], error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Service.ListChecks")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.ChallengeEventCheck]{}, err
	}

	checks, total, err := s.repository.ListChecks(ctx, id, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.ChallengeEventCheck]{}, err
	}

	return core.NewPage(checks, total, page), nil
}
