package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

type testPost struct{}

func (testPost) EntityName() string { return "post" }

type testComment struct{}

func (testComment) EntityName() string { return "comment" }

var (
	user1  = core.Actor{ID: "u1", Role: core.RoleUser}
	admin1 = core.Actor{ID: "admin1", Role: core.RoleAdmin}
)

// in-memory stand-in for a post repository lookup
type postOwners map[string]string

func (p postOwners) canUpdate(postID string) Policy[testPost, Update] {
	return New[testPost, Update](func(ctx context.Context, actor core.Actor) (bool, error) {
		owner, ok := p[postID]
		if !ok {
			return false, core.NewErrorNotFound("post", postID)
		}
		return actor.ID == owner || actor.IsAdmin(), nil
	}, "only the author or an admin may update a post")
}

func spy(result bool, err error) (Predicate, *int) {
	count := 0
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		count++
		return result, err
	}, &count
}

func TestPolicyTruePredicateIssuesToken(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	pred, count := spy(true, nil)
	token, err := New[testPost, Update](pred)(ctx)
	if assert.NoError(t, err) {
		assert.NoError(t, token.Verify())
		assert.Equal(t, "u1", token.ID())
		assert.Equal(t, "post", token.Entity())
		assert.Equal(t, "update", token.Action())
		assert.Equal(t, user1, token.Actor())
	}
	assert.Equal(t, 1, *count)
}

func TestPolicyFalsePredicateIsDenied(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	pred, count := spy(false, nil)
	_, err := New[testPost, Delete](pred, "not yours")(ctx)

	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "u1", denied.ActorID)
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "delete", denied.Action)
		assert.Equal(t, "not yours", denied.Reason)
	}
	assert.Equal(t, 1, *count)
}

func TestPolicyWithoutActorIsUnauthenticated(t *testing.T) {
	for _, result := range []bool{true, false} {
		pred, count := spy(result, nil)
		_, err := New[testPost, Read](pred)(context.Background())

		var unauthenticated core.ErrorUnauthenticated
		assert.ErrorAs(t, err, &unauthenticated)

		var denied core.ErrorUnauthorized
		assert.False(t, errors.As(err, &denied))
		assert.Equal(t, 0, *count, "predicate must not run without an actor")
	}
}

func TestPolicyPredicateErrorPassesThrough(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	owners := postOwners{"p1": "u1"}
	_, err := owners.canUpdate("missing")(ctx)

	var notFound core.ErrorNotFound
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "missing", notFound.ID)
	}
	var denied core.ErrorUnauthorized
	assert.False(t, errors.As(err, &denied))

	boom := errors.New("connection reset")
	pred, _ := spy(false, boom)
	_, err = New[testPost, Read](pred)(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestPolicyOwnershipScenario(t *testing.T) {
	owners := postOwners{"p1": "u1", "p2": "u2"}
	ctx := core.WithActor(context.Background(), user1)

	token, err := owners.canUpdate("p1")(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, "post", token.Entity())
		assert.Equal(t, "update", token.Action())
	}

	_, err = owners.canUpdate("p2")(ctx)
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, core.ErrorUnauthorized{
			ActorID: "u1",
			Entity:  "post",
			Action:  "update",
			Reason:  "only the author or an admin may update a post",
		}, denied)
	}
}

func TestPolicyAdminScenario(t *testing.T) {
	owners := postOwners{"p1": "u1", "p2": "u2"}
	ctx := core.WithActor(context.Background(), admin1)

	canDelete := func(postID string) Policy[testPost, Delete] {
		return New[testPost, Delete](func(ctx context.Context, actor core.Actor) (bool, error) {
			return owners[postID] == actor.ID || actor.IsAdmin(), nil
		})
	}

	for id := range owners {
		token, err := canDelete(id)(ctx)
		if assert.NoError(t, err) {
			assert.Equal(t, "admin1", token.ID())
		}
	}
}

func TestPolicyReevaluatesEveryCall(t *testing.T) {
	owners := postOwners{"p1": "u1"}
	ctx := core.WithActor(context.Background(), user1)

	p := owners.canUpdate("p1")

	_, err := p(ctx)
	assert.NoError(t, err)
	_, err = p(ctx)
	assert.NoError(t, err, "unchanged state yields the same decision")

	// ownership transferred between calls
	owners["p1"] = "u2"

	_, err = p(ctx)
	var denied core.ErrorUnauthorized
	assert.ErrorAs(t, err, &denied)
}

func TestUseShortCircuits(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	ran := 0
	op := func(ctx context.Context) (string, error) {
		ran++
		return "done", nil
	}

	deny, _ := spy(false, nil)
	result, err := Use(New[testPost, Update](deny), op)(ctx)
	assert.Error(t, err)
	assert.Equal(t, "", result)
	assert.Equal(t, 0, ran)

	allow, _ := spy(true, nil)
	result, err = Use(New[testPost, Update](allow), op)(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 1, ran)
}

func TestUseReturnsOperationErrorUnchanged(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	opErr := core.NewErrorAlreadyExists("like")
	allow, _ := spy(true, nil)
	_, err := Use(New[testPost, Like](allow), func(ctx context.Context) (int, error) {
		return 0, opErr
	})(ctx)
	assert.Equal(t, opErr, err)
}

func TestComposeFailFast(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	denyA, countA := spy(false, nil)
	allowB, countB := spy(true, nil)

	_, err := Compose(New[testPost, Read](denyA), New[testComment, Create](allowB))(ctx)
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "read", denied.Action)
	}
	assert.Equal(t, 1, *countA)
	assert.Equal(t, 0, *countB, "second policy must not run after the first fails")
}

func TestComposeReturnsSecondToken(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	allowA, countA := spy(true, nil)
	allowB, countB := spy(true, nil)

	token, err := Compose(New[testPost, Read](allowA), New[testComment, Create](allowB))(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, "comment", token.Entity())
		assert.Equal(t, "create", token.Action())
	}
	assert.Equal(t, 1, *countA)
	assert.Equal(t, 1, *countB)

	denyB, _ := spy(false, nil)
	_, err = Compose(New[testPost, Read](allowA), New[testComment, Create](denyB))(ctx)
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "comment", denied.Entity)
	}
}

func TestRequireRejectsUnissuedToken(t *testing.T) {
	ran := 0
	op := Require(func(ctx context.Context, actor AuthorizedActor[testPost, Update]) (string, error) {
		ran++
		return actor.ID(), nil
	})

	_, err := op(context.Background(), AuthorizedActor[testPost, Update]{})
	var denied core.ErrorUnauthorized
	if assert.ErrorAs(t, err, &denied) {
		assert.Equal(t, "post", denied.Entity)
		assert.Equal(t, "update", denied.Action)
	}
	assert.Equal(t, 0, ran)
}

func TestRequireDoesNotCheck(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	allow, count := spy(true, nil)
	token, err := New[testPost, Update](allow)(ctx)
	assert.NoError(t, err)

	op := Require(func(ctx context.Context, actor AuthorizedActor[testPost, Update]) (string, error) {
		return actor.ID(), nil
	})
	id, err := op(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, 1, *count, "require must not evaluate any policy")
}

func TestGrant(t *testing.T) {
	ctx := core.WithActor(context.Background(), user1)

	ran := 0
	op := func(ctx context.Context, actor AuthorizedActor[testPost, Update]) (string, error) {
		ran++
		return actor.ID(), nil
	}

	allow, _ := spy(true, nil)
	id, err := Grant(New[testPost, Update](allow), op)(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "u1", id)

	deny, _ := spy(false, nil)
	_, err = Grant(New[testPost, Update](deny), op)(ctx)
	assert.Error(t, err)
	assert.Equal(t, 1, ran)
}

func TestWithSystemActor(t *testing.T) {
	var seen AuthorizedActor[testPost, Create]
	id, err := WithSystemActor(func(ctx context.Context, actor AuthorizedActor[testPost, Create]) (string, error) {
		seen = actor
		return actor.ID(), nil
	})(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, core.SystemActor.ID, id)
	assert.NoError(t, seen.Verify())

	_, bound := core.ActorFromContext(context.Background())
	assert.False(t, bound)
}

func TestPredicateCombinators(t *testing.T) {
	ctx := context.Background()

	ok, err := Or(IsSelf("u2"), IsAdmin)(ctx, user1)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = Or(IsSelf("u1"), IsAdmin)(ctx, user1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Or(IsSelf("u2"), IsAdmin)(ctx, admin1)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = And(Allow, IsAdmin)(ctx, user1)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = Not(IsAdmin)(ctx, user1)
	assert.NoError(t, err)
	assert.True(t, ok)

	boom := errors.New("boom")
	failing, count := spy(false, boom)
	_, err = Or(failing, Allow)(ctx, user1)
	assert.ErrorIs(t, err, boom)

	_, err = Or(Allow, failing)(ctx, user1)
	assert.NoError(t, err)
	assert.Equal(t, 1, *count, "or stops at the first true")

	_, err = And(Not(Allow), failing)(ctx, user1)
	assert.NoError(t, err)
	assert.Equal(t, 1, *count, "and stops at the first false")
}

func TestPolicyRecordsSpan(t *testing.T) {
	checker := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(checker))
	otel.SetTracerProvider(provider)
	tracer = otel.Tracer("policy")

	ctx := core.WithActor(context.Background(), user1)
	deny, _ := spy(false, nil)
	_, _ = New[testPost, Delete](deny)(ctx)

	spans := checker.GetSpans()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "Policy.Evaluate", spans[0].Name)
		attrs := map[string]string{}
		for _, attr := range spans[0].Attributes {
			attrs[string(attr.Key)] = attr.Value.AsString()
		}
		assert.Equal(t, "post", attrs["Entity"])
		assert.Equal(t, "delete", attrs["Action"])
		assert.Equal(t, "u1", attrs["ActorID"])
		assert.Len(t, spans[0].Events, 1)
	}
}
