//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package challenge

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

var tracer = otel.Tracer("challenge")

// Service is the interface for challenge service
type Service interface {
	Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Challenge, error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Challenge, error)
	List(ctx context.Context, filter ListFilter, page core.Pagination) (core.Page[core.Challenge], error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Challenge, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Join(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Join], id string) (core.ChallengeParticipant, error)
	Leave(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Leave], id string) error
	ListParticipants(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string, page core.Pagination) (core.Page[core.ChallengeParticipant], error)
	Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	like       like.Service
}

// NewService creates a new challenge service
func NewService(repository Repository, like like.Service) Service {
	return &service{repository, like}
}

func checkPeriod(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return core.NewErrorBadRequest("endDate must not be before startDate")
	}
	return nil
}

func (s *service) Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Create")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Challenge{}, err
	}

	if err := checkPeriod(input.StartDate, input.EndDate); err != nil {
		return core.Challenge{}, err
	}

	created, err := s.repository.Create(ctx, core.Challenge{
		ID:                xid.New().String(),
		AccountID:         actor.ID(),
		Title:             input.Title,
		Description:       input.Description,
		Type:              input.Type,
		ChallengeImageURL: input.ChallengeImageURL,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		IsPublished:       input.IsPublished,
	})
	if err != nil {
		span.RecordError(err)
		return core.Challenge{}, err
	}

	return created, nil
}

func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Challenge{}, err
	}

	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter ListFilter, page core.Pagination) (core.Page[core.Challenge], error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.List")
	defer span.End()

	viewer, _ := core.ActorFromContext(ctx)

	challenges, total, err := s.repository.List(ctx, filter, viewer, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Challenge]{}, err
	}

	return core.NewPage(challenges, total, page), nil
}

func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Challenge{}, err
	}

	challenge, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Challenge{}, err
	}

	if input.Title != nil {
		challenge.Title = *input.Title
	}
	if input.Description != nil {
		challenge.Description = *input.Description
	}
	if input.Type != nil {
		challenge.Type = *input.Type
	}
	if input.ChallengeImageURL != nil {
		challenge.ChallengeImageURL = *input.ChallengeImageURL
	}
	if input.StartDate != nil {
		challenge.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		challenge.EndDate = input.EndDate
	}
	if input.IsPublished != nil {
		challenge.IsPublished = *input.IsPublished
	}
	if input.IsFinished != nil {
		challenge.IsFinished = *input.IsFinished
	}

	if err := checkPeriod(challenge.StartDate, challenge.EndDate); err != nil {
		return core.Challenge{}, err
	}

	updated, err := s.repository.Update(ctx, challenge)
	if err != nil {
		span.RecordError(err)
		return core.Challenge{}, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Delete")
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
		ctx, "challenge deleted",
		slog.String("module", "challenge"),
		slog.String("challenge", id),
		slog.String("by", actor.ID()),
	)

	return nil
}

func (s *service) Join(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Join], id string) (core.ChallengeParticipant, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Join")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.ChallengeParticipant{}, err
	}

	participant, err := s.repository.Join(ctx, core.ChallengeParticipant{
		ChallengeID: id,
		AccountID:   actor.ID(),
		IsAccepted:  true,
	})
	if err != nil {
		span.RecordError(err)
		return core.ChallengeParticipant{}, err
	}

	return participant, nil
}

func (s *service) Leave(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Leave], id string) error {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Leave")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	return s.repository.Leave(ctx, id, actor.ID())
}

func (s *service) ListParticipants(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string, page core.Pagination) (core.Page[core.ChallengeParticipant], error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.ListParticipants")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.ChallengeParticipant]{}, err
	}

	participants, total, err := s.repository.ListParticipants(ctx, id, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.ChallengeParticipant]{}, err
	}

	return core.NewPage(participants, total, page), nil
}

func (s *service) Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Like")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetChallenge, id, core.LikeTypeLike)
}

func (s *service) Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Dislike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetChallenge, id, core.LikeTypeDislike)
}

func (s *service) RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.RemoveLike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Remove(ctx, actor.ID(), core.LikeTargetChallenge, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
