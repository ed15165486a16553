//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
)

var tracer = otel.Tracer("tag")

// Service is the interface for tag service
type Service interface {
	Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Tag, error)
	Get(ctx context.Context, id string) (core.Tag, error)
	GetByName(ctx context.Context, name string) (core.Tag, error)
	List(ctx context.Context, page core.Pagination) (core.Page[core.Tag], error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Tag, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	ConnectPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update], postID string, input ConnectInput) (core.Tag, error)
	DisconnectPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update], postID, tagID string) error
	ConnectChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Update], challengeID string, input ConnectInput) (core.Tag, error)
	DisconnectChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Update], challengeID, tagID string) error
	ListByPost(ctx context.Context, postID string) ([]core.Tag, error)
	ListByChallenge(ctx context.Context, challengeID string) ([]core.Tag, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
}

// NewService creates a new tag service
func NewService(repository Repository) Service {
	return &service{repository}
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// getOrCreate returns the tag with the given name, creating it when missing
func (s *service) getOrCreate(ctx context.Context, input CreateInput) (core.Tag, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return core.Tag{}, core.NewErrorBadRequest("tag name is empty")
	}

	existing, err := s.repository.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.As(err, &core.ErrorNotFound{}) {
		return core.Tag{}, err
	}

	created, err := s.repository.Create(ctx, core.Tag{
		ID:          xid.New().String(),
		Name:        name,
		Description: input.Description,
		HexColor:    input.HexColor,
	})
	if errors.As(err, &core.ErrorAlreadyExists{}) {
		// lost a race with a concurrent create
		return s.repository.GetByName(ctx, name)
	}
	if err != nil {
		return core.Tag{}, errors.Wrap(err, "failed to create tag")
	}

	return created, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

func (s *service) Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.Create")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Tag{}, err
	}

	tag, err := s.getOrCreate(ctx, input)
	if err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.GetByName")
	defer span.End()

	return s.repository.GetByName(ctx, normalizeName(name))
}

func (s *service) List(ctx context.Context, page core.Pagination) (core.Page[core.Tag], error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.List")
	defer span.End()

	tags, total, err := s.repository.List(ctx, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Tag]{}, err
	}

	return core.NewPage(tags, total, page), nil
}

func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Tag{}, err
	}

	tag, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Tag{}, err
	}

	if input.Name != nil {
		tag.Name = normalizeName(*input.Name)
		if tag.Name == "" {
			return core.Tag{}, core.NewErrorBadRequest("tag name is empty")
		}
	}
	if input.Description != nil {
		tag.Description = *input.Description
	}
	if input.HexColor != nil {
		tag.HexColor = *input.HexColor
	}

	updated, err := s.repository.Update(ctx, tag)
	if err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Tag.Service.Delete")
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
		ctx, "tag deleted",
		slog.String("module", "tag"),
		slog.String("tag", id),
		slog.String("by", actor.ID()),
	)

	return nil
}

func (s *service) ConnectPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update], postID string, input ConnectInput) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.ConnectPost")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Tag{}, err
	}

	tag, err := s.getOrCreate(ctx, CreateInput{Name: input.Name})
	if err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	if err := s.repository.Connect(ctx, core.TagTarget{TagID: tag.ID, PostID: &postID}); err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

func (s *service) DisconnectPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Update], postID, tagID string) error {
	ctx, span := tracer.Start(ctx, "Tag.Service.DisconnectPost")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	return s.repository.Disconnect(ctx, core.TagTarget{TagID: tagID, PostID: &postID})
}

func (s *service) ConnectChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Update], challengeID string, input ConnectInput) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.ConnectChallenge")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Tag{}, err
	}

	tag, err := s.getOrCreate(ctx, CreateInput{Name: input.Name})
	if err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	if err := s.repository.Connect(ctx, core.TagTarget{TagID: tag.ID, ChallengeID: &challengeID}); err != nil {
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

func (s *service) DisconnectChallenge(ctx context.Context, actor policy.AuthorizedActor[challenge.Entity, policy.Update], challengeID, tagID string) error {
	ctx, span := tracer.Start(ctx, "Tag.Service.DisconnectChallenge")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	return s.repository.Disconnect(ctx, core.TagTarget{TagID: tagID, ChallengeID: &challengeID})
}

func (s *service) ListByPost(ctx context.Context, postID string) ([]core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.ListByPost")
	defer span.End()

	return s.repository.ListByPost(ctx, postID)
}

func (s *service) ListByChallenge(ctx context.Context, challengeID string) ([]core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Service.ListByChallenge")
	defer span.End()

	return s.repository.ListByChallenge(ctx, challengeID)
}
