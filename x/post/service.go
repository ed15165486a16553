//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package post

import (
	"context"
	"log/slog"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

var tracer = otel.Tracer("post")

// Service is the interface for post service
type Service interface {
	Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Post, error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Post, error)
	List(ctx context.Context, filter ListFilter, page core.Pagination) (core.Page[core.Post], error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Post, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	like       like.Service
}

// NewService creates a new post service
func NewService(repository Repository, like like.Service) Service {
	return &service{repository, like}
}

func (s *service) Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], input CreateInput) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Create")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Post{}, err
	}

	postType := input.Type
	if postType == "" {
		postType = core.PostTypePost
	}
	if postType == core.PostTypeNotice && !actor.Actor().IsAdmin() {
		return core.Post{}, core.NewErrorUnauthorized(actor.ID(), actor.Entity(), actor.Action(), "only admins can post notices")
	}
	if postType == core.PostTypeChallenge && input.ChallengeID == nil {
		return core.Post{}, core.NewErrorBadRequest("challenge posts need a challengeId")
	}

	created, err := s.repository.Create(ctx, core.Post{
		ID:          xid.New().String(),
		AccountID:   actor.ID(),
		ChallengeID: input.ChallengeID,
		Title:       input.Title,
		Content:     input.Content,
		Type:        postType,
	})
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	return created, nil
}

// Get returns a post and counts the view
func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Post{}, err
	}

	post, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Post{}, err
	}

	err = s.repository.IncrementViewCount(ctx, id)
	if err != nil {
		slog.WarnContext(
			ctx, "failed to count view",
			slog.String("error", err.Error()),
			slog.String("module", "post"),
			slog.String("post", id),
		)
	} else {
		post.ViewCount++
	}

	return post, nil
}

// List returns posts visible to the requester, who may be anonymous
func (s *service) List(ctx context.Context, filter ListFilter, page core.Pagination) (core.Page[core.Post], error) {
	ctx, span := tracer.Start(ctx, "Post.Service.List")
	defer span.End()

	viewer, _ := core.ActorFromContext(ctx)

	posts, total, err := s.repository.List(ctx, filter, viewer, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Post]{}, err
	}

	return core.NewPage(posts, total, page), nil
}

func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Post{}, err
	}

	post, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Post{}, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	updated, err := s.repository.Update(ctx, post)
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Post.Service.Delete")
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
		ctx, "post deleted",
		slog.String("module", "post"),
		slog.String("post", id),
		slog.String("by", actor.ID()),
	)

	return nil
}

func (s *service) Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Like")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetPost, id, core.LikeTypeLike)
}

func (s *service) Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Dislike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetPost, id, core.LikeTypeDislike)
}

func (s *service) RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.RemoveLike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Remove(ctx, actor.ID(), core.LikeTargetPost, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
