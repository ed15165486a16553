//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package comment

import (
	"context"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/like"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
)

var tracer = otel.Tracer("comment")

// Service is the interface for comment service
type Service interface {
	Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], postID string, input CreateInput) (core.Comment, error)
	ListByPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Read], postID string, page core.Pagination) (core.Page[core.Comment], error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Comment, error)
	Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Comment, error)
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error)
	Reactions(ctx context.Context, id string) (like.Counts, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
	like       like.Service
}

// NewService creates a new comment service
func NewService(repository Repository, like like.Service) Service {
	return &service{repository, like}
}

func (s *service) Create(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Create], postID string, input CreateInput) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Create")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Comment{}, err
	}

	if input.ParentCommentID != nil {
		parent, err := s.repository.Get(ctx, *input.ParentCommentID)
		if err != nil {
			return core.Comment{}, err
		}
		if parent.PostID != postID {
			return core.Comment{}, core.NewErrorBadRequest("parent comment belongs to another post")
		}
	}

	created, err := s.repository.Create(ctx, core.Comment{
		ID:              xid.New().String(),
		PostID:          postID,
		AccountID:       actor.ID(),
		ParentCommentID: input.ParentCommentID,
		Content:         input.Content,
	})
	if err != nil {
		span.RecordError(err)
		return core.Comment{}, err
	}

	return created, nil
}

func (s *service) ListByPost(ctx context.Context, actor policy.AuthorizedActor[post.Entity, policy.Read], postID string, page core.Pagination) (core.Page[core.Comment], error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.ListByPost")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.Comment]{}, err
	}

	comments, total, err := s.repository.ListByPost(ctx, postID, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Comment]{}, err
	}

	return core.NewPage(comments, total, page), nil
}

func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Comment{}, err
	}

	return s.repository.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Update], id string, input UpdateInput) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Update")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Comment{}, err
	}

	comment, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.Comment{}, err
	}

	comment.Content = input.Content

	updated, err := s.repository.Update(ctx, comment)
	if err != nil {
		span.RecordError(err)
		return core.Comment{}, err
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Comment.Service.Delete")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (s *service) Like(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Like")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetComment, id, core.LikeTypeLike)
}

func (s *service) Dislike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Dislike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Put(ctx, actor.ID(), core.LikeTargetComment, id, core.LikeTypeDislike)
}

func (s *service) RemoveLike(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Like], id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.RemoveLike")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return like.Counts{}, err
	}

	return s.like.Remove(ctx, actor.ID(), core.LikeTargetComment, id)
}

// Reactions returns the like tally of a comment. Callers gate it with policy.Use.
func (s *service) Reactions(ctx context.Context, id string) (like.Counts, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Reactions")
	defer span.End()

	requester, _ := core.ActorFromContext(ctx)
	return s.like.Counts(ctx, requester.ID, core.LikeTargetComment, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Comment.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
