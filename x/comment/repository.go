//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package comment

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "comment_count"

// Repository is the interface for comment repository
type Repository interface {
	Create(ctx context.Context, comment core.Comment) (core.Comment, error)
	Get(ctx context.Context, id string) (core.Comment, error)
	ListByPost(ctx context.Context, postID string, page core.Pagination) ([]core.Comment, int64, error)
	Update(ctx context.Context, comment core.Comment) (core.Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new comment repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) countActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Comment{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Comment.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		return r.countActive(ctx)
	})
}

// Create inserts a comment and bumps the comment counter of its post
func (r *repository) Create(ctx context.Context, comment core.Comment) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return tx.Model(&core.Post{}).
			Where("id = ?", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.Comment{}, err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, 1)

	return comment, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Repository.Get")
	defer span.End()

	var comment core.Comment
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Comment{}, core.NewErrorNotFound("comment", id)
		}
		span.RecordError(err)
		return core.Comment{}, err
	}

	return comment, nil
}

// ListByPost returns the comments of a post, oldest first
func (r *repository) ListByPost(ctx context.Context, postID string, page core.Pagination) ([]core.Comment, int64, error) {
	ctx, span := tracer.Start(ctx, "Comment.Repository.ListByPost")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Comment{}).Where("post_id = ? AND is_deleted = ?", postID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var comments []core.Comment
	err := query.Order("created_at ASC").Offset(page.Offset()).Limit(page.Limit).Find(&comments).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *repository) Update(ctx context.Context, comment core.Comment) (core.Comment, error) {
	ctx, span := tracer.Start(ctx, "Comment.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&comment).Select("content", "updated_at").Updates(&comment).Error
	if err != nil {
		span.RecordError(err)
		return core.Comment{}, err
	}

	return comment, nil
}

// Delete soft-deletes a comment and decrements the comment counter of its post
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Comment.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment core.Comment
		err := tx.Where("id = ? AND is_deleted = ?", id, false).First(&comment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotFound("comment", id)
			}
			return err
		}

		if err := tx.Model(&comment).Update("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&core.Post{}).
			Where("id = ? AND comment_count > 0", comment.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count - 1")).Error
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, -1)

	return nil
}
