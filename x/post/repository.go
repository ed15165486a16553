//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package post

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "post_count"

// Repository is the interface for post repository
type Repository interface {
	Create(ctx context.Context, post core.Post) (core.Post, error)
	Get(ctx context.Context, id string) (core.Post, error)
	List(ctx context.Context, filter ListFilter, viewer core.Actor, page core.Pagination) ([]core.Post, int64, error)
	IncrementViewCount(ctx context.Context, id string) error
	Update(ctx context.Context, post core.Post) (core.Post, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new post repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) countActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Post{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

func (r *repository) refreshCount(ctx context.Context) {
	count, err := r.countActive(ctx)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count posts",
			slog.String("error", err.Error()),
			slog.String("module", "post"),
		)
		return
	}
	util.StoreCount(ctx, r.mc, countCacheKey, count)
}

// Count returns the number of active posts
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		return r.countActive(ctx)
	})
}

func (r *repository) Create(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&post).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	r.refreshCount(ctx)

	return post, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Get")
	defer span.End()

	var post core.Post
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.NewErrorNotFound("post", id)
		}
		span.RecordError(err)
		return core.Post{}, err
	}

	return post, nil
}

// List returns posts visible to viewer, newest first.
// Posts of private authors are only listed for the author and admins.
func (r *repository) List(ctx context.Context, filter ListFilter, viewer core.Actor, page core.Pagination) ([]core.Post, int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Post{}).Where("is_deleted = ?", false)
	if filter.AccountID != "" {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if filter.ChallengeID != "" {
		query = query.Where("challenge_id = ?", filter.ChallengeID)
	}
	if !viewer.IsAdmin() {
		private := r.db.Model(&core.Account{}).Select("id").Where("is_private = ?", true)
		query = query.Where("(account_id NOT IN (?) OR account_id = ?)", private, viewer.ID)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var posts []core.Post
	err = query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&posts).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *repository) IncrementViewCount(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Post.Repository.IncrementViewCount")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&core.Post{}).Where("id = ?", id).UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (r *repository) Update(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&post).Select("title", "content", "updated_at").Updates(&post).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	return post, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Post.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Post{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("post", id)
	}

	r.refreshCount(ctx)

	return nil
}
