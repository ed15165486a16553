//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package tag

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "tag_count"

// Repository is the interface for tag repository
type Repository interface {
	Create(ctx context.Context, tag core.Tag) (core.Tag, error)
	Get(ctx context.Context, id string) (core.Tag, error)
	GetByName(ctx context.Context, name string) (core.Tag, error)
	List(ctx context.Context, page core.Pagination) ([]core.Tag, int64, error)
	Update(ctx context.Context, tag core.Tag) (core.Tag, error)
	Delete(ctx context.Context, id string) error
	Connect(ctx context.Context, target core.TagTarget) error
	Disconnect(ctx context.Context, target core.TagTarget) error
	ListByPost(ctx context.Context, postID string) ([]core.Tag, error)
	ListByChallenge(ctx context.Context, challengeID string) ([]core.Tag, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new tag repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		var count int64
		err := r.db.WithContext(ctx).Model(&core.Tag{}).Count(&count).Error
		return count, err
	})
}

func (r *repository) Create(ctx context.Context, tag core.Tag) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Tag{}, core.NewErrorAlreadyExists("tag")
		}
		span.RecordError(err)
		return core.Tag{}, err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, 1)

	return tag, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Get")
	defer span.End()

	var tag core.Tag
	err := r.db.WithContext(ctx).First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Tag{}, core.NewErrorNotFound("tag", id)
		}
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.GetByName")
	defer span.End()

	var tag core.Tag
	err := r.db.WithContext(ctx).First(&tag, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Tag{}, core.NewErrorNotFound("tag", name)
		}
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

func (r *repository) List(ctx context.Context, page core.Pagination) ([]core.Tag, int64, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Tag{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var tags []core.Tag
	err := query.Order("name ASC").Offset(page.Offset()).Limit(page.Limit).Find(&tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return tags, total, nil
}

func (r *repository) Update(ctx context.Context, tag core.Tag) (core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&tag).Select("name", "description", "hex_color", "updated_at").Updates(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Tag{}, core.NewErrorAlreadyExists("tag")
		}
		span.RecordError(err)
		return core.Tag{}, err
	}

	return tag, nil
}

// Delete removes the tag together with its connections
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&core.TagTarget{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&core.Tag{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return core.NewErrorNotFound("tag", id)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, -1)

	return nil
}

func targetQuery(tx *gorm.DB, target core.TagTarget) *gorm.DB {
	query := tx.Model(&core.TagTarget{}).Where("tag_id = ?", target.TagID)
	if target.PostID != nil {
		query = query.Where("post_id = ?", *target.PostID)
	}
	if target.ChallengeID != nil {
		query = query.Where("challenge_id = ?", *target.ChallengeID)
	}
	return query
}

// Connect attaches a tag to exactly one post or challenge
func (r *repository) Connect(ctx context.Context, target core.TagTarget) error {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Connect")
	defer span.End()

	if (target.PostID == nil) == (target.ChallengeID == nil) {
		return core.NewErrorBadRequest("a tag target is either a post or a challenge")
	}

	err := r.db.WithContext(ctx).Create(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.NewErrorAlreadyExists("tag target")
		}
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) Disconnect(ctx context.Context, target core.TagTarget) error {
	ctx, span := tracer.Start(ctx, "Tag.Repository.Disconnect")
	defer span.End()

	if (target.PostID == nil) == (target.ChallengeID == nil) {
		return core.NewErrorBadRequest("a tag target is either a post or a challenge")
	}

	result := targetQuery(r.db.WithContext(ctx), target).Delete(&core.TagTarget{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("tag target", target.TagID)
	}

	return nil
}

func (r *repository) ListByPost(ctx context.Context, postID string) ([]core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.ListByPost")
	defer span.End()

	var tags []core.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN tag_targets ON tag_targets.tag_id = tags.id").
		Where("tag_targets.post_id = ?", postID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return tags, nil
}

func (r *repository) ListByChallenge(ctx context.Context, challengeID string) ([]core.Tag, error) {
	ctx, span := tracer.Start(ctx, "Tag.Repository.ListByChallenge")
	defer span.End()

	var tags []core.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN tag_targets ON tag_targets.tag_id = tags.id").
		Where("tag_targets.challenge_id = ?", challengeID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return tags, nil
}
