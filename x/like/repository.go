//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package like

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "like_count"

// Repository is the interface for like repository
type Repository interface {
	Put(ctx context.Context, like core.Like) (core.Like, error)
	Remove(ctx context.Context, accountID, targetType, targetID string) error
	Get(ctx context.Context, accountID, targetType, targetID string) (core.Like, error)
	Counts(ctx context.Context, targetType, targetID string) (Counts, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new like repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) countAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Like{}).Count(&count).Error
	return count, err
}

func (r *repository) refreshCount(ctx context.Context) {
	count, err := r.countAll(ctx)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count likes",
			slog.String("error", err.Error()),
			slog.String("module", "like"),
		)
		return
	}
	util.StoreCount(ctx, r.mc, countCacheKey, count)
}

// Count returns the number of reactions across all targets
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Like.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		return r.countAll(ctx)
	})
}

func bump(tx *gorm.DB, targetType, targetID, likeType string, delta int) error {
	column := counterColumn(likeType)
	return tx.Model(targetModel(targetType)).
		Where("id = ?", targetID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// Put records a reaction. An existing reaction of the other type is switched.
func (r *repository) Put(ctx context.Context, like core.Like) (core.Like, error) {
	ctx, span := tracer.Start(ctx, "Like.Repository.Put")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing core.Like
		err := tx.Where("account_id = ? AND target_type = ? AND target_id = ?", like.AccountID, like.TargetType, like.TargetID).First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err == nil {
			if existing.Type == like.Type {
				like = existing
				return nil
			}

			if err := tx.Model(&existing).Update("type", like.Type).Error; err != nil {
				return err
			}
			if err := bump(tx, like.TargetType, like.TargetID, existing.Type, -1); err != nil {
				return err
			}
			if err := bump(tx, like.TargetType, like.TargetID, like.Type, 1); err != nil {
				return err
			}

			existing.Type = like.Type
			like = existing
			return nil
		}

		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return bump(tx, like.TargetType, like.TargetID, like.Type, 1)
	})
	if err != nil {
		span.RecordError(err)
		return core.Like{}, err
	}

	r.refreshCount(ctx)

	return like, nil
}

// Remove deletes a reaction and rolls back its counter
func (r *repository) Remove(ctx context.Context, accountID, targetType, targetID string) error {
	ctx, span := tracer.Start(ctx, "Like.Repository.Remove")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing core.Like
		err := tx.Where("account_id = ? AND target_type = ? AND target_id = ?", accountID, targetType, targetID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotFound("like", targetID)
			}
			return err
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return bump(tx, targetType, targetID, existing.Type, -1)
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	r.refreshCount(ctx)

	return nil
}

func (r *repository) Get(ctx context.Context, accountID, targetType, targetID string) (core.Like, error) {
	ctx, span := tracer.Start(ctx, "Like.Repository.Get")
	defer span.End()

	var like core.Like
	err := r.db.WithContext(ctx).Where("account_id = ? AND target_type = ? AND target_id = ?", accountID, targetType, targetID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Like{}, core.NewErrorNotFound("like", targetID)
		}
		span.RecordError(err)
		return core.Like{}, err
	}

	return like, nil
}

// Counts tallies reactions of a target from the likes table
func (r *repository) Counts(ctx context.Context, targetType, targetID string) (Counts, error) {
	ctx, span := tracer.Start(ctx, "Like.Repository.Counts")
	defer span.End()

	var rows []struct {
		Type  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&core.Like{}).
		Select("type, count(*) as count").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		return Counts{}, err
	}

	var counts Counts
	for _, row := range rows {
		switch row.Type {
		case core.LikeTypeLike:
			counts.Likes = row.Count
		case core.LikeTypeDislike:
			counts.Dislikes = row.Count
		}
	}

	return counts, nil
}
