//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package challenge

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "challenge_count"

// Repository is the interface for challenge repository
type Repository interface {
	Create(ctx context.Context, challenge core.Challenge) (core.Challenge, error)
	Get(ctx context.Context, id string) (core.Challenge, error)
	List(ctx context.Context, filter ListFilter, viewer core.Actor, page core.Pagination) ([]core.Challenge, int64, error)
	Update(ctx context.Context, challenge core.Challenge) (core.Challenge, error)
	Delete(ctx context.Context, id string) error
	Join(ctx context.Context, participant core.ChallengeParticipant) (core.ChallengeParticipant, error)
	Leave(ctx context.Context, challengeID, accountID string) error
	GetParticipant(ctx context.Context, challengeID, accountID string) (core.ChallengeParticipant, error)
	ListParticipants(ctx context.Context, challengeID string, page core.Pagination) ([]core.ChallengeParticipant, int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new challenge repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) countActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Challenge{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

func (r *repository) refreshCount(ctx context.Context) {
	count, err := r.countActive(ctx)
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count challenges",
			slog.String("error", err.Error()),
			slog.String("module", "challenge"),
		)
		return
	}
	util.StoreCount(ctx, r.mc, countCacheKey, count)
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		return r.countActive(ctx)
	})
}

func (r *repository) Create(ctx context.Context, challenge core.Challenge) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&challenge).Error
	if err != nil {
		span.RecordError(err)
		return core.Challenge{}, err
	}

	r.refreshCount(ctx)

	return challenge, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Get")
	defer span.End()

	var challenge core.Challenge
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&challenge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Challenge{}, core.NewErrorNotFound("challenge", id)
		}
		span.RecordError(err)
		return core.Challenge{}, err
	}

	return challenge, nil
}

// List returns published challenges plus the viewer's own drafts. Admins see every draft.
func (r *repository) List(ctx context.Context, filter ListFilter, viewer core.Actor, page core.Pagination) ([]core.Challenge, int64, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Challenge{}).Where("is_deleted = ?", false)
	if filter.AccountID != "" {
		query = query.Where("account_id = ?", filter.AccountID)
	}
	if !viewer.IsAdmin() {
		query = query.Where("(is_published = ? OR account_id = ?)", true, viewer.ID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var challenges []core.Challenge
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&challenges).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return challenges, total, nil
}

func (r *repository) Update(ctx context.Context, challenge core.Challenge) (core.Challenge, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&challenge).
		Select("title", "description", "type", "challenge_image_url", "start_date", "end_date", "is_published", "is_finished", "updated_at").
		Updates(&challenge).Error
	if err != nil {
		span.RecordError(err)
		return core.Challenge{}, err
	}

	return challenge, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Challenge{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("challenge", id)
	}

	r.refreshCount(ctx)

	return nil
}

func (r *repository) Join(ctx context.Context, participant core.ChallengeParticipant) (core.ChallengeParticipant, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Join")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&participant).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.ChallengeParticipant{}, core.NewErrorAlreadyExists("challenge participant")
		}
		return core.ChallengeParticipant{}, err
	}

	return participant, nil
}

func (r *repository) Leave(ctx context.Context, challengeID, accountID string) error {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.Leave")
	defer span.End()

	result := r.db.WithContext(ctx).Where("challenge_id = ? AND account_id = ?", challengeID, accountID).Delete(&core.ChallengeParticipant{})
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("challenge participant", accountID)
	}

	return nil
}

func (r *repository) GetParticipant(ctx context.Context, challengeID, accountID string) (core.ChallengeParticipant, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.GetParticipant")
	defer span.End()

	var participant core.ChallengeParticipant
	err := r.db.WithContext(ctx).Where("challenge_id = ? AND account_id = ?", challengeID, accountID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ChallengeParticipant{}, core.NewErrorNotFound("challenge participant", accountID)
		}
		span.RecordError(err)
		return core.ChallengeParticipant{}, err
	}

	return participant, nil
}

func (r *repository) ListParticipants(ctx context.Context, challengeID string, page core.Pagination) ([]core.ChallengeParticipant, int64, error) {
	ctx, span := tracer.Start(ctx, "Challenge.Repository.ListParticipants")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.ChallengeParticipant{}).Where("challenge_id = ?", challengeID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var participants []core.ChallengeParticipant
	err := query.Order("created_at ASC").Offset(page.Offset()).Limit(page.Limit).Find(&participants).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return participants, total, nil
}
