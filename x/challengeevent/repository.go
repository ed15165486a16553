//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package challengeevent

import (
	"context"
	"errors"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "challenge_event_count"

// Repository is the interface for challenge event repository
type Repository interface {
	Create(ctx context.Context, event core.ChallengeEvent) (core.ChallengeEvent, error)
	Get(ctx context.Context, id string) (core.ChallengeEvent, error)
	ListByChallenge(ctx context.Context, challengeID string, page core.Pagination) ([]core.ChallengeEvent, int64, error)
	Update(ctx context.Context, event core.ChallengeEvent) (core.ChallengeEvent, error)
	Delete(ctx context.Context, id string) error
	Check(ctx context.Context, check core.ChallengeEventCheck) (core.ChallengeEventCheck, error)
	ListChecks(ctx context.Context, eventID string, page core.Pagination) ([]core.ChallengeEventCheck, int64, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new challenge event repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		var count int64
		err := r.db.WithContext(ctx).Model(&core.ChallengeEvent{}).Where("is_deleted = ?", false).Count(&count).Error
		return count, err
	})
}

func (r *repository) Create(ctx context.Context, event core.ChallengeEvent) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEvent{}, err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, 1)

	return event, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Get")
	defer span.End()

	var event core.ChallengeEvent
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.ChallengeEvent{}, core.NewErrorNotFound("challenge-event", id)
		}
		span.RecordError(err)
		return core.ChallengeEvent{}, err
	}

	return event, nil
}

// ListByChallenge returns the events of a challenge in schedule order
func (r *repository) ListByChallenge(ctx context.Context, challengeID string, page core.Pagination) ([]core.ChallengeEvent, int64, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.ListByChallenge")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.ChallengeEvent{}).Where("challenge_id = ? AND is_deleted = ?", challengeID, false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var events []core.ChallengeEvent
	err := query.Order("start_datetime ASC NULLS LAST, created_at ASC").Offset(page.Offset()).Limit(page.Limit).Find(&events).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return events, total, nil
}

func (r *repository) Update(ctx context.Context, event core.ChallengeEvent) (core.ChallengeEvent, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Model(&event).
		Select("title", "description", "start_datetime", "end_datetime", "is_finished", "updated_at").
		Updates(&event).Error
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEvent{}, err
	}

	return event, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.ChallengeEvent{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("challenge-event", id)
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, -1)

	return nil
}

// Check records a check-in. Checking the same event twice is rejected.
func (r *repository) Check(ctx context.Context, check core.ChallengeEventCheck) (core.ChallengeEventCheck, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.Check")
	defer span.End()

	var existing int64
	err := r.db.WithContext(ctx).Model(&core.ChallengeEventCheck{}).
		Where("challenge_event_id = ? AND account_id = ?", check.ChallengeEventID, check.AccountID).
		Count(&existing).Error
	if err != nil {
		span.RecordError(err)
		return core.ChallengeEventCheck{}, err
	}
	if existing > 0 {
		return core.ChallengeEventCheck{}, core.NewErrorAlreadyExists("challenge-event check")
	}

	err = r.db.WithContext(ctx).Create(&check).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.ChallengeEventCheck{}, core.NewErrorAlreadyExists("challenge-event check")
		}
		return core.ChallengeEventCheck{}, err
	}

	return check, nil
}

func (r *repository) ListChecks(ctx context.Context, eventID string, page core.Pagination) ([]core.ChallengeEventCheck, int64, error) {
	ctx, span := tracer.Start(ctx, "ChallengeEvent.Repository.ListChecks")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.ChallengeEventCheck{}).Where("challenge_event_id = ?", eventID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var checks []core.ChallengeEventCheck
	err := query.Order("checked_at ASC").Offset(page.Offset()).Limit(page.Limit).Find(&checks).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return checks, total, nil
}
