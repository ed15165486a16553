//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "account_count"

// Repository is the interface for account repository
type Repository interface {
	Create(ctx context.Context, account core.Account) (core.Account, error)
	Get(ctx context.Context, id string) (core.Account, error)
	GetByEmail(ctx context.Context, email string) (core.Account, error)
	List(ctx context.Context, includePrivate bool, page core.Pagination) ([]core.Account, int64, error)
	Update(ctx context.Context, account core.Account) (core.Account, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new account repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.refreshCount(context.Background())
	return r
}

func (r *repository) refreshCount(ctx context.Context) {
	var count int64
	err := r.db.WithContext(ctx).Model(&core.Account{}).Where("is_deleted = ?", false).Count(&count).Error
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to count accounts",
			slog.String("error", err.Error()),
			slog.String("module", "account"),
		)
		return
	}
	util.StoreCount(ctx, r.mc, countCacheKey, count)
}

// Count returns the number of active accounts
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		var count int64
		err := r.db.WithContext(ctx).Model(&core.Account{}).Where("is_deleted = ?", false).Count(&count).Error
		return count, err
	})
}

// Create inserts a new account
func (r *repository) Create(ctx context.Context, account core.Account) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Account{}, core.NewErrorAlreadyExists("account")
		}
		return core.Account{}, err
	}

	r.refreshCount(ctx)

	return account, nil
}

// Get returns an active account by id
func (r *repository) Get(ctx context.Context, id string) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Get")
	defer span.End()

	var account core.Account
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Account{}, core.NewErrorNotFound("account", id)
		}
		span.RecordError(err)
		return core.Account{}, err
	}

	return account, nil
}

// GetByEmail returns an active account by email
func (r *repository) GetByEmail(ctx context.Context, email string) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.GetByEmail")
	defer span.End()

	var account core.Account
	err := r.db.WithContext(ctx).Where("email = ? AND is_deleted = ?", email, false).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Account{}, core.NewErrorNotFound("account", email)
		}
		span.RecordError(err)
		return core.Account{}, err
	}

	return account, nil
}

// List returns a page of active accounts, newest first
func (r *repository) List(ctx context.Context, includePrivate bool, page core.Pagination) ([]core.Account, int64, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Account{}).Where("is_deleted = ?", false)
	if !includePrivate {
		query = query.Where("is_private = ?", false)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var accounts []core.Account
	err = query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&accounts).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return accounts, total, nil
}

// Update saves every mutable column of account
func (r *repository) Update(ctx context.Context, account core.Account) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Account.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Save(&account).Error
	if err != nil {
		span.RecordError(err)
		return core.Account{}, err
	}

	return account, nil
}

// Delete soft-deletes an account
func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Account.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Account{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("account", id)
	}

	r.refreshCount(ctx)

	return nil
}
