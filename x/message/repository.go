//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package message

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/util"
)

const countCacheKey = "message_count"

// Repository is the interface for message repository
type Repository interface {
	Create(ctx context.Context, message core.Message) (core.Message, error)
	Get(ctx context.Context, id string) (core.Message, error)
	ListConversation(ctx context.Context, accountID, otherID string, page core.Pagination) ([]core.Message, int64, error)
	ListInbox(ctx context.Context, accountID string, unreadOnly bool, page core.Pagination) ([]core.Message, int64, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, channel string, event core.Event) error
	Subscribe(ctx context.Context, channel string) (<-chan core.Event, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	mc  *memcache.Client
}

// NewRepository creates a new message repository
func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) Repository {
	return &repository{db, rdb, mc}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Count")
	defer span.End()

	return util.LoadCount(ctx, r.mc, countCacheKey, func() (int64, error) {
		var count int64
		err := r.db.WithContext(ctx).Model(&core.Message{}).Where("is_deleted = ?", false).Count(&count).Error
		return count, err
	})
}

func (r *repository) Create(ctx context.Context, message core.Message) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&message).Error
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, 1)

	return message, nil
}

func (r *repository) Get(ctx context.Context, id string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.Get")
	defer span.End()

	var message core.Message
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Message{}, core.NewErrorNotFound("message", id)
		}
		span.RecordError(err)
		return core.Message{}, err
	}

	return message, nil
}

// ListConversation returns the messages exchanged between two accounts, newest first
func (r *repository) ListConversation(ctx context.Context, accountID, otherID string, page core.Pagination) ([]core.Message, int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.ListConversation")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Message{}).
		Where("(sender_account_id = ? AND receiver_account_id = ?) OR (sender_account_id = ? AND receiver_account_id = ?)", accountID, otherID, otherID, accountID).
		Where("is_deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var messages []core.Message
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *repository) ListInbox(ctx context.Context, accountID string, unreadOnly bool, page core.Pagination) ([]core.Message, int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Repository.ListInbox")
	defer span.End()

	query := r.db.WithContext(ctx).Model(&core.Message{}).Where("receiver_account_id = ? AND is_deleted = ?", accountID, false)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	var messages []core.Message
	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.Limit).Find(&messages).Error
	if err != nil {
		span.RecordError(err)
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *repository) MarkRead(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Message.Repository.MarkRead")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Message{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_read", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("message", id)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Message.Repository.Delete")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Message{}).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound("message", id)
	}

	util.AdjustCount(ctx, r.mc, countCacheKey, -1)

	return nil
}

func (r *repository) Publish(ctx context.Context, channel string, event core.Event) error {
	ctx, span := tracer.Start(ctx, "Message.Repository.Publish")
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.rdb.Publish(ctx, channel, string(payload)).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Subscribe relays events published on channel until ctx is done.
// The returned channel is closed when the subscription ends.
func (r *repository) Subscribe(ctx context.Context, channel string) (<-chan core.Event, error) {
	pubsub := r.rdb.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	events := make(chan core.Event)
	go func() {
		defer close(events)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event core.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.WarnContext(ctx, "failed to decode event", slog.String("error", err.Error()), slog.String("module", "message"))
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
