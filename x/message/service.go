//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package message

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

var tracer = otel.Tracer("message")

// Service is the interface for message service
type Service interface {
	Send(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Send], input SendInput) (core.Message, error)
	Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Message, error)
	ListConversation(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], otherID string, page core.Pagination) (core.Page[core.Message], error)
	ListInbox(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], unreadOnly bool, page core.Pagination) (core.Page[core.Message], error)
	MarkRead(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.MarkRead], id string) error
	Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error
	Subscribe(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read]) (<-chan core.Event, error)
	Connections() int64
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository  Repository
	connections atomic.Int64
}

// NewService creates a new message service
func NewService(repository Repository) Service {
	return &service{repository: repository}
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}

// Connections returns the number of open realtime subscriptions
func (s *service) Connections() int64 {
	return s.connections.Load()
}

func (s *service) publish(ctx context.Context, accountID, action string, message core.Message) {
	err := s.repository.Publish(ctx, Channel(accountID), core.Event{
		Type:     "message",
		Action:   action,
		Resource: message,
	})
	if err != nil {
		slog.ErrorContext(
			ctx, "failed to publish message event",
			slog.String("error", err.Error()),
			slog.String("module", "message"),
		)
	}
}

func (s *service) Send(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Send], input SendInput) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Send")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Message{}, err
	}

	created, err := s.repository.Create(ctx, core.Message{
		ID:                xid.New().String(),
		SenderAccountID:   actor.ID(),
		ReceiverAccountID: input.ReceiverAccountID,
		Content:           input.Content,
	})
	if err != nil {
		span.RecordError(err)
		return core.Message{}, err
	}

	s.publish(ctx, created.ReceiverAccountID, "create", created)

	return created, nil
}

func (s *service) Get(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], id string) (core.Message, error) {
	ctx, span := tracer.Start(ctx, "Message.Service.Get")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Message{}, err
	}

	return s.repository.Get(ctx, id)
}

func (s *service) ListConversation(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], otherID string, page core.Pagination) (core.Page[core.Message], error) {
	ctx, span := tracer.Start(ctx, "Message.Service.ListConversation")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.Message]{}, err
	}

	messages, total, err := s.repository.ListConversation(ctx, actor.ID(), otherID, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Message]{}, err
	}

	return core.NewPage(messages, total, page), nil
}

func (s *service) ListInbox(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read], unreadOnly bool, page core.Pagination) (core.Page[core.Message], error) {
	ctx, span := tracer.Start(ctx, "Message.Service.ListInbox")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return core.Page[core.Message]{}, err
	}

	messages, total, err := s.repository.ListInbox(ctx, actor.ID(), unreadOnly, page)
	if err != nil {
		span.RecordError(err)
		return core.Page[core.Message]{}, err
	}

	return core.NewPage(messages, total, page), nil
}

// MarkRead marks the message as read and notifies its sender
func (s *service) MarkRead(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.MarkRead], id string) error {
	ctx, span := tracer.Start(ctx, "Message.Service.MarkRead")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	message, err := s.repository.Get(ctx, id)
	if err != nil {
		return err
	}

	if message.IsRead {
		return nil
	}

	if err := s.repository.MarkRead(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	message.IsRead = true
	s.publish(ctx, message.SenderAccountID, "read", message)

	return nil
}

func (s *service) Delete(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Delete], id string) error {
	ctx, span := tracer.Start(ctx, "Message.Service.Delete")
	defer span.End()

	if err := actor.Verify(); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// Subscribe streams the events addressed to the actor until ctx is done
func (s *service) Subscribe(ctx context.Context, actor policy.AuthorizedActor[Entity, policy.Read]) (<-chan core.Event, error) {
	if err := actor.Verify(); err != nil {
		return nil, err
	}

	upstream, err := s.repository.Subscribe(ctx, Channel(actor.ID()))
	if err != nil {
		return nil, err
	}

	s.connections.Add(1)
	events := make(chan core.Event)
	go func() {
		defer s.connections.Add(-1)
		defer close(events)
		for event := range upstream {
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
