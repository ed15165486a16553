//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=mock/service.go
package like

import (
	"context"
	"fmt"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

var tracer = otel.Tracer("like")

// Service is the interface for like service.
// Callers gate it behind the target's like policy.
type Service interface {
	Put(ctx context.Context, accountID, targetType, targetID, likeType string) (Counts, error)
	Remove(ctx context.Context, accountID, targetType, targetID string) (Counts, error)
	Counts(ctx context.Context, accountID, targetType, targetID string) (Counts, error)
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repository Repository
}

// NewService creates a new like service
func NewService(repository Repository) Service {
	return &service{repository}
}

// Put likes or dislikes a target and returns the fresh tally
func (s *service) Put(ctx context.Context, accountID, targetType, targetID, likeType string) (Counts, error) {
	ctx, span := tracer.Start(ctx, "Like.Service.Put")
	defer span.End()

	span.SetAttributes(
		attribute.String("TargetType", targetType),
		attribute.String("TargetID", targetID),
		attribute.String("Type", likeType),
	)

	if !validTarget(targetType) {
		return Counts{}, core.NewErrorBadRequest(fmt.Sprintf("unknown like target %q", targetType))
	}
	if !validType(likeType) {
		return Counts{}, core.NewErrorBadRequest(fmt.Sprintf("unknown like type %q", likeType))
	}

	_, err := s.repository.Put(ctx, core.Like{
		ID:         xid.New().String(),
		AccountID:  accountID,
		TargetType: targetType,
		TargetID:   targetID,
		Type:       likeType,
	})
	if err != nil {
		span.RecordError(err)
		return Counts{}, err
	}

	return s.Counts(ctx, accountID, targetType, targetID)
}

// Remove withdraws the account's reaction from a target
func (s *service) Remove(ctx context.Context, accountID, targetType, targetID string) (Counts, error) {
	ctx, span := tracer.Start(ctx, "Like.Service.Remove")
	defer span.End()

	if !validTarget(targetType) {
		return Counts{}, core.NewErrorBadRequest(fmt.Sprintf("unknown like target %q", targetType))
	}

	err := s.repository.Remove(ctx, accountID, targetType, targetID)
	if err != nil {
		span.RecordError(err)
		return Counts{}, err
	}

	return s.Counts(ctx, accountID, targetType, targetID)
}

// Counts returns the tally of a target and the reaction of accountID, if any
func (s *service) Counts(ctx context.Context, accountID, targetType, targetID string) (Counts, error) {
	ctx, span := tracer.Start(ctx, "Like.Service.Counts")
	defer span.End()

	counts, err := s.repository.Counts(ctx, targetType, targetID)
	if err != nil {
		span.RecordError(err)
		return Counts{}, err
	}

	if accountID != "" {
		mine, err := s.repository.Get(ctx, accountID, targetType, targetID)
		if err == nil {
			counts.Mine = mine.Type
		}
	}

	return counts, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Like.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
