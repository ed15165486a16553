package challenge

import (
	"context"
	"errors"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Policy issues capabilities over challenges
type Policy struct {
	repository Repository
}

func NewPolicy(repository Repository) Policy {
	return Policy{repository}
}

func (p Policy) CanCreate() policy.Policy[Entity, policy.Create] {
	return policy.New[Entity, policy.Create](policy.Allow)
}

// Visible passes for published challenges, their owner, and admins
func (p Policy) Visible(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		challenge, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return challenge.IsPublished || challenge.AccountID == actor.ID || actor.IsAdmin(), nil
	}
}

// Owned passes for the owner of the challenge and admins
func (p Policy) Owned(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		challenge, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return challenge.AccountID == actor.ID || actor.IsAdmin(), nil
	}
}

// Participating passes when the actor joined the challenge
func (p Policy) Participating(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		_, err := p.repository.GetParticipant(ctx, id, actor.ID)
		if err != nil {
			if errors.As(err, &core.ErrorNotFound{}) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}

func (p Policy) joinable(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		challenge, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		if !challenge.IsPublished || challenge.IsFinished {
			return false, nil
		}
		joined, err := p.Participating(id)(ctx, actor)
		if err != nil {
			return false, err
		}
		return !joined, nil
	}
}

func (p Policy) CanRead(id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](p.Visible(id), "challenge is not published")
}

func (p Policy) CanUpdate(id string) policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](p.Owned(id), "only the owner or an admin can update a challenge")
}

func (p Policy) CanDelete(id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](p.Owned(id), "only the owner or an admin can delete a challenge")
}

// CanJoin passes for published, unfinished challenges the actor has not joined yet
func (p Policy) CanJoin(id string) policy.Policy[Entity, policy.Join] {
	return policy.New[Entity, policy.Join](p.joinable(id), "challenge is closed or already joined")
}

func (p Policy) CanLeave(id string) policy.Policy[Entity, policy.Leave] {
	return policy.New[Entity, policy.Leave](p.Participating(id), "not a participant of this challenge")
}

func (p Policy) CanLike(id string) policy.Policy[Entity, policy.Like] {
	return policy.New[Entity, policy.Like](p.Visible(id), "challenge is not published")
}
