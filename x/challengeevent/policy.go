package challengeevent

import (
	"context"
	"time"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Policy issues capabilities over challenge events
type Policy struct {
	repository Repository
	challenge  challenge.Policy
	now        func() time.Time
}

func NewPolicy(repository Repository, challenge challenge.Policy) Policy {
	return Policy{repository, challenge, time.Now}
}

// CanCreate passes when the challenge is readable and the actor owns it or is an admin
func (p Policy) CanCreate(challengeID string) policy.Policy[Entity, policy.Create] {
	return policy.Compose(
		p.challenge.CanRead(challengeID),
		policy.New[Entity, policy.Create](p.challenge.Owned(challengeID), "only the challenge owner or an admin can add events"),
	)
}

// CanList passes when the challenge is readable
func (p Policy) CanList(challengeID string) policy.Policy[challenge.Entity, policy.Read] {
	return p.challenge.CanRead(challengeID)
}

// event loads the event and hides it when it does not belong to challengeID
func (p Policy) event(ctx context.Context, challengeID, id string) (core.ChallengeEvent, error) {
	event, err := p.repository.Get(ctx, id)
	if err != nil {
		return core.ChallengeEvent{}, err
	}
	if event.ChallengeID != challengeID {
		return core.ChallengeEvent{}, core.NewErrorNotFound(Entity{}.EntityName(), id)
	}
	return event, nil
}

func (p Policy) CanRead(challengeID, id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](func(ctx context.Context, actor core.Actor) (bool, error) {
		event, err := p.event(ctx, challengeID, id)
		if err != nil {
			return false, err
		}
		return p.challenge.Visible(event.ChallengeID)(ctx, actor)
	}, "challenge is not published")
}

func (p Policy) managed(challengeID, id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		event, err := p.event(ctx, challengeID, id)
		if err != nil {
			return false, err
		}
		if event.AccountID == actor.ID {
			return true, nil
		}
		return p.challenge.Owned(event.ChallengeID)(ctx, actor)
	}
}

// CanUpdate passes for the event author, the challenge owner, and admins
func (p Policy) CanUpdate(challengeID, id string) policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](p.managed(challengeID, id), "only the event author, the challenge owner or an admin can update an event")
}

func (p Policy) CanDelete(challengeID, id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](p.managed(challengeID, id), "only the event author, the challenge owner or an admin can delete an event")
}

// CanCheck passes for participants of the challenge while the event is open
func (p Policy) CanCheck(challengeID, id string) policy.Policy[Entity, policy.Check] {
	return policy.New[Entity, policy.Check](func(ctx context.Context, actor core.Actor) (bool, error) {
		event, err := p.event(ctx, challengeID, id)
		if err != nil {
			return false, err
		}
		if !open(event, p.now()) {
			return false, nil
		}
		return p.challenge.Participating(event.ChallengeID)(ctx, actor)
	}, "event is closed or the actor is not a participant")
}

func open(event core.ChallengeEvent, now time.Time) bool {
	if event.IsFinished {
		return false
	}
	if event.StartDatetime != nil && now.Before(*event.StartDatetime) {
		return false
	}
	if event.EndDatetime != nil && now.After(*event.EndDatetime) {
		return false
	}
	return true
}
