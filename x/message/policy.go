package message

import (
	"context"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Policy issues capabilities over direct messages
type Policy struct {
	repository Repository
	account    account.Repository
}

func NewPolicy(repository Repository, account account.Repository) Policy {
	return Policy{repository, account}
}

// CanSend passes when the receiver exists and is not the actor
func (p Policy) CanSend(receiverID string) policy.Policy[Entity, policy.Send] {
	return policy.New[Entity, policy.Send](func(ctx context.Context, actor core.Actor) (bool, error) {
		if actor.ID == receiverID {
			return false, nil
		}
		if _, err := p.account.Get(ctx, receiverID); err != nil {
			return false, err
		}
		return true, nil
	}, "cannot send a message to yourself")
}

func (p Policy) party(id string, sender, receiver bool) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		message, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return (sender && message.SenderAccountID == actor.ID) || (receiver && message.ReceiverAccountID == actor.ID), nil
	}
}

func (p Policy) CanRead(id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](p.party(id, true, true), "only the sender or the receiver can read a message")
}

// CanReadOwn passes for any actor; it scopes listing to the actor's own mailbox
func (p Policy) CanReadOwn() policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](policy.Allow)
}

func (p Policy) CanMarkRead(id string) policy.Policy[Entity, policy.MarkRead] {
	return policy.New[Entity, policy.MarkRead](p.party(id, false, true), "only the receiver can mark a message as read")
}

func (p Policy) CanDelete(id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](p.party(id, true, false), "only the sender can delete a message")
}
