package account

import (
	"context"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Policy issues capabilities over accounts
type Policy struct {
	repository Repository
}

func NewPolicy(repository Repository) Policy {
	return Policy{repository}
}

// CanRead passes for public accounts, the account itself, and admins
func (p Policy) CanRead(id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](func(ctx context.Context, actor core.Actor) (bool, error) {
		account, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return !account.IsPrivate || account.ID == actor.ID || actor.IsAdmin(), nil
	}, "account is private")
}

func (p Policy) CanUpdate(id string) policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](policy.Or(policy.IsSelf(id), policy.IsAdmin), "only the owner or an admin can update an account")
}

func (p Policy) CanDelete(id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](policy.Or(policy.IsSelf(id), policy.IsAdmin), "only the owner or an admin can delete an account")
}
