package post

import (
	"context"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/account"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
)

// Policy issues capabilities over posts
type Policy struct {
	repository Repository
	account    account.Repository
}

func NewPolicy(repository Repository, account account.Repository) Policy {
	return Policy{repository, account}
}

// CanCreate passes for any actor. Notices are reserved to admins.
func (p Policy) CanCreate(postType string) policy.Policy[Entity, policy.Create] {
	if postType == core.PostTypeNotice {
		return policy.New[Entity, policy.Create](policy.IsAdmin, "only admins can post notices")
	}
	return policy.New[Entity, policy.Create](policy.Allow)
}

func (p Policy) readable(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		post, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		if post.AccountID == actor.ID || actor.IsAdmin() {
			return true, nil
		}

		author, err := p.account.Get(ctx, post.AccountID)
		if err != nil {
			return false, err
		}
		return !author.IsPrivate, nil
	}
}

// CanRead passes when the post exists and its author is public, or for the author and admins
func (p Policy) CanRead(id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](p.readable(id), "the author of this post is private")
}

func (p Policy) owned(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		post, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return post.AccountID == actor.ID || actor.IsAdmin(), nil
	}
}

func (p Policy) CanUpdate(id string) policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](p.owned(id), "only the author or an admin can update a post")
}

func (p Policy) CanDelete(id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](p.owned(id), "only the author or an admin can delete a post")
}

// CanLike passes whenever the post is readable
func (p Policy) CanLike(id string) policy.Policy[Entity, policy.Like] {
	return policy.New[Entity, policy.Like](p.readable(id), "the author of this post is private")
}
