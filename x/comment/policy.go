package comment

import (
	"context"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
)

// Policy issues capabilities over comments
type Policy struct {
	repository Repository
	post       post.Policy
}

func NewPolicy(repository Repository, post post.Policy) Policy {
	return Policy{repository, post}
}

// CanCreate passes when the post can be read
func (p Policy) CanCreate(postID string) policy.Policy[Entity, policy.Create] {
	return policy.Compose(
		p.post.CanRead(postID),
		policy.New[Entity, policy.Create](policy.Allow),
	)
}

// CanList passes when the post can be read
func (p Policy) CanList(postID string) policy.Policy[post.Entity, policy.Read] {
	return p.post.CanRead(postID)
}

// postReadable passes when the post of the comment can be read. Denials are reported against the post.
func (p Policy) postReadable(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		comment, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		if _, err := p.post.CanRead(comment.PostID)(ctx); err != nil {
			return false, err
		}
		return true, nil
	}
}

func (p Policy) CanRead(id string) policy.Policy[Entity, policy.Read] {
	return policy.New[Entity, policy.Read](p.postReadable(id))
}

func (p Policy) CanLike(id string) policy.Policy[Entity, policy.Like] {
	return policy.New[Entity, policy.Like](p.postReadable(id))
}

func (p Policy) owned(id string) policy.Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		comment, err := p.repository.Get(ctx, id)
		if err != nil {
			return false, err
		}
		return comment.AccountID == actor.ID || actor.IsAdmin(), nil
	}
}

func (p Policy) CanUpdate(id string) policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](p.owned(id), "only the author or an admin can update a comment")
}

func (p Policy) CanDelete(id string) policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](p.owned(id), "only the author or an admin can delete a comment")
}
