package tag

import (
	"github.com/soheekimdev/backend-server-effect-sub000/x/challenge"
	"github.com/soheekimdev/backend-server-effect-sub000/x/policy"
	"github.com/soheekimdev/backend-server-effect-sub000/x/post"
)

// Policy issues capabilities over tags and tag connections.
// Attaching a tag needs the capability to update the tagged post or challenge.
type Policy struct {
	post      post.Policy
	challenge challenge.Policy
}

func NewPolicy(post post.Policy, challenge challenge.Policy) Policy {
	return Policy{post, challenge}
}

func (p Policy) CanCreate() policy.Policy[Entity, policy.Create] {
	return policy.New[Entity, policy.Create](policy.Allow)
}

func (p Policy) CanUpdate() policy.Policy[Entity, policy.Update] {
	return policy.New[Entity, policy.Update](policy.IsAdmin, "only admins can update tags")
}

func (p Policy) CanDelete() policy.Policy[Entity, policy.Delete] {
	return policy.New[Entity, policy.Delete](policy.IsAdmin, "only admins can delete tags")
}

// CanTagPost passes when the actor may create tags and update the post
func (p Policy) CanTagPost(postID string) policy.Policy[post.Entity, policy.Update] {
	return policy.Compose(p.CanCreate(), p.post.CanUpdate(postID))
}

func (p Policy) CanTagChallenge(challengeID string) policy.Policy[challenge.Entity, policy.Update] {
	return policy.Compose(p.CanCreate(), p.challenge.CanUpdate(challengeID))
}

func (p Policy) CanReadPost(postID string) policy.Policy[post.Entity, policy.Read] {
	return p.post.CanRead(postID)
}

func (p Policy) CanReadChallenge(challengeID string) policy.Policy[challenge.Entity, policy.Read] {
	return p.challenge.CanRead(challengeID)
}
