package core

import (
	"context"
)

type actorCtxKey struct{}

// Actor is the authenticated identity executing the current request
type Actor struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsPrivate bool   `json:"isPrivate"`
}

// SystemActor is used for operations that run without an authenticated requester (sign-up, sign-in)
var SystemActor = Actor{
	ID:   "system",
	Role: RoleSystem,
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// WithActor binds the actor to the request context.
// A context carries at most one actor; binding again replaces it for the derived context only.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext returns the actor bound to ctx
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(Actor)
	return actor, ok
}

// CurrentActor returns the bound actor or ErrorUnauthenticated
func CurrentActor(ctx context.Context) (Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.ID == "" {
		return Actor{}, NewErrorUnauthenticated("no actor bound to this request")
	}
	return actor, nil
}
