package policy

import (
	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// Entity names the kind of resource a capability is scoped to.
// Implementations are empty marker structs declared by each domain package.
type Entity interface {
	EntityName() string
}

// Action names the operation a capability is scoped to
type Action interface {
	ActionName() string
}

type Create struct{}
type Read struct{}
type Update struct{}
type Delete struct{}
type Like struct{}
type Join struct{}
type Leave struct{}
type Check struct{}
type Send struct{}
type MarkRead struct{}

func (Create) ActionName() string   { return "create" }
func (Read) ActionName() string     { return "read" }
func (Update) ActionName() string   { return "update" }
func (Delete) ActionName() string   { return "delete" }
func (Like) ActionName() string     { return "like" }
func (Join) ActionName() string     { return "join" }
func (Leave) ActionName() string    { return "leave" }
func (Check) ActionName() string    { return "check" }
func (Send) ActionName() string     { return "send" }
func (MarkRead) ActionName() string { return "mark-read" }

// AuthorizedActor is a capability token: it proves that a policy for (E, A)
// passed for the wrapped actor during the current request.
//
// Only this package issues tokens. A token built outside of it is the zero
// value, which Verify rejects. This is an in-process marker, not a
// cryptographic proof; it must not cross process boundaries.
type AuthorizedActor[E Entity, A Action] struct {
	actor  core.Actor
	issued bool
}

func issue[E Entity, A Action](actor core.Actor) AuthorizedActor[E, A] {
	return AuthorizedActor[E, A]{actor: actor, issued: true}
}

// Actor returns the actor the capability was issued to
func (t AuthorizedActor[E, A]) Actor() core.Actor {
	return t.actor
}

// ID returns the id of the actor the capability was issued to
func (t AuthorizedActor[E, A]) ID() string {
	return t.actor.ID
}

func (t AuthorizedActor[E, A]) Entity() string {
	var e E
	return e.EntityName()
}

func (t AuthorizedActor[E, A]) Action() string {
	var a A
	return a.ActionName()
}

// Verify fails unless the token was issued by a policy check or WithSystemActor
func (t AuthorizedActor[E, A]) Verify() error {
	if !t.issued {
		return core.NewErrorUnauthorized(t.actor.ID, t.Entity(), t.Action(), "capability was not issued by a policy check")
	}
	return nil
}
