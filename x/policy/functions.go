package policy

import (
	"context"

	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// Allow passes for any authenticated actor
func Allow(ctx context.Context, actor core.Actor) (bool, error) {
	return true, nil
}

// IsAdmin passes for admins
func IsAdmin(ctx context.Context, actor core.Actor) (bool, error) {
	return actor.IsAdmin(), nil
}

// IsSelf passes when the actor is the account id
func IsSelf(id string) Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		return actor.ID == id, nil
	}
}

// Or evaluates predicates left to right and stops at the first true or the first error
func Or(predicates ...Predicate) Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		for _, p := range predicates {
			ok, err := p(ctx, actor)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// And evaluates predicates left to right and stops at the first false or the first error
func And(predicates ...Predicate) Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		for _, p := range predicates {
			ok, err := p(ctx, actor)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}

func Not(predicate Predicate) Predicate {
	return func(ctx context.Context, actor core.Actor) (bool, error) {
		ok, err := predicate(ctx, actor)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
