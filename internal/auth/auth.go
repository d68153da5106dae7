// Package auth holds the authorization predicates gating protected
// operations. Call sites compose predicates explicitly: plain authentication
// is IsAuthenticated alone, resource ownership layers IsOwner on top.
package auth

import (
	"errors"

	"github.com/RAINBOBOBO/Warbler/internal/domain"
)

// ErrDenied is returned when any predicate rejects the actor.
var ErrDenied = errors.New("access unauthorized")

// Predicate is a single authorization rule over the resolved current user,
// which may be nil for anonymous callers.
type Predicate func(u *domain.User) error

// Result is a granted authorization carrying the authenticated actor.
type Result struct {
	User *domain.User
}

// IsAuthenticated requires a signed-in user.
func IsAuthenticated(u *domain.User) error {
	if u == nil {
		return ErrDenied
	}
	return nil
}

// IsOwner requires the actor to own the resource identified by ownerID.
func IsOwner(ownerID uint) Predicate {
	return func(u *domain.User) error {
		if u == nil || u.ID != ownerID {
			return ErrDenied
		}
		return nil
	}
}

// Check evaluates the predicates in order and returns Authorized(user) as a
// Result, or ErrDenied from the first failing predicate.
func Check(u *domain.User, preds ...Predicate) (Result, error) {
	for _, p := range preds {
		if err := p(u); err != nil {
			return Result{}, err
		}
	}
	return Result{User: u}, nil
}
