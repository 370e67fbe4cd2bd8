package seller

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"lazapee/internal/api"
)

type State int

const (
	// StateSeller means the profile probe succeeded; Profile is set.
	StateSeller State = iota
	// StateNotSeller means the backend answered and there is no profile for
	// this user (not found, or the request was not authenticated).
	StateNotSeller
	// StateUnavailable means the probe could not be answered: transport
	// failure or a server-side error. Err carries the cause.
	StateUnavailable
)

// Status is the outcome of a seller-profile probe. "no profile" and
// "backend unreachable" are distinct outcomes; callers choose how to treat
// each.
type Status struct {
	State   State
	Profile *api.Seller
	Err     error
}

func (s Status) IsSeller() bool { return s.State == StateSeller }

// Resolver probes the current user's seller profile. Nothing is cached:
// every page that needs seller status resolves again. Concurrent probes are
// collapsed into a single backend request.
type Resolver struct {
	sellers *api.SellerService
	group   singleflight.Group
}

func NewResolver(sellers *api.SellerService) *Resolver {
	return &Resolver{sellers: sellers}
}

func (r *Resolver) Resolve(ctx context.Context) Status {
	result, err, _ := r.group.Do("my-seller-profile", func() (any, error) {
		return r.sellers.MyProfile(ctx)
	})
	if err == nil {
		return Status{State: StateSeller, Profile: result.(*api.Seller)}
	}

	if api.IsNotFound(err) || api.IsUnauthorized(err) {
		return Status{State: StateNotSeller}
	}

	log.Println("[SELLER] [ERROR] profile probe failed:", err)
	return Status{State: StateUnavailable, Err: err}
}
