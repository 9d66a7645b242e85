package route

import (
	"context"
	"fmt"

	"github.com/NekoNekoNiko120/relay"
)

// Resolver picks a concrete backend for a required kind from the live
// backend set. The set is queried fresh per resolution; nothing is cached.
type Resolver struct {
	lister relay.BackendLister
}

// NewResolver creates a Resolver over the given connectivity collaborator.
func NewResolver(lister relay.BackendLister) *Resolver {
	return &Resolver{lister: lister}
}

// Resolve returns a live backend of the requested kind. The preferred
// backend wins when alive; otherwise the first live backend of the kind in
// registration order serves instead, so tool behavior stays deterministic
// when the exact named backend is down but an equivalent one is up.
func (r *Resolver) Resolve(ctx context.Context, kind, preferredID string) (relay.Backend, error) {
	backends, err := r.lister.ListActive(ctx)
	if err != nil {
		return relay.Backend{}, fmt.Errorf("list backends: %w", err)
	}

	var fallback *relay.Backend
	for i, b := range backends {
		if b.Kind != kind || !b.Alive {
			continue
		}
		if b.ID == preferredID {
			return b, nil
		}
		if fallback == nil {
			fallback = &backends[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return relay.Backend{}, fmt.Errorf("no live backend of kind %q: %w", kind, relay.ErrBackendUnavailable)
}
