package client

import (
	"context"
	"sync"
)

// LocationCache keeps an in-memory copy of the location list, synchronized
// with the server through mutation echoes rather than re-fetching. Mutations
// apply the server-returned canonical record, so server-assigned fields show
// up immediately after an add.
//
// Concurrent refreshes are guarded by a sequence token: each fetch records
// the token it was issued with and a response is discarded when a newer
// refresh has started since.
type LocationCache struct {
	client *Client

	mu        sync.Mutex
	seq       uint64
	locations []Location
	loading   bool
	err       error
}

func NewLocationCache(client *Client) *LocationCache {
	return &LocationCache{client: client}
}

// Refresh fetches the full list and replaces the cached copy. Loading always
// clears, even on failure. Safe to call concurrently; stale responses lose.
func (lc *LocationCache) Refresh(ctx context.Context) error {
	lc.mu.Lock()
	lc.seq++
	token := lc.seq
	lc.loading = true
	lc.err = nil
	lc.mu.Unlock()

	locations, err := lc.client.GetLocations(ctx)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if token != lc.seq {
		return err
	}

	lc.loading = false
	if err != nil {
		lc.err = err
		return err
	}

	lc.locations = locations
	return nil
}

// Add creates the location and appends the server-canonical record.
func (lc *LocationCache) Add(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	location, err := lc.client.CreateLocation(ctx, req)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if err != nil {
		lc.err = err
		return nil, err
	}

	lc.locations = append(lc.locations, *location)
	return location, nil
}

// Update replaces the matching cached item with the server-canonical record.
func (lc *LocationCache) Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	location, err := lc.client.UpdateLocation(ctx, id, req)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if err != nil {
		lc.err = err
		return nil, err
	}

	for i := range lc.locations {
		if lc.locations[i].ID == id {
			lc.locations[i] = *location
			break
		}
	}
	return location, nil
}

// Delete removes the matching cached item after the server delete succeeds.
func (lc *LocationCache) Delete(ctx context.Context, id string) error {
	err := lc.client.DeleteLocation(ctx, id)

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if err != nil {
		lc.err = err
		return err
	}

	for i := range lc.locations {
		if lc.locations[i].ID == id {
			lc.locations = append(lc.locations[:i], lc.locations[i+1:]...)
			break
		}
	}
	return nil
}

// Locations returns a copy of the cached list.
func (lc *LocationCache) Locations() []Location {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	out := make([]Location, len(lc.locations))
	copy(out, lc.locations)
	return out
}

func (lc *LocationCache) Loading() bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.loading
}

// Err returns the last operation error, or nil after a successful refresh.
func (lc *LocationCache) Err() error {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.err
}
