package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLocationServer is a minimal in-memory locations backend.
type fakeLocationServer struct {
	mu        sync.Mutex
	locations map[string]Location
	nextID    int
}

func newFakeLocationServer() *fakeLocationServer {
	return &fakeLocationServer{locations: map[string]Location{}}
}

func (f *fakeLocationServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /locations", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []Location{}
		for _, loc := range f.locations {
			out = append(out, loc)
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("POST /locations", func(w http.ResponseWriter, r *http.Request) {
		var req CreateLocationRequest
		json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.nextID++
		loc := Location{
			ID:      "srv-" + strconv.Itoa(f.nextID),
			Name:    req.Name,
			Address: req.Address,
			City:    req.City,
			Country: req.Country,
		}
		f.locations[loc.ID] = loc

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(loc)
	})

	mux.HandleFunc("PUT /locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var req UpdateLocationRequest
		json.NewDecoder(r.Body).Decode(&req)

		f.mu.Lock()
		defer f.mu.Unlock()
		loc, ok := f.locations[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Location not found"})
			return
		}
		if req.Name != nil {
			loc.Name = *req.Name
		}
		f.locations[id] = loc
		json.NewEncoder(w).Encode(loc)
	})

	mux.HandleFunc("DELETE /locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.locations, r.PathValue("id"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Location deleted successfully"})
	})

	return mux
}

func setupCache(t *testing.T) (*LocationCache, *fakeLocationServer) {
	fake := newFakeLocationServer()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	return NewLocationCache(New(srv.URL)), fake
}

func TestLocationCache_RefreshReplacesItems(t *testing.T) {
	cache, fake := setupCache(t)
	ctx := context.Background()

	fake.locations["srv-1"] = Location{ID: "srv-1", Name: "Alpha Club"}

	require.NoError(t, cache.Refresh(ctx))
	assert.Len(t, cache.Locations(), 1)
	assert.False(t, cache.Loading())
	assert.NoError(t, cache.Err())
}

func TestLocationCache_AddAppendsServerCanonicalRecord(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Refresh(ctx))

	loc, err := cache.Add(ctx, CreateLocationRequest{
		Name:    "Court Club",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
	})
	require.NoError(t, err)

	// the cached copy must carry the server-assigned id, not the input
	items := cache.Locations()
	require.Len(t, items, 1)
	assert.Equal(t, loc.ID, items[0].ID)
	assert.NotEmpty(t, items[0].ID)
}

func TestLocationCache_UpdateReplacesMatchingItem(t *testing.T) {
	cache, fake := setupCache(t)
	ctx := context.Background()

	fake.locations["srv-1"] = Location{ID: "srv-1", Name: "Alpha Club"}
	require.NoError(t, cache.Refresh(ctx))

	name := "Renamed Club"
	_, err := cache.Update(ctx, "srv-1", UpdateLocationRequest{Name: &name})
	require.NoError(t, err)

	items := cache.Locations()
	require.Len(t, items, 1)
	assert.Equal(t, "Renamed Club", items[0].Name)
}

func TestLocationCache_UpdateFailureSetsErrAndReturns(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	name := "Renamed Club"
	_, err := cache.Update(ctx, "missing", UpdateLocationRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, err, cache.Err())
}

func TestLocationCache_DeleteRemovesItem(t *testing.T) {
	cache, fake := setupCache(t)
	ctx := context.Background()

	fake.locations["srv-1"] = Location{ID: "srv-1", Name: "Alpha Club"}
	require.NoError(t, cache.Refresh(ctx))

	require.NoError(t, cache.Delete(ctx, "srv-1"))
	assert.Empty(t, cache.Locations())
}

func TestLocationCache_StaleRefreshLoses(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			// first refresh parks until the second has completed
			<-release
			w.Write([]byte(`[{"id":"stale","name":"Stale Club"}]`))
			return
		}
		w.Write([]byte(`[{"id":"fresh","name":"Fresh Club"}]`))
	}))
	defer srv.Close()

	cache := NewLocationCache(New(srv.URL))
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		cache.Refresh(ctx)
		close(done)
	}()

	// wait for the first request to be in flight
	for {
		mu.Lock()
		started := calls >= 1
		mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, cache.Refresh(ctx))
	close(release)
	<-done

	items := cache.Locations()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}
