package view

import (
	"sync"

	"github.com/safespacehq/safespace-service/internal/storage"
	"github.com/safespacehq/safespace-service/internal/types"
)

// Router holds exactly one current view. Navigation replaces it
// unconditionally; there is no history stack and no guard logic.
type Router struct {
	mu      sync.RWMutex
	current types.View
}

// NewRouter starts at the home view.
func NewRouter() *Router {
	return &Router{current: types.HomeView()}
}

func (r *Router) Navigate(v types.View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = v
}

func (r *Router) Current() types.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Resolve returns the view that should actually render. A story view whose id
// no longer resolves in the store degrades to home instead of erroring, which
// matches how bad links are masked rather than surfaced.
func (r *Router) Resolve(store storage.Storage) types.View {
	current := r.Current()
	if current.Type != types.ViewStory {
		return current
	}
	if _, ok := store.Get(current.StoryID); !ok {
		return types.HomeView()
	}
	return current
}
