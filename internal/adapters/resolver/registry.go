package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/quicklist/quicklist-api/internal/domain"
	"github.com/quicklist/quicklist-api/internal/ports"
)

// Registry maps provider names to their VideoResolver implementations.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]ports.VideoResolver
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]ports.VideoResolver),
	}
}

// Register adds a resolver to the registry, keyed by its Name(). Registration
// order is the order Resolve tries providers in.
func (r *Registry) Register(resolver ports.VideoResolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := resolver.Name()
	if _, exists := r.resolvers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.resolvers[name] = resolver
}

// Get returns the resolver for the given name, or an error if not found.
func (r *Registry) Get(name string) (ports.VideoResolver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolver, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return resolver, nil
}

// Available returns the names of all registered resolvers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Resolve tries each registered provider against rawURL until one recognises
// it. A provider that cannot parse the URL is skipped; any other failure is
// returned as-is. When no provider recognises the URL the result is a
// domain.ValidationError.
func (r *Registry) Resolve(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	r.mu.RLock()
	candidates := make([]ports.VideoResolver, 0, len(r.order))
	for _, name := range r.order {
		candidates = append(candidates, r.resolvers[name])
	}
	r.mu.RUnlock()

	var verr *domain.ValidationError
	for _, resolver := range candidates {
		meta, err := resolver.Resolve(ctx, rawURL)
		if err == nil {
			return meta, nil
		}
		if errors.As(err, &verr) {
			continue
		}
		return nil, err
	}
	return nil, domain.Validationf("no registered provider recognises URL %q", rawURL)
}
