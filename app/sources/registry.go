package sources

import (
	"sort"
	"strings"
	"sync"
)

// Registry holds the configured sources keyed by slug. Lookups are
// case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]*Source),
	}
}

// Add registers a source, replacing any previous one with the same slug.
func (r *Registry) Add(source *Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[strings.ToLower(source.Slug())] = source
}

func (r *Registry) Get(slug string) (*Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	source, ok := r.sources[strings.ToLower(slug)]
	if !ok {
		return nil, &UnknownSourceError{Slug: slug}
	}
	return source, nil
}

// Slugs returns the registered slugs in sorted order.
func (r *Registry) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.sources))
	for slug := range r.sources {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Sources returns the registered sources ordered by slug.
func (r *Registry) Sources() []*Source {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Source, 0, len(r.sources))
	for _, source := range r.sources {
		list = append(list, source)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Slug() < list[j].Slug()
	})
	return list
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sources)
}
