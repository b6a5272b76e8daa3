package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/spachava753/aocharness/internal/models"
)

// Registry resolves problem keys to solution implementations. Namespaces are
// registered up front; each one's catalog is built lazily on first use and
// cached for the lifetime of the Registry.
type Registry struct {
	prefix     string
	namespaces map[int]Namespace

	mu       sync.Mutex
	catalogs map[int]*Catalog
	loads    singleflight.Group
}

// New creates a Registry over the given namespaces. It panics if two
// namespaces claim the same year.
func New(prefix string, namespaces ...Namespace) *Registry {
	r := &Registry{
		prefix:     prefix,
		namespaces: make(map[int]Namespace, len(namespaces)),
		catalogs:   make(map[int]*Catalog),
	}
	for _, ns := range namespaces {
		year := ns.Year()
		if _, exists := r.namespaces[year]; exists {
			panic(fmt.Sprintf("registry: namespace %s%d already registered", prefix, year))
		}
		slog.Debug("registering namespace", "namespace", r.namespaceName(year))
		r.namespaces[year] = ns
	}
	return r
}

// Prefix returns the namespace prefix, e.g. "Solutions".
func (r *Registry) Prefix() string {
	return r.prefix
}

// ListNamespaces returns the distinct years with a registered namespace in
// ascending order.
func (r *Registry) ListNamespaces() ([]int, error) {
	years := make([]int, 0, len(r.namespaces))
	for year := range r.namespaces {
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, models.Errorf(models.ErrNoNamespacesFound, "no %s{year} namespaces are registered", r.prefix)
	}
	sort.Ints(years)
	return years, nil
}

// HasNamespace reports whether a namespace is registered for year.
func (r *Registry) HasNamespace(year int) bool {
	_, ok := r.namespaces[year]
	return ok
}

// catalog returns the catalog for year, building it on first use. Concurrent
// first uses share a single load.
func (r *Registry) catalog(year int) (*Catalog, error) {
	r.mu.Lock()
	c, ok := r.catalogs[year]
	r.mu.Unlock()
	if ok {
		return c, nil
	}

	ns, ok := r.namespaces[year]
	if !ok {
		return nil, fmt.Errorf("namespace %s is not registered", r.namespaceName(year))
	}

	v, _, _ := r.loads.Do(strconv.Itoa(year), func() (any, error) {
		r.mu.Lock()
		if c, ok := r.catalogs[year]; ok {
			r.mu.Unlock()
			return c, nil
		}
		r.mu.Unlock()

		c := newCatalog(r.namespaceName(year), year)
		ns.Register(c)
		slog.Debug("namespace loaded", "namespace", c.Namespace(), "types", c.Len())

		r.mu.Lock()
		r.catalogs[year] = c
		r.mu.Unlock()
		return c, nil
	})

	return v.(*Catalog), nil
}

func (r *Registry) namespaceName(year int) string {
	return fmt.Sprintf("%s%d", r.prefix, year)
}
