package registry

import (
	"sort"

	"github.com/spachava753/aocharness/internal/models"
)

// Resolve returns the implementation of key with the given version ordinal:
// 0 selects the baseline "Run", N selects "RunV{N}".
func (r *Registry) Resolve(key models.ProblemKey, ordinal int) (models.Implementation, error) {
	name := models.ImplementationName(ordinal)

	c, err := r.catalog(key.Year)
	if err != nil {
		return models.Implementation{}, models.WrapError(models.ErrImplementationNotFound, err, "resolving %s", name)
	}

	typeName := key.TypeName(c.Namespace())
	st, ok := c.lookup(key)
	if !ok {
		return models.Implementation{}, models.Errorf(models.ErrImplementationNotFound,
			"solution type %s not found", typeName)
	}

	for _, impl := range st.impls {
		if impl.Ordinal == ordinal {
			return impl, nil
		}
	}

	return models.Implementation{}, models.Errorf(models.ErrImplementationNotFound,
		"implementation %s() not found in %s", name, typeName)
}

// ResolveAll returns every implementation of key, baseline first, then by
// ascending version ordinal. Ties keep registration order.
func (r *Registry) ResolveAll(key models.ProblemKey) ([]models.Implementation, error) {
	c, err := r.catalog(key.Year)
	if err != nil {
		return nil, models.WrapError(models.ErrNoImplementationsFound, err, "resolving %s", key)
	}

	typeName := key.TypeName(c.Namespace())
	st, ok := c.lookup(key)
	if !ok || len(st.impls) == 0 {
		return nil, models.Errorf(models.ErrNoImplementationsFound,
			"no Run*() implementations found in %s", typeName)
	}

	impls := make([]models.Implementation, len(st.impls))
	copy(impls, st.impls)
	sort.SliceStable(impls, func(i, j int) bool {
		return impls[i].Ordinal < impls[j].Ordinal
	})

	return impls, nil
}
