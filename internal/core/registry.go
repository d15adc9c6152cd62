package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrIncompleteRegistry = errors.New("registry does not match its enumeration")

// Registry is a read-only table keyed by a closed enumeration. It can only be
// built with an entry for every member of the enumeration and nothing else.
type Registry[K comparable, V any] struct {
	name    string
	keys    []K
	entries map[K]V
}

func NewRegistry[K comparable, V any](name string, keys []K, entries map[K]V) (*Registry[K, V], error) {
	var missing, extra []string

	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
		if _, ok := entries[k]; !ok {
			missing = append(missing, fmt.Sprint(k))
		}
	}
	for k := range entries {
		if _, ok := seen[k]; !ok {
			extra = append(extra, fmt.Sprint(k))
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(extra)
		return nil, fmt.Errorf("%w: %s: missing [%s], unexpected [%s]",
			ErrIncompleteRegistry, name, strings.Join(missing, " "), strings.Join(extra, " "))
	}

	copied := make(map[K]V, len(entries))
	for k, v := range entries {
		copied[k] = v
	}

	return &Registry[K, V]{
		name:    name,
		keys:    append([]K(nil), keys...),
		entries: copied,
	}, nil
}

// MustRegistry is NewRegistry for package-level tables: an incomplete table
// stops the process at init.
func MustRegistry[K comparable, V any](name string, keys []K, entries map[K]V) *Registry[K, V] {
	r, err := NewRegistry(name, keys, entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the entry for k. A key outside the enumeration is a
// programming error and panics.
func (r *Registry[K, V]) Lookup(k K) V {
	v, ok := r.entries[k]
	if !ok {
		panic(fmt.Sprintf("%s: no entry for %v", r.name, k))
	}
	return v
}

func (r *Registry[K, V]) Keys() []K {
	return append([]K(nil), r.keys...)
}

func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}

func (r *Registry[K, V]) Name() string {
	return r.name
}
