package rpc

import (
	"fmt"
	"sort"
)

// Router is a named group of procedures.
type Router struct {
	name       string
	procedures map[string]Procedure
}

// NewRouter builds a router from its procedures. Duplicate procedure names
// are a wiring bug, so they panic at construction time.
func NewRouter(name string, procedures ...Procedure) *Router {
	r := &Router{name: name, procedures: make(map[string]Procedure, len(procedures))}
	for _, p := range procedures {
		if _, exists := r.procedures[p.Name]; exists {
			panic(fmt.Sprintf("rpc: duplicate procedure %q in router %q", p.Name, name))
		}
		r.procedures[p.Name] = p
	}
	return r
}

// Name returns the router's namespace segment.
func (r *Router) Name() string {
	return r.name
}

// Registry is the merged namespace: a fixed mapping from "router.procedure"
// to the procedure itself. Composition is static; there is no dynamic
// dispatch behind the map.
type Registry struct {
	procedures map[string]Procedure
}

// Merge composes routers into a single addressable surface. Duplicate
// router names panic at wiring time.
func Merge(routers ...*Router) *Registry {
	reg := &Registry{procedures: make(map[string]Procedure)}
	seen := make(map[string]bool, len(routers))
	for _, r := range routers {
		if seen[r.name] {
			panic(fmt.Sprintf("rpc: duplicate router %q", r.name))
		}
		seen[r.name] = true
		for name, p := range r.procedures {
			reg.procedures[r.name+"."+name] = p
		}
	}
	return reg
}

// Lookup returns the procedure registered under the full name.
func (reg *Registry) Lookup(name string) (Procedure, bool) {
	p, ok := reg.procedures[name]
	return p, ok
}

// Names returns all registered procedure names, sorted.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.procedures))
	for name := range reg.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
