package scope

import (
	"fmt"

	"link/shared/failure"
)

// Registry maps each logical table to the view created for it in one
// request. A zero Registry has nothing registered.
type Registry struct {
	views [tableCount]string
	order []Table
}

func (r *Registry) register(table Table, view string) {
	if r.views[table] == "" {
		r.order = append(r.order, table)
	}

	r.views[table] = view
}

// Lookup returns the view registered for table.
func (r *Registry) Lookup(table Table) (string, error) {
	if !table.valid() || r.views[table] == "" {
		return "", failure.InternalError(fmt.Errorf("no view registered for table %s", table))
	}

	return r.views[table], nil
}

// Created lists the registered view names in creation order.
func (r *Registry) Created() []string {
	names := make([]string, len(r.order))
	for i, table := range r.order {
		names[i] = r.views[table]
	}

	return names
}

// Complete reports whether every logical table has a view.
func (r *Registry) Complete() bool {
	return len(r.order) == int(tableCount)
}
