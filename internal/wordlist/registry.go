package wordlist

import "sort"

// Registry holds the available word lists and resolves a selected name
// to its dataset, falling back to a designated default for unknown names.
type Registry struct {
	lists       map[string]*Dataset
	defaultName string
}

// NewRegistry creates an empty registry. The first dataset added becomes
// the default unless SetDefault is called.
func NewRegistry() *Registry {
	return &Registry{lists: make(map[string]*Dataset)}
}

// Add registers a dataset under its name, replacing any existing entry.
func (r *Registry) Add(ds *Dataset) {
	r.lists[ds.Name] = ds
	if r.defaultName == "" {
		r.defaultName = ds.Name
	}
}

// SetDefault marks the named list as the fallback for unknown names.
// Unknown names are ignored.
func (r *Registry) SetDefault(name string) {
	if _, ok := r.lists[name]; ok {
		r.defaultName = name
	}
}

// DefaultName returns the name of the fallback list.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Resolve returns the dataset for name, or the default dataset when the
// name is unknown. It returns ErrEmptyDataset when the resolved dataset
// has no questions; a zero-question session must never be built.
func (r *Registry) Resolve(name string) (*Dataset, error) {
	ds, ok := r.lists[name]
	if !ok {
		ds, ok = r.lists[r.defaultName]
	}
	if !ok || ds == nil || len(ds.Questions) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// Names returns the registered list names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
