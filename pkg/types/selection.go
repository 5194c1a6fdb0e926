package types

// Selection is the ordered set of features chosen for a single run
type Selection []Feature

// Names returns the feature names in selection order
func (s Selection) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// IsEmpty reports whether nothing was selected
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// DevDependencies returns every selected feature's development dependencies
// in selection order. Duplicates are kept; the package manager resolves them.
func (s Selection) DevDependencies() []string {
	var deps []string
	for _, f := range s {
		deps = append(deps, f.DevDependencies...)
	}
	return deps
}

// Dependencies returns every selected feature's runtime dependencies in selection order
func (s Selection) Dependencies() []string {
	var deps []string
	for _, f := range s {
		deps = append(deps, f.Dependencies...)
	}
	return deps
}
