package navgraph

import (
	"maps"
	"slices"
	"strconv"
)

// Properties stores free-form key-value annotations attached to nodes or
// edges. Key order carries no meaning. A nil Properties reads like an empty one.
type Properties map[string]string

// Has reports whether key is set, even to an empty value.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Get returns the value for key, or "" if it is not set.
func (p Properties) Get(key string) string { return p[key] }

// Float returns the value for key parsed as a float64.
// Missing keys and unparsable values yield 0.
func (p Properties) Float(key string) float64 {
	v, err := strconv.ParseFloat(p[key], 64)
	if err != nil {
		return 0
	}
	return v
}

// Int returns the value for key parsed as a base-10 int.
// Missing keys and unparsable values yield 0.
func (p Properties) Int(key string) int {
	v, err := strconv.Atoi(p[key])
	if err != nil {
		return 0
	}
	return v
}

// Bool returns the value for key parsed with [strconv.ParseBool].
// Missing keys and unparsable values yield false.
func (p Properties) Bool(key string) bool {
	v, err := strconv.ParseBool(p[key])
	if err != nil {
		return false
	}
	return v
}

// Keys returns the property keys in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns a copy of p. The copy of a nil Properties is nil.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}
