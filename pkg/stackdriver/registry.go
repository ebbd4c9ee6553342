package stackdriver

import (
	"fmt"
	"sort"
	"strings"
)

// Verb names one of the operations a collection can support. Verbs mirror
// the HTTP methods of the REST surface rather than ORM-style names.
type Verb string

// Supported verbs.
const (
	VerbList   Verb = "LIST"
	VerbGet    Verb = "GET"
	VerbCreate Verb = "CREATE"
	VerbDelete Verb = "DELETE"
	VerbQuery  Verb = "QUERY"
)

// Capabilities is the set of verbs a collection supports.
type Capabilities []Verb

// Has reports whether the verb is in the set.
func (c Capabilities) Has(verb Verb) bool {
	for _, candidate := range c {
		if candidate == verb {
			return true
		}
	}

	return false
}

// String renders the set for logs and error messages.
func (c Capabilities) String() string {
	names := make([]string, len(c))
	for i, verb := range c {
		names[i] = string(verb)
	}

	return strings.Join(names, ",")
}

// Registry enumerates the resource collections the API exposes and the verbs
// each supports. It is resolved once at client construction; there is no
// runtime discovery.
type Registry map[string]Capabilities

// DefaultRegistry returns the collections of the Stackdriver API surface.
func DefaultRegistry() Registry {
	return Registry{
		"users":          {VerbList, VerbGet},
		"groups":         {VerbList, VerbGet, VerbCreate, VerbDelete},
		"instances":      {VerbList, VerbGet},
		"alert_policies": {VerbList, VerbGet},
		"resolve":        {VerbQuery},
	}
}

// Resolve returns the capability set for a collection name. Names are
// case-insensitive; endpoints are always lowercase on the wire.
func (r Registry) Resolve(name string) (Capabilities, error) {
	caps, ok := r[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}

	return caps, nil
}

// Collections returns the registered collection names in sorted order.
func (r Registry) Collections() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
