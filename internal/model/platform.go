package model

// PlatformGroup is a named group of URLs taken from the input file.
// Groups are created by the input parser and are not modified afterwards.
type PlatformGroup struct {
	// Name is the platform name as written before the first colon of its header.
	Name string `json:"name"`

	// URLs is the ordered list of link strings listed under the header.
	// Entries may be the sentinel "unavailable".
	URLs []string `json:"urls"`
}

// PlatformList is an insertion-ordered collection of platform groups.
//
// Design decision: Go maps do not preserve insertion order, and the report
// must list platforms in the order they appear in the file. We therefore keep
// a slice for order and an index map for lookups by name.
type PlatformList struct {
	groups []*PlatformGroup
	index  map[string]int
}

// NewPlatformList creates an empty PlatformList.
func NewPlatformList() *PlatformList {
	return &PlatformList{
		groups: make([]*PlatformGroup, 0),
		index:  make(map[string]int),
	}
}

// Start begins a new platform with an empty URL list and returns it.
// If a platform with the same name already exists, its list is reset but it
// keeps its original position.
func (l *PlatformList) Start(name string) *PlatformGroup {
	if i, ok := l.index[name]; ok {
		l.groups[i].URLs = make([]string, 0)
		return l.groups[i]
	}

	group := &PlatformGroup{Name: name, URLs: make([]string, 0)}
	l.index[name] = len(l.groups)
	l.groups = append(l.groups, group)
	return group
}

// Get returns the platform with the given name.
func (l *PlatformList) Get(name string) (*PlatformGroup, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.groups[i], true
}

// Groups returns the platforms in insertion order.
func (l *PlatformList) Groups() []*PlatformGroup {
	return l.groups
}

// Len returns the number of platforms.
func (l *PlatformList) Len() int {
	return len(l.groups)
}

// TotalURLs returns the number of URLs across all platforms.
func (l *PlatformList) TotalURLs() int {
	total := 0
	for _, g := range l.groups {
		total += len(g.URLs)
	}
	return total
}
