package resolve

// Entry pairs a field name with its substitution value.
type Entry struct {
	Name  string
	Value string
}

// Mapping is an ordered list of entries, in field declaration order.
type Mapping []Entry

// Names returns the field names in order.
func (m Mapping) Names() []string {
	names := make([]string, len(m))
	for i, e := range m {
		names[i] = e.Name
	}

	return names
}
