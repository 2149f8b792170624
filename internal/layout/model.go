package layout

// Region holds the region's symbolic name and its raw attribute lines.
// Attribute lines are opaque to the compiler; they pass through to the
// emitted definition verbatim.
type Region struct {
	Name  string
	Attrs []string
}

// Prototype is a named location or portal template: the instance-name
// symbol, an optional base prototype, and raw attribute lines.
type Prototype struct {
	Name  string
	Base  string
	Attrs []string
}

// Layout is the aggregate built by Parse and consumed by Emit. It owns the
// prototype tables and the padded grid; resolved exits and location
// instances are derived during emission and never stored.
type Layout struct {
	Region    *Region
	Locations map[string]*Prototype // keyed by grid letter
	Portals   map[string]*Prototype // keyed by sorted letter pair

	// portalOrder records first-insertion order of portal keys so that
	// emission order is stable; overwriting a key keeps its position.
	portalOrder []string

	Grid *Grid
}

// NewLayout returns an empty Layout ready for parsing.
func NewLayout() *Layout {
	return &Layout{
		Locations: make(map[string]*Prototype),
		Portals:   make(map[string]*Prototype),
	}
}

// portalKey normalizes a two-letter combination by sorting its characters,
// so "FC" and "CF" identify the same portal prototype.
func portalKey(a, b byte) string {
	if a > b {
		a, b = b, a
	}
	return string([]byte{a, b})
}

// setPortal stores a portal prototype under an already-normalized key,
// keeping the key's first-seen position on overwrite.
func (l *Layout) setPortal(key string, p *Prototype) {
	if _, ok := l.Portals[key]; !ok {
		l.portalOrder = append(l.portalOrder, key)
	}
	l.Portals[key] = p
}
