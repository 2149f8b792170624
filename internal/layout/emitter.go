package layout

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// wrapColumn is the column past which an exits line is broken at its last
// preceding comma.
const wrapColumn = 90

// continuationIndent prefixes every wrapped continuation of an exits line.
const continuationIndent = "          "

// Result holds the rendered definition document and emission statistics.
type Result struct {
	Document  []byte
	Locations int
}

// Emit renders the complete definition document: region, map diagram,
// deduplicated portal prototypes, then each location prototype followed by
// its instances. The document is rendered entirely in memory so a failed
// emission produces no output at all.
//
// Precondition: l was produced by Parse and contains region and map
// sections.
// Postcondition: returns the document bytes and the instance count, or a
// non-nil error.
func Emit(l *Layout) (*Result, error) {
	if l.Region == nil {
		return nil, fmt.Errorf("%w: missing region section", ErrStructure)
	}
	if l.Grid == nil {
		return nil, fmt.Errorf("%w: missing map section", ErrStructure)
	}

	e := &emitter{layout: l}
	e.writeRegion()
	e.writeMapDiagram()
	e.writePortalPrototypes()
	count, err := e.writeLocations()
	if err != nil {
		return nil, err
	}
	return &Result{Document: e.buf.Bytes(), Locations: count}, nil
}

type emitter struct {
	layout *Layout
	buf    bytes.Buffer
}

// writeDefinition renders one definition block. Attribute values containing
// newlines (wrapped exits lines) carry their own continuation indent.
func (e *emitter) writeDefinition(prefix string, attrs []string) {
	fmt.Fprintf(&e.buf, "%s {\n", prefix)
	for _, attr := range attrs {
		fmt.Fprintf(&e.buf, "  %s\n", attr)
	}
	e.buf.WriteString("}\n\n")
}

func (e *emitter) writePrototype(p *Prototype) {
	e.writeDefinition(fmt.Sprintf("def entity %s: %s", p.Name, p.Base), p.Attrs)
}

func (e *emitter) writeRegion() {
	r := e.layout.Region
	e.writeDefinition(fmt.Sprintf("def region %s", r.Name), r.Attrs)
}

// writeMapDiagram reproduces the grid as a comment, annotated with column
// letters and row numbers, followed by a letter legend.
func (e *emitter) writeMapDiagram() {
	g := e.layout.Grid

	e.buf.WriteString("/*\n")
	labels := make([]string, g.Cols)
	for i := range labels {
		labels[i] = colLabel(i)
	}
	e.buf.WriteString("    " + strings.Join(labels, " ") + "\n")

	// One padding row is kept on each side of the content; letter rows
	// land on odd indices of the slice and get their row number.
	for idx, row := range g.rows[1 : len(g.rows)-1] {
		if idx%2 == 1 {
			fmt.Fprintf(&e.buf, "%02d", idx/2)
		} else {
			e.buf.WriteString("  ")
		}
		e.buf.WriteString(strings.TrimRight(row, " ") + "\n")
	}

	letters := make([]string, 0, len(e.layout.Locations))
	for letter := range e.layout.Locations {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		fmt.Fprintf(&e.buf, "  %s = %s\n", letter, e.layout.Locations[letter].Name)
	}
	e.buf.WriteString("*/\n\n")
}

// writePortalPrototypes emits one definition per unique portal instance
// name, first-seen order, skipping later keys that reuse a name.
func (e *emitter) writePortalPrototypes() {
	e.buf.WriteString("//# portal prototypes\n\n")
	seen := make(map[string]bool)
	for _, key := range e.layout.portalOrder {
		p := e.layout.Portals[key]
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		e.writePrototype(p)
	}
}

// writeLocations emits, per letter in first-seen scan order, the letter's
// prototype followed by one instance definition per occupied cell.
func (e *emitter) writeLocations() (int, error) {
	count := 0
	for _, group := range e.layout.Grid.letterGroups() {
		proto, ok := e.layout.Locations[group.letter]
		if !ok {
			return 0, fmt.Errorf("%w: no location prototype for letter %q", ErrReference, group.letter)
		}
		fmt.Fprintf(&e.buf, "//# %s\n\n", proto.Name)
		e.writePrototype(proto)
		for _, c := range group.cells {
			if err := e.writeLocation(group.letter[0], c.i, c.j); err != nil {
				return 0, err
			}
			count++
		}
	}
	return count, nil
}

func (e *emitter) writeLocation(letter byte, i, j int) error {
	exits, err := e.layout.Exits(i, j)
	if err != nil {
		return err
	}
	label, err := e.layout.locationLabel(letter, i, j)
	if err != nil {
		return err
	}
	proto := e.layout.Locations[string(letter)]
	e.writeDefinition(fmt.Sprintf("def location %s: %s", label, proto.Name), []string{formatExits(exits)})
	return nil
}

// formatExits renders the exits attribute, wrapping at the last comma
// before the wrap column. A line with no comma before the column is left
// oversized.
func formatExits(exits []Exit) string {
	parts := make([]string, len(exits))
	for i, x := range exits {
		parts[i] = fmt.Sprintf("%s -> '%s to %s", x.Portal, x.Direction, x.Destination)
	}
	s := "exits = [" + strings.Join(parts, ", ") + "]"

	var lines []string
	for len(s) > wrapColumn {
		p := strings.LastIndex(s[:wrapColumn], ",")
		if p < 0 {
			break
		}
		lines = append(lines, s[:p+1])
		s = continuationIndent + s[p+1:]
	}
	lines = append(lines, s)
	return strings.Join(lines, "\n")
}
