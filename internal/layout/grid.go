package layout

import (
	"fmt"
	"strings"
)

// Grid is the padded map buffer. Even interior rows and columns hold
// location letters, odd ones hold connector glyphs. Two blank rows and two
// blank columns of padding surround the buffer on every edge so neighbor
// probes never index out of range.
type Grid struct {
	// Cols and Rows are the logical dimensions (letter cells, not buffer
	// cells).
	Cols, Rows int

	rows []string
}

// NewGrid validates the raw map block and builds the padded buffer.
//
// Precondition: block is the map section's single block, comment and blank
// lines already removed.
// Postcondition: returns a Grid whose buffer rows all have uniform width,
// or an error wrapping ErrGridShape.
func NewGrid(block []string) (*Grid, error) {
	cols := 0
	for _, line := range block {
		if len(line)%2 == 0 {
			return nil, fmt.Errorf("%w: length of map line must be odd: %q", ErrGridShape, line)
		}
		cols = max(cols, (len(line)+1)/2)
	}
	if len(block)%2 == 0 {
		return nil, fmt.Errorf("%w: map block must contain an odd number of lines, got %d", ErrGridShape, len(block))
	}

	width := 2*cols + 3
	empty := strings.Repeat(" ", width)
	rows := make([]string, 0, len(block)+4)
	rows = append(rows, empty, empty)
	for _, line := range block {
		rows = append(rows, "  "+line+strings.Repeat(" ", width-2-len(line)))
	}
	rows = append(rows, empty, empty)

	return &Grid{Cols: cols, Rows: (len(block) + 1) / 2, rows: rows}, nil
}

// letterAt returns the character at logical cell (i, j).
func (g *Grid) letterAt(i, j int) byte {
	return g.rows[2+2*j][2+2*i]
}

// occupied reports whether a letter marks a real location; blank and "."
// cells are spacers.
func occupied(letter byte) bool {
	return letter != ' ' && letter != '.'
}

// cell is a logical grid position.
type cell struct {
	i, j int
}

// letterGroup is all occupied cells sharing one letter, in row-major scan
// order.
type letterGroup struct {
	letter string
	cells  []cell
}

// letterGroups scans the grid row-major and groups occupied cells by
// letter, groups ordered by first appearance.
func (g *Grid) letterGroups() []letterGroup {
	var groups []letterGroup
	index := make(map[byte]int)
	for j := 0; j < g.Rows; j++ {
		for i := 0; i < g.Cols; i++ {
			letter := g.letterAt(i, j)
			if !occupied(letter) {
				continue
			}
			gi, ok := index[letter]
			if !ok {
				gi = len(groups)
				index[letter] = gi
				groups = append(groups, letterGroup{letter: string(letter)})
			}
			groups[gi].cells = append(groups[gi].cells, cell{i, j})
		}
	}
	return groups
}

// colLabel names column i: A-Z for 0-25, then a-z. Grids wider than 52
// columns are not supported.
func colLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return string(rune('a' + (i - 26)))
}

// locationSuffix is the position part of an instance label, e.g. "A05".
func locationSuffix(i, j int) string {
	return fmt.Sprintf("%s%02d", colLabel(i), j)
}

// direction is one of the eight neighbor offsets in logical cells.
type direction struct {
	dx, dy int
	name   string
}

// exitDirections fixes the resolution (and emission) order of exits.
var exitDirections = []direction{
	{-1, -1, "northwest"},
	{-1, 0, "west"},
	{-1, 1, "southwest"},
	{0, -1, "north"},
	{0, 1, "south"},
	{1, -1, "northeast"},
	{1, 0, "east"},
	{1, 1, "southeast"},
}

// Exit is one resolved connection out of a location instance.
type Exit struct {
	Portal      string
	Direction   string
	Destination string
}

// locationLabel builds the unique instance label for the letter's cell.
//
// Precondition: the letter has a declared location prototype.
func (l *Layout) locationLabel(letter byte, i, j int) (string, error) {
	proto, ok := l.Locations[string(letter)]
	if !ok {
		return "", fmt.Errorf("%w: no location prototype for letter %q", ErrReference, string(letter))
	}
	return proto.Name + "_" + locationSuffix(i, j), nil
}

// Exits resolves cell (i, j)'s connections in the fixed direction order
// northwest, west, southwest, north, south, northeast, east, southeast. A
// connector cell is tested for presence only; its glyph never influences
// the direction, so an X at a shared corner satisfies exactly the one
// diagonal being probed.
//
// Precondition: the layout has a grid and (i, j) is an occupied cell.
// Postcondition: returns the resolved exits or an error wrapping
// ErrReference.
func (l *Layout) Exits(i, j int) ([]Exit, error) {
	letter := l.Grid.letterAt(i, j)
	x := 2 + 2*i
	y := 2 + 2*j
	var exits []Exit
	for _, d := range exitDirections {
		if l.Grid.rows[y+d.dy][x+d.dx] == ' ' {
			continue
		}
		destLetter := l.Grid.rows[y+2*d.dy][x+2*d.dx]
		dest, err := l.locationLabel(destLetter, i+d.dx, j+d.dy)
		if err != nil {
			return nil, fmt.Errorf("resolving %s exit of cell %s: %w", d.name, locationSuffix(i, j), err)
		}
		key := portalKey(letter, destLetter)
		portal, ok := l.Portals[key]
		if !ok {
			return nil, fmt.Errorf("%w: no portal prototype for letter pair %q", ErrReference, key)
		}
		exits = append(exits, Exit{Portal: portal.Name, Direction: d.name, Destination: dest})
	}
	return exits, nil
}
