package layout

import (
	"fmt"
	"io"
	"strings"
)

// defaultLocationBase is the base prototype assumed when a location header
// omits one.
const defaultLocationBase = "location"

// Parse reads a layout description and builds the Layout aggregate. The
// recognized sections are region, map, location, and portal; any other
// section name is fatal.
//
// Postcondition: returns a Layout with region, grid, and prototype tables
// populated, or a non-nil error wrapping one of the layout error classes.
func Parse(r io.Reader) (*Layout, error) {
	sections, err := SplitSections(r)
	if err != nil {
		return nil, err
	}

	l := NewLayout()
	for _, sec := range sections {
		switch sec.Name {
		case "region":
			err = l.parseRegion(sec.Blocks)
		case "map":
			err = l.parseMap(sec.Blocks)
		case "location":
			err = l.parseLocations(sec.Blocks)
		case "portal":
			err = l.parsePortals(sec.Blocks)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownSection, sec.Name)
		}
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Layout) parseRegion(blocks [][]string) error {
	if len(blocks) != 1 {
		return fmt.Errorf("%w: region section must contain exactly one block, got %d", ErrStructure, len(blocks))
	}
	block := blocks[0]
	l.Region = &Region{Name: block[0], Attrs: block[1:]}
	return nil
}

func (l *Layout) parseMap(blocks [][]string) error {
	if len(blocks) != 1 {
		return fmt.Errorf("%w: map section must contain exactly one block, got %d", ErrStructure, len(blocks))
	}
	grid, err := NewGrid(blocks[0])
	if err != nil {
		return err
	}
	l.Grid = grid
	return nil
}

func (l *Layout) parseLocations(blocks [][]string) error {
	for _, block := range blocks {
		parts := strings.Fields(block[0])
		if len(parts) < 2 {
			return fmt.Errorf("%w: location header must be \"<letter> <name> [<prototype>]\", got %q", ErrStructure, block[0])
		}
		p := &Prototype{Name: parts[1], Base: defaultLocationBase, Attrs: block[1:]}
		if len(parts) >= 3 {
			p.Base = parts[2]
		}
		// Last declaration of a letter wins.
		l.Locations[parts[0]] = p
	}
	return nil
}

func (l *Layout) parsePortals(blocks [][]string) error {
	for _, block := range blocks {
		parts := strings.Fields(block[0])

		// Keys are the leading run of two-character tokens; the first token
		// of any other length is the instance name.
		numKeys := -1
		for i, part := range parts {
			if len(part) != 2 {
				numKeys = i
				break
			}
		}
		if numKeys < 0 {
			return fmt.Errorf("%w: portal header %q has no instance name after its keys", ErrStructure, block[0])
		}

		p := &Prototype{Name: parts[numKeys], Attrs: block[1:]}
		if len(parts) > numKeys+1 {
			p.Base = parts[numKeys+1]
		}
		for _, key := range parts[:numKeys] {
			l.setPortal(portalKey(key[0], key[1]), p)
		}
	}
	return nil
}
