// Package layout compiles an ASCII region-layout description into engine
// definition text. The input is split into named sections, each section is
// parsed into the Layout aggregate, and the Emit pass resolves the grid's
// connections and renders the definition document.
package layout

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// sectionMarker introduces a named section; everything before the first
// marker is ignored.
const sectionMarker = "!!"

// commentMarker discards the whole line wherever it appears, including
// inside blocks.
const commentMarker = "#"

// Section is one named chunk of the input: the name from its "!! <name>"
// header plus the blank-line-separated blocks that followed it, each block
// an ordered slice of raw lines.
type Section struct {
	Name   string
	Blocks [][]string
}

// SplitSections tokenizes a line-oriented stream into sections.
//
// Comment lines are dropped entirely, blank lines terminate the open block,
// and a marker line closes the current section and opens the next. A marker
// line with no name after it is fatal.
//
// Postcondition: returns the sections in input order, or a non-nil error.
func SplitSections(r io.Reader) ([]Section, error) {
	var (
		sections []Section
		current  *Section
		block    []string
	)

	closeBlock := func() {
		if block != nil {
			current.Blocks = append(current.Blocks, block)
			block = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		switch {
		case strings.HasPrefix(line, commentMarker):
			// Dropped even mid-block.
		case line == "":
			if current != nil {
				closeBlock()
			}
		case strings.HasPrefix(line, sectionMarker):
			// The name is everything after the marker token's first
			// whitespace run; a bare marker cannot be split.
			idx := strings.IndexAny(line, " \t")
			if idx < 0 {
				return nil, fmt.Errorf("section marker %q has no name", line)
			}
			name := strings.TrimLeft(line[idx+1:], " \t")
			if current != nil {
				closeBlock()
				sections = append(sections, *current)
			}
			current = &Section{Name: name}
		case current != nil:
			block = append(block, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout source: %w", err)
	}

	if current != nil {
		closeBlock()
		sections = append(sections, *current)
	}
	return sections, nil
}
