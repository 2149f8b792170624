package layout

import "errors"

// Fatal error classes. Every compile failure wraps exactly one of these so
// callers (and tests) can classify failures with errors.Is without parsing
// message text.
var (
	// ErrStructure reports a section with the wrong block count or a
	// malformed block header.
	ErrStructure = errors.New("structure error")
	// ErrGridShape reports a map block violating the odd-dimensions rule.
	ErrGridShape = errors.New("grid shape error")
	// ErrReference reports a connector implying a letter or letter-pair
	// with no declared prototype.
	ErrReference = errors.New("reference error")
	// ErrUnknownSection reports a section name outside the recognized set.
	ErrUnknownSection = errors.New("unknown section")
)
