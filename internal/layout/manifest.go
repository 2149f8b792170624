package layout

import "fmt"

// Manifest is the machine-readable build summary written alongside the
// definition document for downstream tooling. Field order and grouping are
// deterministic, so repeated compiles of one input produce identical bytes.
type Manifest struct {
	Region    string          `yaml:"region"`
	Cols      int             `yaml:"cols"`
	Rows      int             `yaml:"rows"`
	Locations int             `yaml:"locations"`
	Groups    []ManifestGroup `yaml:"groups"`
}

// ManifestGroup lists the instances of one grid letter.
type ManifestGroup struct {
	Letter    string   `yaml:"letter"`
	Prototype string   `yaml:"prototype"`
	Labels    []string `yaml:"labels"`
}

// BuildManifest derives the manifest from a parsed layout using the same
// grouping and labeling as emission.
//
// Precondition: l contains region and map sections and a prototype for
// every occupied letter.
func (l *Layout) BuildManifest() (*Manifest, error) {
	if l.Region == nil {
		return nil, fmt.Errorf("%w: missing region section", ErrStructure)
	}
	if l.Grid == nil {
		return nil, fmt.Errorf("%w: missing map section", ErrStructure)
	}

	m := &Manifest{Region: l.Region.Name, Cols: l.Grid.Cols, Rows: l.Grid.Rows}
	for _, group := range l.Grid.letterGroups() {
		mg := ManifestGroup{Letter: group.letter}
		for _, c := range group.cells {
			label, err := l.locationLabel(group.letter[0], c.i, c.j)
			if err != nil {
				return nil, err
			}
			mg.Labels = append(mg.Labels, label)
		}
		mg.Prototype = l.Locations[group.letter].Name
		m.Locations += len(group.cells)
		m.Groups = append(m.Groups, mg)
	}
	return m, nil
}
