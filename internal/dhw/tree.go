package dhw

import (
	"github.com/alexiusacademia/gophb/internal/units"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// Branch is a stub off a trunk feeding an ordered list of fixtures.
type Branch struct {
	Identifier  string        `json:"identifier" yaml:"identifier"`
	DisplayName string        `json:"display_name" yaml:"display_name"`
	Pipe        PipeElement   `json:"pipe_element" yaml:"pipe_element"`
	Fixtures    []PipeElement `json:"twigs" yaml:"fixtures"`
	// Synthetic marks the branch created for fixtures added straight to a trunk.
	Synthetic bool `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

// NewBranch wraps a pipe element as a branch.
func NewBranch(name string, pipe PipeElement) *Branch {
	b := &Branch{Identifier: units.HBName(name, "Branch"), Pipe: pipe}
	b.DisplayName = b.Identifier
	return b
}

// AddFixture appends a fixture pipe.
func (b *Branch) AddFixture(f PipeElement) {
	b.Fixtures = append(b.Fixtures, f)
}

func (b Branch) Length(doc units.Document) float64 {
	sum := b.Pipe.Length(doc)
	for _, f := range b.Fixtures {
		sum += f.Length(doc)
	}
	return sum
}

// Trunk is the root of a distribution tree.
type Trunk struct {
	Identifier          string      `json:"identifier" yaml:"identifier"`
	DisplayName         string      `json:"display_name" yaml:"display_name"`
	Pipe                PipeElement `json:"pipe_element" yaml:"pipe_element"`
	Branches            []Branch    `json:"branches" yaml:"branches"`
	Multiplier          int         `json:"multiplier" yaml:"multiplier" validate:"gte=1"`
	DemandRecirculation bool        `json:"demand_recirculation" yaml:"demand_recirculation"`
	WaterTemp           float64     `json:"water_temp" yaml:"water_temp"`
}

// NewTrunk returns a trunk with multiplier 1.
func NewTrunk(name string, pipe PipeElement) *Trunk {
	t := &Trunk{Identifier: units.HBName(name, "Trunk"), Pipe: pipe, Multiplier: 1, WaterTemp: 60}
	t.DisplayName = t.Identifier
	return t
}

// SetMultiplier sets how many identical copies the trunk stands for.
func (t *Trunk) SetMultiplier(n int) error {
	if n < 1 {
		return ErrBadMultiplier
	}
	t.Multiplier = n
	return validate.Struct(t)
}

func (t *Trunk) AddBranch(b Branch) {
	t.Branches = append(t.Branches, b)
}

// AddFixture hosts a fixture directly on the trunk. The first call creates
// a synthetic branch with no pipe of its own; every later call reuses it.
func (t *Trunk) AddFixture(f PipeElement) {
	for i := range t.Branches {
		if t.Branches[i].Synthetic {
			t.Branches[i].AddFixture(f)
			return
		}
	}
	b := NewBranch(t.DisplayName+"_Branch", PipeElement{Identifier: units.HBName("", "Pipe")})
	b.Synthetic = true
	b.AddFixture(f)
	t.Branches = append(t.Branches, *b)
}

// Fixtures returns all fixtures of all branches in order.
func (t Trunk) Fixtures() []PipeElement {
	var out []PipeElement
	for _, b := range t.Branches {
		out = append(out, b.Fixtures...)
	}
	return out
}

// Length is the pipe length of one copy of the tree (m).
func (t Trunk) Length(doc units.Document) float64 {
	sum := t.Pipe.Length(doc)
	for _, b := range t.Branches {
		sum += b.Length(doc)
	}
	return sum
}

// TotalLength accounts for the multiplier (m).
func (t Trunk) TotalLength(doc units.Document) float64 {
	return t.Length(doc) * float64(t.Multiplier)
}
