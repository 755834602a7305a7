package engine

import (
	"github.com/chazu/emboss/pkg/compose"
	"github.com/chazu/emboss/pkg/kernel"
)

// Build is the output of one evaluation: the parts the script emitted,
// in emission order, with a name index for lookup. Each evaluation
// produces a fresh Build; it is never mutated afterwards.
type Build struct {
	Parts []compose.Part

	nameIndex map[string]int
}

// NewBuild creates an empty Build.
func NewBuild() *Build {
	return &Build{nameIndex: make(map[string]int)}
}

// AddPart appends a named part. A later part with the same name shadows
// the earlier one in Lookup but both remain in Parts.
func (b *Build) AddPart(name string, s kernel.Solid) {
	b.nameIndex[name] = len(b.Parts)
	b.Parts = append(b.Parts, compose.Part{Name: name, Solid: s})
}

// Lookup returns the part with the given name.
func (b *Build) Lookup(name string) (compose.Part, bool) {
	i, ok := b.nameIndex[name]
	if !ok {
		return compose.Part{}, false
	}
	return b.Parts[i], true
}

// PartCount returns the number of emitted parts.
func (b *Build) PartCount() int {
	return len(b.Parts)
}

// Meshes tessellates every emitted part with the given kernel.
func (b *Build) Meshes(k kernel.Kernel) ([]*kernel.Mesh, error) {
	return compose.Meshes(k, b.Parts)
}
