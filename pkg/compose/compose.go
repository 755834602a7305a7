// Package compose holds the caller-side assembly helpers: subtracting a
// set of negative features from a boss body and turning named parts into
// triangle meshes with a geometry kernel. It never builds geometry of
// its own.
package compose

import (
	"fmt"

	"github.com/chazu/emboss/pkg/kernel"
)

// Part is a named solid ready for meshing or further composition.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Subtract removes every negative from the body in turn. The negatives
// must be positioned by their specs (shared Width, BossHeight and
// Orientation with the body); subtraction order does not matter for
// disjoint negatives.
func Subtract(k kernel.Kernel, body kernel.Solid, negatives ...kernel.Solid) kernel.Solid {
	out := body
	for _, n := range negatives {
		out = k.Difference(out, n)
	}
	return out
}

// Meshes produces one triangle mesh per part, carrying the part name
// through to the mesh. Parts with nil solids are skipped.
func Meshes(k kernel.Kernel, parts []Part) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, p := range parts {
		if p.Solid == nil {
			continue
		}
		mesh, err := k.ToMesh(p.Solid)
		if err != nil {
			return nil, fmt.Errorf("compose: ToMesh failed for part %q: %w", p.Name, err)
		}
		mesh.PartName = p.Name
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}
