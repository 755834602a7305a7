package boss

import (
	"github.com/chazu/emboss/pkg/kernel"
)

// HoleSpec describes a plain cylindrical bore negative.
type HoleSpec struct {
	Diameter float64     `json:"diameter"` // D, nominal fastener diameter, mm
	Depth    float64     `json:"depth"`    // L, matching the boss height, mm
	Width    float64     `json:"width"`    // W of the target boss; 0 centers on the Z axis
	Orient   Orientation `json:"orient"`
}

// ClearanceHole builds a slide-fit bore: a cylinder of diameter
// Diameter + Clearance positioned to cut coaxially through a boss built
// with the same Width, Depth and Orientation.
func (b *Builder) ClearanceHole(spec HoleSpec) kernel.Solid {
	return b.bore(spec, b.profile.Clearance)
}

// InterferenceHole builds a thread-fit bore: same contract as
// ClearanceHole with the interference tolerance, so the fastener cuts
// its own thread in the bore wall.
func (b *Builder) InterferenceHole(spec HoleSpec) kernel.Solid {
	return b.bore(spec, b.profile.Interference)
}

// bore builds the shared cylinder. The core height doubles for floating
// bores and the center drops with the orientation offset, which keeps
// the bore spanning the full boss depth in both orientations.
func (b *Builder) bore(spec HoleSpec, tol float64) kernel.Solid {
	dia := spec.Diameter + tol
	hc := spec.Orient.coreHeight(spec.Depth)

	cyl := b.k.Cylinder(hc, dia/2, boreSegments)
	cx := spec.Width / 2
	cz := hc/2 + spec.Orient.offset(spec.Depth)
	return b.k.Translate(cyl, cx, cx, cz)
}
