// Package boss generates printable screw-boss features: the boss body
// itself plus the negative solids (clearance bore, interference bore,
// screw-head recess, nut trap) a caller subtracts from it. All
// generators are pure functions of their spec over an abstract geometry
// kernel; the package performs no composition itself.
//
// Positioning contract: a negative built with the same Width, BossHeight
// and Orientation as a boss body lines up with that body without any
// further translation. Generators do not validate their inputs;
// degenerate parameters yield degenerate geometry. See Validate on the
// spec types for advisory checks.
package boss

import (
	"github.com/chazu/emboss/pkg/kernel"
)

// Default fit tolerances in mm. Clearance widens a bore so the fastener
// slides through; interference narrows it so the fastener cuts its own
// thread in the plastic.
const (
	DefaultClearance    = 0.4
	DefaultInterference = -0.2
)

// boreSegments is the segment count requested for cylindrical bores on
// kernels with faceted cylinders. SDF backends ignore it.
const boreSegments = 32

// Profile carries the shared fit tolerances applied to every feature a
// Builder produces. Both values are added to nominal diameters.
type Profile struct {
	Clearance    float64 `json:"clearance"`    // slide-fit widening, mm
	Interference float64 `json:"interference"` // thread-fit narrowing, mm (usually <= 0)
}

// DefaultProfile returns the tolerances suited to a well-tuned FDM printer.
func DefaultProfile() Profile {
	return Profile{
		Clearance:    DefaultClearance,
		Interference: DefaultInterference,
	}
}

// Orientation selects how a boss meets the printed part.
type Orientation int

const (
	// Grounded bosses sit on a horizontal surface and are referenced
	// from their bottom corner.
	Grounded Orientation = iota
	// Floating bosses hang off a vertical wall on a 45° chamfered base
	// and are referenced from their top corner.
	Floating
)

func (o Orientation) String() string {
	switch o {
	case Grounded:
		return "grounded"
	case Floating:
		return "floating"
	default:
		return "unknown"
	}
}

// coreHeight returns the height of the body or bore before the chamfer
// trim. Floating features are built at double height so the chamfer
// subtraction can eat the lower half.
func (o Orientation) coreHeight(l float64) float64 {
	if o == Floating {
		return 2 * l
	}
	return l
}

// offset returns the Z shift applied after building, so floating
// features end up referenced from the top face while grounded ones keep
// their bottom corner at z=0.
func (o Orientation) offset(l float64) float64 {
	if o == Floating {
		return -l
	}
	return 0
}

// BossSpec describes a boss body.
type BossSpec struct {
	Height float64     `json:"height"` // L, mm
	Width  float64     `json:"width"`  // W, square cross-section side, mm
	Fillet float64     `json:"fillet"` // R, vertical-edge fillet radius, mm (0 = sharp)
	Orient Orientation `json:"orient"`
}

// Builder produces boss feature solids on a geometry kernel, applying
// the tolerances of a single Profile to every feature.
type Builder struct {
	k       kernel.Kernel
	profile Profile
}

// NewBuilder returns a Builder over the given kernel.
func NewBuilder(k kernel.Kernel, p Profile) *Builder {
	return &Builder{k: k, profile: p}
}

// Kernel returns the geometry kernel the builder constructs on.
func (b *Builder) Kernel() kernel.Kernel {
	return b.k
}

// Boss builds the boss body: a Width×Width×Height prism with optional
// filleted vertical edges. Grounded bodies span z in [0, Height].
// Floating bodies are built at double height, get a diagonal wedge cut
// from the lower half leaving a 45° chamfer (exactly 45° when
// Height == Width), and are shifted down so the top face stays at
// z = Height; they span z in [-Height, Height] with the chamfer rising
// from the x=0 wall.
func (b *Builder) Boss(spec BossSpec) kernel.Solid {
	w := spec.Width
	hc := spec.Orient.coreHeight(spec.Height)

	var body kernel.Solid
	if spec.Fillet > 0 {
		body = b.k.RoundedBox(w, w, hc, spec.Fillet)
	} else {
		body = b.k.Box(w, w, hc)
	}

	if spec.Orient == Floating {
		body = b.k.Difference(body, b.chamferWedge(w, spec.Height))
	}

	if off := spec.Orient.offset(spec.Height); off != 0 {
		body = b.k.Translate(body, 0, 0, off)
	}
	return body
}

// chamferWedge builds the triangular prism removed from the lower half
// of a floating boss. The wedge fills the volume under the diagonal
// plane that rises from z=0 at the x=0 wall to z=l at x=w, across the
// full y depth of the boss.
func (b *Builder) chamferWedge(w, l float64) kernel.Solid {
	tri := [][2]float64{{0, 0}, {w, 0}, {w, l}}
	wedge := b.k.ExtrudePolygon(tri, w)
	// The extrusion runs along Z; stand it up so the triangle lies in
	// the XZ plane and the prism runs along Y.
	wedge = b.k.Rotate(wedge, 90, 0, 0)
	return b.k.Translate(wedge, 0, w/2, 0)
}
