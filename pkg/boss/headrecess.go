package boss

import (
	"github.com/chazu/emboss/pkg/kernel"
)

// HeadRecessSpec describes a screw-head counterbore negative. The recess
// always opens on the boss's bottom print surface: a floating boss keeps
// its fastener accessible from the non-slanted side.
type HeadRecessSpec struct {
	HeadDiameter  float64     `json:"headDiameter"`  // D, screw head diameter, mm
	HeadHeight    float64     `json:"headHeight"`    // H, screw head height, mm
	PilotDiameter float64     `json:"pilotDiameter"` // d, bore above the recess; 0 disables bridging
	Width         float64     `json:"width"`         // W of the target boss
	BossHeight    float64     `json:"bossHeight"`    // L, required only when floating
	LayerHeight   float64     `json:"layerHeight"`   // print layer height, mm
	Orient        Orientation `json:"orient"`
}

// HeadRecess builds the stepped counterbore that recesses a screw head,
// plus a two-layer bridging cap above it so the printer can close the
// recess ceiling down to the pilot bore. Head diameter, head height and
// pilot diameter are all widened by the slide-fit clearance.
//
// A floating recess spans exactly the supplied BossHeight: below the 45°
// slant there is no material to form a shoulder against, so the recess
// runs the full lower half of the boss, from z=-BossHeight to z=0.
func (b *Builder) HeadRecess(spec HeadRecessSpec) kernel.Solid {
	cl := b.profile.Clearance
	dia := spec.HeadDiameter + cl
	h := spec.HeadHeight + cl
	pilot := spec.PilotDiameter + cl

	if spec.Orient == Floating {
		h = spec.BossHeight
	}

	// Base of the recess sits on the bottom print surface: z=0 grounded,
	// z=-BossHeight floating.
	zBase := spec.Orient.offset(spec.BossHeight)

	neg := b.k.Translate(b.k.Cylinder(h, dia/2, boreSegments), 0, 0, zBase+h/2)

	if spec.PilotDiameter > 0 && spec.LayerHeight > 0 {
		layer := spec.LayerHeight
		zTop := zBase + h
		disc := b.k.Translate(b.k.Cylinder(layer, dia/2, boreSegments), 0, 0, zTop+layer/2)
		neg = b.k.Union(neg, b.bridgeCap(disc, dia, pilot, layer, zTop))
	}

	cx := spec.Width / 2
	return b.k.Translate(neg, cx, cx, 0)
}
