package boss

import (
	"math"

	"github.com/chazu/emboss/pkg/kernel"
)

// hexSides is the polygon side count for nut pockets.
const hexSides = 6

// NutTrapSpec describes a hexagonal nut pocket negative with a lateral
// access slot for sliding the nut in from outside the boss.
type NutTrapSpec struct {
	NutWidth      float64     `json:"nutWidth"`      // F, nut flat-to-flat size, mm
	NutHeight     float64     `json:"nutHeight"`     // H, nut thickness, mm
	BossHeight    float64     `json:"bossHeight"`    // L; 0 centers the pocket at z=0
	Width         float64     `json:"width"`         // W of the target boss; 0 omits the slot
	PilotDiameter float64     `json:"pilotDiameter"` // d, bore above the pocket; 0 disables bridging
	LayerHeight   float64     `json:"layerHeight"`   // print layer height, mm
	Angle         float64     `json:"angle"`         // rotation about the vertical axis, degrees
	Orient        Orientation `json:"orient"`
}

// NutTrap builds the hexagonal pocket, the access slot and a two-layer
// bridging cap, rotated by Angle about the pocket axis and placed
// halfway up the boss. Flat-to-flat size, nut height and pilot diameter
// are widened by the slide-fit clearance; the flat-to-flat size converts
// to the circumscribed diameter the polygon primitive wants.
//
// The slot is NutWidth wide and reaches (Width/2)·√2 outward from the
// pocket center: far enough to clear the nearest corner of an unfilleted
// boss at any rotation, so the nut can always be inserted from outside.
func (b *Builder) NutTrap(spec NutTrapSpec) kernel.Solid {
	cl := b.profile.Clearance
	flat := spec.NutWidth + cl
	h := spec.NutHeight + cl
	pilot := spec.PilotDiameter + cl

	// Inscribed (flat-to-flat) to circumscribed diameter.
	dia := flat / math.Cos(math.Pi/hexSides)

	neg := b.k.Prism(h, dia/2, hexSides)

	if spec.Width > 0 {
		slotLen := spec.Width / 2 * math.Sqrt2
		slot := b.k.Translate(b.k.Box(slotLen, flat, h), 0, -flat/2, -h/2)
		neg = b.k.Union(neg, slot)
	}

	if spec.PilotDiameter > 0 && spec.LayerHeight > 0 {
		layer := spec.LayerHeight
		zTop := h / 2
		hexSlab := b.k.Translate(b.k.Prism(layer, dia/2, hexSides), 0, 0, zTop+layer/2)
		neg = b.k.Union(neg, b.bridgeCap(hexSlab, flat, pilot, layer, zTop))
	}

	if spec.Angle != 0 {
		neg = b.k.Rotate(neg, 0, 0, spec.Angle)
	}

	cx := spec.Width / 2
	cz := spec.Orient.coreHeight(spec.BossHeight)/2 + spec.Orient.offset(spec.BossHeight)
	return b.k.Translate(neg, cx, cx, cz)
}
