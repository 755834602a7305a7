package boss

import (
	"github.com/chazu/emboss/pkg/kernel"
)

// bridgeCap builds the two sacrificial layers that let a printer close a
// pocket ceiling down to a pilot bore without unsupported circular
// overhangs. The first layer is a pilot-wide slab clipped to the pocket
// outline, so the printer bridges two straight edges across the pocket.
// The second is a pilot×pilot square slab stacked on top, bridged
// perpendicular to the first; the round pilot bore resumes above it.
//
// outline must be a one-layer-tall slice of the pocket cross-section
// spanning [zBase, zBase+layer] and centered on the Z axis; span is the
// pocket's full cross dimension. The cap is centered on the Z axis.
func (b *Builder) bridgeCap(outline kernel.Solid, span, pilot, layer, zBase float64) kernel.Solid {
	slab := b.k.Translate(b.k.Box(pilot, span, layer), -pilot/2, -span/2, zBase)
	first := b.k.Intersection(slab, outline)
	second := b.k.Translate(b.k.Box(pilot, pilot, layer), -pilot/2, -pilot/2, zBase+layer)
	return b.k.Union(first, second)
}
