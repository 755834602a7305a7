package boss

import (
	"math"
	"testing"
)

func TestNutTrapPocketBounds(t *testing.T) {
	b := newTestBuilder()
	s := b.NutTrap(NutTrapSpec{NutWidth: 5, NutHeight: 4})

	// W=0 and no boss height: bare hex pocket centered at the origin.
	// Flat-to-flat widens to 5.4; the circumscribed radius follows.
	flat := 5.4
	r := flat / math.Cos(math.Pi/6) / 2
	min, max := s.BoundingBox()
	assertBounds(t, min, [3]float64{-r, -flat / 2, -2.2}, "min")
	assertBounds(t, max, [3]float64{r, flat / 2, 2.2}, "max")
}

func TestNutTrapHalfwayPlacement(t *testing.T) {
	b := newTestBuilder()
	tests := []struct {
		name    string
		orient  Orientation
		wantCtr float64
	}{
		{"grounded", Grounded, 5},
		{"floating", Floating, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := b.NutTrap(NutTrapSpec{
				NutWidth: 5, NutHeight: 4, BossHeight: 10, Orient: tt.orient,
			})
			min, max := s.BoundingBox()
			ctr := (min[2] + max[2]) / 2
			if math.Abs(ctr-tt.wantCtr) > boxTol {
				t.Errorf("pocket z center = %f, want %f", ctr, tt.wantCtr)
			}
		})
	}
}

func TestNutTrapSlotClearsBossFace(t *testing.T) {
	b := newTestBuilder()
	tests := []struct {
		name  string
		angle float64
		axis  int
		sign  float64
	}{
		{"angle 0 exits +x", 0, 0, 1},
		{"angle 90 exits +y", 90, 1, 1},
		{"angle 180 exits -x", 180, 0, -1},
		{"angle 270 exits -y", 270, 1, -1},
	}
	const w = 10.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := b.NutTrap(NutTrapSpec{
				NutWidth: 5, NutHeight: 4, BossHeight: 10, Width: w, Angle: tt.angle,
			})
			min, max := s.BoundingBox()
			if tt.sign > 0 {
				if max[tt.axis] <= w {
					t.Errorf("slot extent %f does not pass the boss face at %f", max[tt.axis], w)
				}
			} else {
				if min[tt.axis] >= 0 {
					t.Errorf("slot extent %f does not pass the boss face at 0", min[tt.axis])
				}
			}
		})
	}
}

func TestNutTrapSlotReachesCornerAt45(t *testing.T) {
	b := newTestBuilder()
	const w = 10.0
	s := b.NutTrap(NutTrapSpec{
		NutWidth: 5, NutHeight: 4, BossHeight: 10, Width: w, Angle: 45,
	})

	// The slot length is sized to the half diagonal, so even pointing at
	// a corner it breaks through the boss envelope.
	_, max := s.BoundingBox()
	reach := math.Hypot(max[0]-w/2, max[1]-w/2)
	if reach < w/2*math.Sqrt2-boxTol {
		t.Errorf("slot reach %f falls short of the corner at %f", reach, w/2*math.Sqrt2)
	}
}

func TestNutTrapZeroWidthOmitsSlot(t *testing.T) {
	b := newTestBuilder()
	with := b.NutTrap(NutTrapSpec{NutWidth: 5, NutHeight: 4, Width: 10})
	without := b.NutTrap(NutTrapSpec{NutWidth: 5, NutHeight: 4})

	_, maxWith := with.BoundingBox()
	_, maxWithout := without.BoundingBox()
	if maxWithout[0] >= maxWith[0] {
		t.Errorf("slotless pocket x extent %f should stay inside slotted extent %f",
			maxWithout[0], maxWith[0])
	}
}

func TestNutTrapBridgeCapHeight(t *testing.T) {
	b := newTestBuilder()
	s := b.NutTrap(NutTrapSpec{
		NutWidth: 5, NutHeight: 4, PilotDiameter: 3, LayerHeight: 0.2,
	})

	// Pocket top sits at h/2; the two sacrificial layers stack above it.
	want := 4.4/2 + 2*0.2
	_, max := s.BoundingBox()
	if math.Abs(max[2]-want) > boxTol {
		t.Errorf("bridged pocket z max = %f, want %f", max[2], want)
	}
}

func TestNutTrapNoPilotOmitsBridge(t *testing.T) {
	b := newTestBuilder()
	s := b.NutTrap(NutTrapSpec{NutWidth: 5, NutHeight: 4, LayerHeight: 0.2})

	_, max := s.BoundingBox()
	if math.Abs(max[2]-2.2) > boxTol {
		t.Errorf("pocket without pilot z max = %f, want 2.2", max[2])
	}
}
