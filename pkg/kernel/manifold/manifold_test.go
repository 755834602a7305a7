//go:build manifold

package manifold

import (
	"math"
	"testing"

	"github.com/chazu/emboss/pkg/kernel"
)

func mustNew(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k
}

func TestBox(t *testing.T) {
	k := mustNew(t)
	s := k.Box(10, 20, 30)
	if s == nil {
		t.Fatal("Box() returned nil")
	}
	min, max := s.BoundingBox()

	wantMin := [3]float64{0, 0, 0}
	wantMax := [3]float64{10, 20, 30}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > 1e-6 {
			t.Errorf("Box min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > 1e-6 {
			t.Errorf("Box max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestRoundedBox(t *testing.T) {
	k := mustNew(t)
	s := k.RoundedBox(20, 20, 10, 4)
	min, max := s.BoundingBox()

	wantMin := [3]float64{0, 0, 0}
	wantMax := [3]float64{20, 20, 10}

	// Faceted fillet cylinders undercut the true radius slightly.
	const tol = 0.1
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("RoundedBox min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("RoundedBox max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestCylinderCentered(t *testing.T) {
	k := mustNew(t)
	s := k.Cylinder(50, 10, 32)
	min, max := s.BoundingBox()

	if math.Abs(min[2]+25) > 1e-6 || math.Abs(max[2]-25) > 1e-6 {
		t.Errorf("Cylinder Z extent = [%f, %f], want [-25, 25]", min[2], max[2])
	}
}

func TestPrismHexBounds(t *testing.T) {
	k := mustNew(t)
	const r = 5.0
	s := k.Prism(8, r, 6)
	min, max := s.BoundingBox()

	flat := r * math.Sin(math.Pi/3)
	const tol = 1e-6
	if math.Abs(max[0]-r) > tol || math.Abs(min[0]+r) > tol {
		t.Errorf("hex X extent = [%f, %f], want [%f, %f]", min[0], max[0], -r, r)
	}
	if math.Abs(max[1]-flat) > tol || math.Abs(min[1]+flat) > tol {
		t.Errorf("hex Y extent = [%f, %f], want [%f, %f]", min[1], max[1], -flat, flat)
	}
}

func TestExtrudePolygon(t *testing.T) {
	k := mustNew(t)
	tri := [][2]float64{{0, 0}, {4, 0}, {4, 3}}
	s := k.ExtrudePolygon(tri, 2)
	min, max := s.BoundingBox()

	const tol = 1e-6
	wantMin := [3]float64{0, 0, -1}
	wantMax := [3]float64{4, 3, 1}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-wantMin[i]) > tol {
			t.Errorf("ExtrudePolygon min[%d] = %f, want %f", i, min[i], wantMin[i])
		}
		if math.Abs(max[i]-wantMax[i]) > tol {
			t.Errorf("ExtrudePolygon max[%d] = %f, want %f", i, max[i], wantMax[i])
		}
	}
}

func TestDifferenceProducesMesh(t *testing.T) {
	k := mustNew(t)
	box := k.Box(20, 20, 20)
	bore := k.Translate(k.Cylinder(50, 4, 32), 10, 10, 10)
	diff := k.Difference(box, bore)

	mesh, err := k.ToMesh(diff)
	if err != nil {
		t.Fatalf("ToMesh() error = %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}

	boxMesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh(box) error = %v", err)
	}
	if mesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Errorf("difference (%d triangles) should exceed plain box (%d triangles)",
			mesh.TriangleCount(), boxMesh.TriangleCount())
	}
}
