// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling and
// boolean operations behind this interface. The kernel abstraction
// allows swapping backends without changing the boss generators.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
// Implementations (sdfx, manifold) provide solid modeling behind this interface.
//
// Placement conventions: Box and RoundedBox have their minimum corner at
// the origin so that feature placement arithmetic stays simple. Cylinder,
// Prism and ExtrudePolygon are centered on the Z axis with z spanning
// [-height/2, height/2].
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	// RoundedBox is a box whose four vertical edges are rounded with
	// radius round. The top and bottom faces stay flat. round must be
	// smaller than half of the smaller footprint dimension.
	RoundedBox(x, y, z, round float64) Solid
	Cylinder(height, radius float64, segments int) Solid
	// Prism is a regular polygon extruded along Z. radius is the
	// circumscribed radius: vertices lie on the circle of that radius,
	// with the first vertex on the +X axis.
	Prism(height, radius float64, sides int) Solid
	// ExtrudePolygon extrudes a simple polygon, given as XY points in
	// counter-clockwise order, along the Z axis.
	ExtrudePolygon(points [][2]float64, height float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
