package geometry

// Vertex is a point in page pixel coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is the ordered outline of a text fragment, usually four vertices.
type Polygon []Vertex

// StraddlesColumn reports whether the polygon crosses the vertical line at x.
//
// It is true when at least one vertex lies at or left of x and at least one
// vertex lies at or right of x. A vertex exactly on the line satisfies both
// sides, so touching the line always counts as crossing. An empty polygon
// never straddles anything.
func StraddlesColumn(p Polygon, x float64) bool {
	hasLeft := false
	hasRight := false
	for _, v := range p {
		if v.X <= x {
			hasLeft = true
		}
		if v.X >= x {
			hasRight = true
		}
		if hasLeft && hasRight {
			return true
		}
	}
	return false
}

// VerticalCenter returns the mean Y of the polygon's vertices.
// It is a sort key for reading order, not a centroid. Empty polygons yield 0.
func VerticalCenter(p Polygon) float64 {
	if len(p) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range p {
		sum += v.Y
	}
	return sum / float64(len(p))
}

// Rect returns the four-vertex polygon of an axis-aligned box, clockwise from
// the top-left corner.
func Rect(x1, y1, x2, y2 float64) Polygon {
	return Polygon{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
}

// Scale multiplies every coordinate by factor and returns a new polygon.
func (p Polygon) Scale(factor float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Vertex{X: v.X * factor, Y: v.Y * factor}
	}
	return out
}
