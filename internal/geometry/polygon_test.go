package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStraddlesColumn(t *testing.T) {
	box := Rect(100, 10, 200, 30)

	tests := []struct {
		name    string
		polygon Polygon
		x       float64
		want    bool
	}{
		{"inside", box, 150, true},
		{"left edge", box, 100, true},
		{"right edge", box, 200, true},
		{"strictly left of box", box, 99.9, false},
		{"strictly right of box", box, 200.1, false},
		{"empty polygon", Polygon{}, 0, false},
		{"nil polygon", nil, 0, false},
		{"single vertex on line", Polygon{{X: 5, Y: 5}}, 5, true},
		{"single vertex off line", Polygon{{X: 5, Y: 5}}, 6, false},
		{"negative coordinates", Rect(-20, -5, -10, 5), -15, true},
		{"degenerate vertical segment", Polygon{{X: 50, Y: 0}, {X: 50, Y: 10}}, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StraddlesColumn(tt.polygon, tt.x))
		})
	}
}

func TestStraddlesColumn_ExactVertexAlwaysCrosses(t *testing.T) {
	// Whatever the other vertices are, a vertex exactly on the line counts.
	others := []Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 90, Y: 0}, {X: 80, Y: 3}},
		{{X: 30, Y: 1}, {X: 70, Y: 2}, {X: -5, Y: 9}},
	}
	for _, o := range others {
		p := append(Polygon{{X: 42, Y: 7}}, o...)
		assert.True(t, StraddlesColumn(p, 42), "polygon %v", p)
	}
}

func TestVerticalCenter(t *testing.T) {
	assert.InDelta(t, 20.0, VerticalCenter(Rect(0, 10, 5, 30)), 1e-9)
	assert.InDelta(t, 2.0, VerticalCenter(Polygon{{Y: 1}, {Y: 2}, {Y: 3}}), 1e-9)
	assert.Equal(t, 0.0, VerticalCenter(nil))
}

func TestPolygonScale(t *testing.T) {
	p := Rect(10, 20, 30, 40)
	scaled := p.Scale(0.5)

	assert.Equal(t, Rect(5, 10, 15, 20), scaled)
	assert.Equal(t, Rect(10, 20, 30, 40), p, "Scale must not modify the receiver")
}
