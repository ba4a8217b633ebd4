package raster

import (
	"math"
	"testing"
)

func TestNewEdgeDirection(t *testing.T) {
	down := NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 10})
	if down.dir != 1 {
		t.Errorf("downward edge dir = %d, want 1", down.dir)
	}
	up := NewEdge(Point{X: 0, Y: 10}, Point{X: 0, Y: 0})
	if up.dir != -1 {
		t.Errorf("upward edge dir = %d, want -1", up.dir)
	}
	// Endpoints are normalized so y0 < y1 regardless of direction.
	if up.y0 != 0 || up.y1 != 10 {
		t.Errorf("upward edge endpoints = %v..%v, want 0..10", up.y0, up.y1)
	}
}

func TestEdgeXAtY(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	tests := []struct {
		y, want float64
	}{
		{0, 0},
		{5, 5},
		{10, 10},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		if got := e.XAtY(tt.y); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("XAtY(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestEdgeXAtYHorizontal(t *testing.T) {
	e := NewEdge(Point{X: 3, Y: 5}, Point{X: 9, Y: 5})
	if got := e.XAtY(5); got != 3 {
		t.Errorf("XAtY on horizontal edge = %v, want 3", got)
	}
}

func TestActiveEdgeTableSort(t *testing.T) {
	aet := NewActiveEdgeTable()
	for _, x := range []float64{7, 1, 4, 2} {
		aet.AddAtY(NewEdge(Point{X: x, Y: 0}, Point{X: x, Y: 10}), 5)
	}
	aet.Sort()
	edges := aet.Edges()
	want := []float64{1, 2, 4, 7}
	for i, e := range edges {
		if e.x != want[i] {
			t.Errorf("edges[%d].x = %v, want %v", i, e.x, want[i])
		}
	}
}

func TestActiveEdgeTableClear(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.AddAtY(NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 1}), 0.5)
	aet.Clear()
	if len(aet.Edges()) != 0 {
		t.Errorf("edges after Clear = %d, want 0", len(aet.Edges()))
	}
}
