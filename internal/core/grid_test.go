package core

import (
	"slices"
	"testing"
)

func TestWrapToroidal(t *testing.T) {
	g := NewGrid(25, 25)
	cases := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{-1, -1, 24, 24},
		{25, 25, 0, 0},
		{-26, 51, 24, 1},
		{12, -3, 12, 22},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}
}

func TestSetNormalisesAndToggleFlips(t *testing.T) {
	g := NewGrid(3, 4)
	g.Set(1, 2, 7)
	if got := g.At(1, 2); got != 1 {
		t.Fatalf("expected non-zero set to store 1, got %d", got)
	}
	g.Toggle(1, 2)
	if g.Alive(1, 2) {
		t.Fatal("expected toggle to kill live cell")
	}
	g.Toggle(0, 3)
	if !g.Alive(0, 3) {
		t.Fatal("expected toggle to revive dead cell")
	}
	for i, c := range g.Cells() {
		if c > 1 {
			t.Fatalf("cell %d holds non-binary value %d", i, c)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(2, 2, 1)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal source")
	}
	c.Toggle(0, 0)
	if g.Alive(0, 0) {
		t.Fatal("mutating clone changed the source grid")
	}
	if g.Equal(c) {
		t.Fatal("grids should differ after mutating clone")
	}
}

func TestLiveCopyClear(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(0, 0, 1)
	g.Set(4, 4, 1)
	g.Set(2, 3, 1)
	if got := g.Live(); got != 3 {
		t.Fatalf("expected 3 live cells, got %d", got)
	}

	dst := NewGrid(5, 5)
	dst.CopyFrom(g)
	if !slices.Equal(dst.Cells(), g.Cells()) {
		t.Fatal("CopyFrom did not copy contents")
	}

	g.Clear()
	if g.Live() != 0 {
		t.Fatal("Clear left live cells behind")
	}
	if dst.Live() != 3 {
		t.Fatal("clearing the source changed the copy")
	}
}

func TestContainsAndEqualShape(t *testing.T) {
	g := NewGrid(2, 3)
	if !g.Contains(1, 2) || g.Contains(2, 0) || g.Contains(0, -1) {
		t.Fatal("Contains reported wrong bounds")
	}
	if g.Equal(NewGrid(3, 2)) {
		t.Fatal("grids of different shape must not be equal")
	}
	if g.Equal(nil) {
		t.Fatal("grid must not equal nil")
	}
	if s := g.Size(); s.Rows != 2 || s.Cols != 3 || s.Cells() != 6 {
		t.Fatalf("unexpected size %+v", s)
	}
}
