package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGridBasics(t *testing.T) {
	g := NewGrid(10, 8)
	if g.Size() != 80 {
		t.Errorf("Size() = %d, want 80", g.Size())
	}
	if g.Center() != core.Pt(5, 4) {
		t.Errorf("Center() = %v", g.Center())
	}

	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 9, Y: 7}, {X: 3, Y: 5}} {
		if !g.InBounds(p) {
			t.Errorf("%v should be in bounds", p)
		}
		if g.At(g.Index(p)) != p {
			t.Errorf("At(Index(%v)) = %v", p, g.At(g.Index(p)))
		}
	}
	for _, p := range []core.Point{{X: -1, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 8}, {X: 0, Y: -1}} {
		if g.InBounds(p) {
			t.Errorf("%v should be out of bounds", p)
		}
	}

	occupied := NewCellSet(core.Pt(1, 1))
	if g.Free(core.Pt(1, 1), occupied) {
		t.Error("occupied cell should not be free")
	}
	if !g.Free(core.Pt(2, 1), occupied) {
		t.Error("empty cell should be free")
	}
	if g.Free(core.Pt(-1, 1)) {
		t.Error("out of bounds cell should not be free")
	}
}

func TestSpawnNoFreeCell(t *testing.T) {
	g := NewGrid(2, 2)
	s := NewSpawner(g, rand.New(rand.NewSource(1)), 300)
	snake := NewCellSet(core.Pt(0, 0), core.Pt(1, 0))
	obs := newObstacleSet(NewCellSet(core.Pt(0, 1), core.Pt(1, 1)))

	if _, ok := s.Spawn(core.Pt(0, 0), snake, obs); ok {
		t.Error("Spawn should report no free cell")
	}
	if _, ok := s.SpawnAny(snake, obs); ok {
		t.Error("SpawnAny should report no free cell")
	}
}

func TestSpawnPrefersReachableCells(t *testing.T) {
	// A full wall on column 2 splits a 5x5 grid in two.
	g := NewGrid(5, 5)
	wall := NewCellSet()
	for y := 0; y < 5; y++ {
		wall.Put(core.Pt(2, y))
	}
	obs := newObstacleSet(wall)
	head := core.Pt(0, 0)
	snake := NewCellSet(head)

	for seed := int64(0); seed < 50; seed++ {
		s := NewSpawner(g, rand.New(rand.NewSource(seed)), 300)
		p, ok := s.Spawn(head, snake, obs)
		if !ok {
			t.Fatal("Spawn failed")
		}
		if p.X >= 2 {
			t.Errorf("seed %d: spawned unreachable cell %v", seed, p)
		}
		if snake.Has(p) || obs.Has(p) {
			t.Errorf("seed %d: spawned on occupied cell %v", seed, p)
		}
	}
}

func TestSpawnFallsBackToFirstCandidate(t *testing.T) {
	// The head is boxed in, so nothing is reachable.
	g := NewGrid(6, 6)
	head := core.Pt(0, 0)
	snake := NewCellSet(head)
	obs := newObstacleSet(NewCellSet(core.Pt(1, 0), core.Pt(0, 1)))

	s1 := NewSpawner(g, rand.New(rand.NewSource(7)), 300)
	s2 := NewSpawner(g, rand.New(rand.NewSource(7)), 300)

	p1, ok1 := s1.Spawn(head, snake, obs)
	p2, ok2 := s2.SpawnAny(snake, obs)
	if !ok1 || !ok2 {
		t.Fatal("expected a cell")
	}
	if p1 != p2 {
		t.Errorf("fallback = %v, want first shuffled candidate %v", p1, p2)
	}
	if snake.Has(p1) || obs.Has(p1) {
		t.Errorf("fallback %v is occupied", p1)
	}
}

func TestReachable(t *testing.T) {
	g := NewGrid(5, 5)
	wall := NewCellSet()
	for y := 0; y < 5; y++ {
		wall.Put(core.Pt(2, y))
	}
	obs := newObstacleSet(wall)
	s := NewSpawner(g, rand.New(rand.NewSource(1)), 0)
	snake := NewCellSet(core.Pt(0, 0))

	if !s.Reachable(core.Pt(0, 0), core.Pt(1, 4), snake, obs) {
		t.Error("(1,4) should be reachable")
	}
	if s.Reachable(core.Pt(0, 0), core.Pt(4, 4), snake, obs) {
		t.Error("(4,4) should be unreachable")
	}
	if s.Reachable(core.Pt(0, 0), core.Pt(9, 9), snake, obs) {
		t.Error("out of bounds target should be unreachable")
	}
}
