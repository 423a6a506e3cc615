package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultScanLimit is the number of shuffled candidates checked for
// reachability before falling back to the first one.
const DefaultScanLimit = 300

// Spawner chooses food cells, preferring cells the snake head can reach.
type Spawner struct {
	grid      Grid
	rng       *rand.Rand
	scanLimit int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid Grid, rng *rand.Rand, scanLimit int) *Spawner {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &Spawner{grid: grid, rng: rng, scanLimit: scanLimit}
}

// freeCells returns every in-bounds cell that is in none of the sets.
func (s *Spawner) freeCells(snake CellSet, obstacles ObstacleSet) []core.Point {
	free := make([]core.Point, 0, s.grid.Size()-snake.Len())
	s.grid.Each(func(p core.Point) {
		if !snake.Has(p) && !obstacles.Has(p) {
			free = append(free, p)
		}
	})
	return free
}

// shuffled returns the free cells in a uniform random order, or nil.
func (s *Spawner) shuffled(snake CellSet, obstacles ObstacleSet) []core.Point {
	free := s.freeCells(snake, obstacles)
	if len(free) == 0 {
		return nil
	}
	s.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	return free
}

// Spawn returns a free cell for food. Up to scanLimit shuffled candidates
// are checked for a 4-connected path of free cells from head; when none of
// them is reachable the first candidate is returned anyway. ok is false
// only when no free cell exists.
func (s *Spawner) Spawn(head core.Point, snake CellSet, obstacles ObstacleSet) (core.Point, bool) {
	candidates := s.shuffled(snake, obstacles)
	if len(candidates) == 0 {
		return core.Point{}, false
	}

	reach := s.reachable(head, snake, obstacles)
	limit := min(len(candidates), s.scanLimit)
	for _, p := range candidates[:limit] {
		if reach[s.grid.Index(p)] {
			return p, true
		}
	}
	return candidates[0], true
}

// SpawnAny returns a uniformly random free cell without a reachability
// check.
func (s *Spawner) SpawnAny(snake CellSet, obstacles ObstacleSet) (core.Point, bool) {
	candidates := s.shuffled(snake, obstacles)
	if len(candidates) == 0 {
		return core.Point{}, false
	}
	return candidates[0], true
}

// reachable runs a breadth-first search from head over free cells and
// marks every visited cell by grid index.
func (s *Spawner) reachable(head core.Point, snake CellSet, obstacles ObstacleSet) []bool {
	visited := make([]bool, s.grid.Size())
	if !s.grid.InBounds(head) {
		return visited
	}

	visited[s.grid.Index(head)] = true
	queue := []core.Point{head}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors4() {
			if !s.grid.Free(n, snake, obstacles.Cells()) {
				continue
			}
			i := s.grid.Index(n)
			if visited[i] {
				continue
			}
			visited[i] = true
			queue = append(queue, n)
		}
	}
	return visited
}

// Reachable reports whether target can be reached from head through free
// cells.
func (s *Spawner) Reachable(head, target core.Point, snake CellSet, obstacles ObstacleSet) bool {
	if !s.grid.InBounds(target) {
		return false
	}
	return s.reachable(head, snake, obstacles)[s.grid.Index(target)]
}
