// Package leaderboard maintains the two ranked top-N lists of finished
// sessions: one by survival duration, one by points.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"math"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Kind names a ranking.
type Kind string

const (
	KindDuration Kind = "duration"
	KindPoints   Kind = "points"
)

// Kinds returns every ranking kind in display order.
func Kinds() []Kind {
	return []Kind{KindDuration, KindPoints}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDuration, KindPoints:
		return k, nil
	}
	return "", fmt.Errorf("leaderboard: unknown kind %q (want duration or points)", s)
}

// Default limits.
const (
	DefaultCapacity = 10
	DefaultNameMax  = 18
)

// Entry is one ranked record. Value is seconds for KindDuration and points
// for KindPoints.
type Entry struct {
	Player string  `json:"player"`
	Value  float64 `json:"value"`
}

// Backend persists one serialized list per kind. LoadBoard returns nil data
// and a nil error when nothing is stored yet.
type Backend interface {
	LoadBoard(kind string) ([]byte, error)
	SaveBoard(kind string, payload []byte) error
}

// Board applies the ranking rules on top of a Backend. It is safe for
// concurrent use.
type Board struct {
	mu       sync.Mutex
	backend  Backend
	capacity int
	nameMax  int
}

// New creates a board keeping at most capacity entries per kind.
func New(backend Backend, capacity, nameMax int) *Board {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if nameMax <= 0 {
		nameMax = DefaultNameMax
	}
	return &Board{backend: backend, capacity: capacity, nameMax: nameMax}
}

// Record appends one entry to each list, re-sorts, truncates and persists.
func (b *Board) Record(player string, duration time.Duration, points int) error {
	player = truncate(strings.TrimSpace(player), b.nameMax)
	values := map[Kind]float64{
		KindDuration: Seconds(duration),
		KindPoints:   float64(points),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var errs []error
	for _, kind := range Kinds() {
		entries, err := b.load(kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = Insert(entries, Entry{Player: player, Value: values[kind]}, b.capacity)

		payload, err := json.Marshal(entries)
		if err != nil {
			errs = append(errs, fmt.Errorf("leaderboard: cannot encode %s list: %w", kind, err))
			continue
		}
		if err := b.backend.SaveBoard(string(kind), payload); err != nil {
			errs = append(errs, fmt.Errorf("leaderboard: cannot save %s list: %w", kind, err))
		}
	}
	return errors.Join(errs...)
}

// Load returns the current top list for kind. Missing, unreadable or
// malformed data yields an empty list.
func (b *Board) Load(kind Kind) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := b.load(kind)
	if err != nil {
		return []Entry{}
	}
	return entries
}

// load decodes the stored list. Backend failures are returned so Record
// never overwrites a list it could not read; malformed payloads are not
// errors.
func (b *Board) load(kind Kind) ([]Entry, error) {
	data, err := b.backend.LoadBoard(string(kind))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot load %s list: %w", kind, err)
	}
	return Decode(data, b.capacity), nil
}

// Decode parses a serialized list. Anything that is not an array of
// {player, value} objects decodes to an empty list. Entries with a
// non-finite value are dropped and the result is ordered and capped.
func Decode(data []byte, capacity int) []Entry {
	entries := []Entry{}
	if len(data) == 0 {
		return entries
	}

	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return entries
	}
	for _, e := range raw {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			continue
		}
		entries = append(entries, e)
	}
	sortDesc(entries)
	if capacity > 0 && len(entries) > capacity {
		entries = entries[:capacity]
	}
	return entries
}

// Insert appends e, sorts descending by value with ties kept in insertion
// order, and truncates to capacity.
func Insert(entries []Entry, e Entry, capacity int) []Entry {
	out := append(slices.Clone(entries), e)
	sortDesc(out)
	if capacity > 0 && len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

func sortDesc(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})
}

// Seconds converts a duration to seconds rounded to a tenth.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*10) / 10
}

// DisplayName returns a name safe to show: at most maxRunes runes with
// HTML-unsafe characters escaped.
func DisplayName(name string, maxRunes int) string {
	return html.EscapeString(truncate(name, maxRunes))
}

// FormatValue renders an entry value for kind.
func FormatValue(kind Kind, v float64) string {
	if kind == KindDuration {
		return fmt.Sprintf("%.1fs", v)
	}
	return fmt.Sprintf("%d", int64(v))
}

func truncate(s string, maxRunes int) string {
	if maxRunes > 0 && utf8.RuneCountInString(s) > maxRunes {
		return string([]rune(s)[:maxRunes])
	}
	return s
}

// MemoryBackend keeps lists in memory. It is used when no database is
// available and in tests.
type MemoryBackend struct {
	mu    sync.Mutex
	lists map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{lists: make(map[string][]byte)}
}

// LoadBoard implements Backend.
func (m *MemoryBackend) LoadBoard(kind string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lists[kind]), nil
}

// SaveBoard implements Backend.
func (m *MemoryBackend) SaveBoard(kind string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[kind] = slices.Clone(payload)
	return nil
}
