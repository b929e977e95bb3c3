package kociemba

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ErrTableCorrupt is returned by Store.Load* when an on-disk table file
// exists but its length doesn't match the coordinate's expected size.
// The policy is to surface this to the caller rather than silently
// regenerate, since a short/long file usually means something else wrote
// it.
var ErrTableCorrupt = errors.New("kociemba: move table file has the wrong length")

// coordKind names one of the three coordinates a move table is built for.
type coordKind int

const (
	coordTwist coordKind = iota
	coordFlip
	coordSliceSorted
)

func (k coordKind) size() int {
	switch k {
	case coordTwist:
		return NTwist
	case coordFlip:
		return NFlip
	default:
		return NSliceSorted
	}
}

func (k coordKind) filename() string {
	switch k {
	case coordTwist:
		return "move_twist"
	case coordFlip:
		return "move_flip"
	default:
		return "move_slice_sorted"
	}
}

func (k coordKind) name() string {
	switch k {
	case coordTwist:
		return "twist"
	case coordFlip:
		return "flip"
	default:
		return "slice_sorted"
	}
}

func coordKindByName(name string) (coordKind, bool) {
	for _, k := range []coordKind{coordTwist, coordFlip, coordSliceSorted} {
		if k.name() == name {
			return k, true
		}
	}
	return 0, false
}

func (k coordKind) seed(c *CubieCube, v int) {
	switch k {
	case coordTwist:
		c.SetTwist(v)
	case coordFlip:
		c.SetFlip(v)
	default:
		c.SetSliceSorted(v)
	}
}

func (k coordKind) get(c *CubieCube) int {
	switch k {
	case coordTwist:
		return c.GetTwist()
	case coordFlip:
		return c.GetFlip()
	default:
		return c.GetSliceSorted()
	}
}

// defaultTableDir is the directory load_<coord>_move_table falls back to
// when the caller doesn't name one.
const defaultTableDir = "./tables"

// Store holds the three move tables (twist, flip, slice-sorted) once
// loaded, keyed by the directory they were loaded from. Zero value is
// ready to use. A Store is safe for concurrent use: each table loads at
// most once, guarded by a mutex, and the loaded slices are never mutated
// afterward.
type Store struct {
	mu    sync.RWMutex
	dir   string
	twist []uint16
	flip  []uint16
	slice []uint16
}

// NewStore returns a Store that reads/writes tables under dir. An empty
// dir means defaultTableDir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = defaultTableDir
	}
	return &Store{dir: dir}
}

// defaultStore backs the package-level LoadTwistMoveTable and friends
// when the caller doesn't need a custom directory.
var defaultStore = NewStore("")

// storeFor returns defaultStore for the common case (dir is empty or
// already defaultStore's directory), and a fresh Store otherwise.
func storeFor(dir string) *Store {
	if dir == "" || dir == defaultStore.dir {
		return defaultStore
	}
	return NewStore(dir)
}

// LoadTwistMoveTable loads (generating and caching to disk on first use)
// the twist move table under dir, or defaultTableDir if dir is empty.
func LoadTwistMoveTable(dir string) ([]uint16, error) {
	return storeFor(dir).LoadTwist()
}

// LoadFlipMoveTable loads (generating and caching to disk on first use)
// the flip move table under dir, or defaultTableDir if dir is empty.
func LoadFlipMoveTable(dir string) ([]uint16, error) {
	return storeFor(dir).LoadFlip()
}

// LoadSliceSortedMoveTable loads (generating and caching to disk on first
// use) the slice-sorted move table under dir, or defaultTableDir if dir
// is empty.
func LoadSliceSortedMoveTable(dir string) ([]uint16, error) {
	return storeFor(dir).LoadSliceSorted()
}

// CoordNames lists the coordinate names Store.Stats accepts: "twist",
// "flip", "slice_sorted".
func CoordNames() []string {
	return []string{coordTwist.name(), coordFlip.name(), coordSliceSorted.name()}
}

// TableStats summarizes one move table for display: its coordinate
// name, entry count, and on-disk path.
type TableStats struct {
	Name    string
	Entries int
	Path    string
}

// Stats loads (generating on first use, same as Load*) the named
// coordinate's move table and reports its size and path. name must be
// one of CoordNames.
func (s *Store) Stats(name string) (TableStats, error) {
	kind, ok := coordKindByName(name)
	if !ok {
		return TableStats{}, fmt.Errorf("kociemba: unknown coordinate %q", name)
	}

	var table []uint16
	var err error
	switch kind {
	case coordTwist:
		table, err = s.LoadTwist()
	case coordFlip:
		table, err = s.LoadFlip()
	default:
		table, err = s.LoadSliceSorted()
	}
	if err != nil {
		return TableStats{}, err
	}

	return TableStats{
		Name:    name,
		Entries: len(table),
		Path:    filepath.Join(s.dir, kind.filename()),
	}, nil
}

// LoadTwist returns the twist move table, N_TWIST*N_MOVE entries.
func (s *Store) LoadTwist() ([]uint16, error) { return s.load(coordTwist, &s.twist) }

// LoadFlip returns the flip move table, N_FLIP*N_MOVE entries.
func (s *Store) LoadFlip() ([]uint16, error) { return s.load(coordFlip, &s.flip) }

// LoadSliceSorted returns the slice-sorted move table, N_SLICE_SORTED*N_MOVE entries.
func (s *Store) LoadSliceSorted() ([]uint16, error) { return s.load(coordSliceSorted, &s.slice) }

func (s *Store) load(kind coordKind, cached *[]uint16) ([]uint16, error) {
	s.mu.RLock()
	if *cached != nil {
		t := *cached
		s.mu.RUnlock()
		return t, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if *cached != nil {
		return *cached, nil
	}

	table, err := loadOrGenerateTable(s.dir, kind)
	if err != nil {
		return nil, err
	}
	*cached = table
	return table, nil
}

// loadOrGenerateTable implements load_<coord>_table: read the file back
// if it exists (failing on a length mismatch), otherwise generate the
// table, write it, and return the in-memory copy.
func loadOrGenerateTable(dir string, kind coordKind) ([]uint16, error) {
	path := filepath.Join(dir, kind.filename())
	want := kind.size() * NMove

	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != want*2 {
			return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrTableCorrupt, path, len(data), want*2)
		}
		return bytesToUint16(data), nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("kociemba: opening %s: %w", path, err)
	}

	log.Printf("kociemba: generating %s move table (%d entries), this is a one-time cost", kind.filename(), want)
	table := generateMoveTable(kind)

	if err := writeTableAtomically(dir, path, table); err != nil {
		return nil, err
	}
	return table, nil
}

// generateMoveTable walks every coordinate value, seeds a scratch cube,
// and records the coordinate reached after each of the three quarter
// turns of every face. The fourth quarter turn of a face is the
// identity, so applying it restores the seeded cube and lets the face
// loop continue without reseeding.
func generateMoveTable(kind coordKind) []uint16 {
	n := kind.size()
	table := make([]uint16, n*NMove)
	var c CubieCube

	for i := 0; i < n; i++ {
		c = Solved()
		kind.seed(&c, i)

		for face := 0; face < 6; face++ {
			for turn := 0; turn < 3; turn++ {
				c.applyBasicMovePlain(face)
				table[NMove*i+3*face+turn] = uint16(kind.get(&c))
			}
			c.applyBasicMovePlain(face)
		}
	}

	return table
}

// writeTableAtomically writes table to path as raw little-endian uint16
// values via a temp file + rename, so a reader never observes a partial
// file.
func writeTableAtomically(dir, path string, table []uint16) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("kociemba: creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("kociemba: creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(uint16ToBytes(table)); err != nil {
		tmp.Close()
		return fmt.Errorf("kociemba: writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kociemba: writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("kociemba: installing %s: %w", path, err)
	}
	return nil
}

func uint16ToBytes(table []uint16) []byte {
	buf := make([]byte, 2*len(table))
	for i, v := range table {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return buf
}

func bytesToUint16(data []byte) []uint16 {
	table := make([]uint16, len(data)/2)
	for i := range table {
		table[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	return table
}
