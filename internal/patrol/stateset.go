package patrol

import "github.com/dbsmedya/gopatrol/internal/grid"

// StateSet tracks which (position, heading) states a walk has held,
// as a dense bitset with one bit per state. Reset clears it in place,
// so a single set can serve many walks over same-sized maps without
// reallocating.
type StateSet struct {
	width int
	bits  []uint64
}

// NewStateSet returns an empty set sized for a width x height map.
func NewStateSet(width, height int) *StateSet {
	n := width * height * grid.HeadingCount
	return &StateSet{
		width: width,
		bits:  make([]uint64, (n+63)/64),
	}
}

func (s *StateSet) index(st grid.GuardState) int {
	return (st.Pos.Y*s.width+st.Pos.X)*grid.HeadingCount + int(st.Heading)
}

// Seen reports whether st has been marked since the last Reset.
func (s *StateSet) Seen(st grid.GuardState) bool {
	i := s.index(st)
	return s.bits[i/64]&(1<<(i%64)) != 0
}

// Mark records st.
func (s *StateSet) Mark(st grid.GuardState) {
	i := s.index(st)
	s.bits[i/64] |= 1 << (i % 64)
}

// Reset clears the set without reallocating.
func (s *StateSet) Reset() {
	clear(s.bits)
}
