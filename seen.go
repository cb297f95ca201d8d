package patterns

// seenTable records the label assigned to each byte value of the string
// currently being encoded.
//
// Memory layout covers the full byte domain so any input byte indexes a valid slot:
//   - labels: label+1 per byte value (0 = unseen)
//   - stamps: generation that last wrote the slot
//
// Starting a new string bumps the generation instead of zeroing 256 slots; a
// slot whose stamp differs from the current generation reads as unseen. When
// the generation counter wraps the stamps are cleared once, so a slot written
// 2^32 strings ago can never alias the current generation.
type seenTable struct {
	labels [alphabetSize]uint16
	stamps [alphabetSize]uint32
	gen    uint32
}

// reset logically clears every slot.
func (s *seenTable) reset() {
	s.gen++
	if s.gen == 0 {
		s.stamps = [alphabetSize]uint32{}
		s.gen = 1
	}
}

// get returns label+1 for b, or 0 if b has not been seen in this generation.
func (s *seenTable) get(b byte) uint16 {
	if s.stamps[b] != s.gen {
		return 0
	}
	return s.labels[b]
}

// set records v (label+1) for b in the current generation.
func (s *seenTable) set(b byte, v uint16) {
	s.stamps[b] = s.gen
	s.labels[b] = v
}
