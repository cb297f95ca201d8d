package patterns

import "unsafe"

// Encoder computes Patterns. It owns a seen-table that is reused across
// strings, so repeated calls do not touch the allocator beyond the output.
// An Encoder must not be used from more than one goroutine at a time; the
// zero value is ready to use.
type Encoder struct {
	seen seenTable
}

// NewEncoder returns a ready-to-use Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// AppendEncode appends the pattern of s to dst and returns the extended
// slice. The pattern occupies the last len(s) elements of the result.
//
// Each byte is looked up in the seen-table: an unseen byte is assigned the
// next label, a seen byte repeats the label it was given on first occurrence.
func (e *Encoder) AppendEncode(dst []byte, s []byte) Pattern {
	e.seen.reset()
	var next uint16
	for _, b := range s {
		label := e.seen.get(b)
		if label == 0 {
			next++
			e.seen.set(b, next)
			label = next
		}
		dst = append(dst, byte(label-1))
	}
	return dst
}

// Encode returns the pattern of s in a newly allocated buffer of len(s).
func (e *Encoder) Encode(s []byte) Pattern {
	return e.AppendEncode(make(Pattern, 0, len(s)), s)
}

// Encode returns the pattern of s. It is a pure function of s.
func Encode(s []byte) Pattern {
	var e Encoder
	return e.Encode(s)
}

// EncodeString returns the pattern of s without copying s.
func EncodeString(s string) Pattern {
	return Encode(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// EncodeAll encodes every input with one Encoder. All patterns share a single
// backing buffer sized to the total input length.
func EncodeAll(inputs [][]byte) []Pattern {
	var total int
	for i := range inputs {
		total += len(inputs[i])
	}
	var (
		enc   Encoder
		arena = make([]byte, 0, total)
		out   = make([]Pattern, len(inputs))
	)
	for i := range inputs {
		start := len(arena)
		arena = enc.AppendEncode(arena, inputs[i])
		out[i] = Pattern(arena[start:len(arena):len(arena)])
	}
	return out
}
