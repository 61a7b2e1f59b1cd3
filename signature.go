package stabby

import "math/bits"

const signatureWords = MaxComponents / 64

// Signature is a fixed-width bit vector over component identifiers. Bit i is
// set when the owner has (for an entity) or requires (for a system) the
// component whose ComponentID is i.
type Signature [signatureWords]uint64

// SignatureOf builds a signature with the given bits set.
func SignatureOf(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s.Set(id)
	}
	return s
}

// Set enables the bit for id.
func (s *Signature) Set(id ComponentID) {
	s[id>>6] |= uint64(1) << (id & 63)
}

// Unset disables the bit for id.
func (s *Signature) Unset(id ComponentID) {
	s[id>>6] &^= uint64(1) << (id & 63)
}

// Test reports whether the bit for id is set.
func (s Signature) Test(id ComponentID) bool {
	return s[id>>6]&(uint64(1)<<(id&63)) != 0
}

// Contains reports whether every bit set in required is also set in s, that is
// s & required == required. An empty required signature is contained by every
// signature.
func (s Signature) Contains(required Signature) bool {
	for i := range s {
		if s[i]&required[i] != required[i] {
			return false
		}
	}
	return true
}

// Reset clears every bit.
func (s *Signature) Reset() {
	*s = Signature{}
}

// IsEmpty reports whether no bit is set.
func (s Signature) IsEmpty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// IDs returns the set bits in ascending order.
func (s Signature) IDs() []ComponentID {
	ids := make([]ComponentID, 0, s.Count())
	for i, w := range s {
		for w != 0 {
			o := bits.TrailingZeros64(w)
			ids = append(ids, ComponentID(i*64+o))
			w &= w - 1
		}
	}
	return ids
}
