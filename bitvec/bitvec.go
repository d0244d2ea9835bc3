/*
Package bitvec implements the word-array bitset shared by the reference-data
builder and the coverage engine. A Vector maps one bit to one Unicode code
point; a set bit means the code point satisfies the vector's predicate
(assigned by Unicode, or mapped by a font).

Vectors are mutable while their builder owns them and are treated as
read-only by every consumer afterwards. There is no internal locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bitvec

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math/bits"
)

// WordBits is the fixed machine word width of a vector.
const WordBits = 64

// Vector is a growable bitset over code points. The zero value is an empty
// vector ready for use.
type Vector struct {
	words []uint64
}

// New returns a vector pre-sized to cover [0, size) without further
// allocation. Bits may still be set beyond size; the vector grows on demand.
func New(size int) *Vector {
	if size <= 0 {
		return &Vector{}
	}
	return &Vector{words: make([]uint64, (size+WordBits-1)/WordBits)}
}

// Set sets bit i. Negative indices are ignored.
func (v *Vector) Set(i rune) {
	if i < 0 {
		return
	}
	k := int(i) / WordBits
	if k >= len(v.words) {
		grown := make([]uint64, k+1)
		copy(grown, v.words)
		v.words = grown
	}
	v.words[k] |= 1 << (uint(i) % WordBits)
}

// Test reports whether bit i is set. Bits beyond the current length read as
// unset.
func (v *Vector) Test(i rune) bool {
	if i < 0 {
		return false
	}
	k := int(i) / WordBits
	if k >= len(v.words) {
		return false
	}
	return v.words[k]&(1<<(uint(i)%WordBits)) != 0
}

// Len returns the number of bit positions the vector currently covers, a
// multiple of WordBits.
func (v *Vector) Len() int {
	return len(v.words) * WordBits
}

// WordCount returns the number of words backing the vector.
func (v *Vector) WordCount() int {
	return len(v.words)
}

// Word returns the k-th word, with words beyond the current length reading
// as zero.
func (v *Vector) Word(k int) uint64 {
	if k < 0 || k >= len(v.words) {
		return 0
	}
	return v.words[k]
}

// Count returns the total number of set bits.
func (v *Vector) Count() int {
	n := 0
	for _, w := range v.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// RangeMask returns the mask for word k restricted to the inclusive bit
// range [lo, hi]: bits below lo are cleared in lo's word, bits above hi are
// cleared in hi's word, words in between are all ones, words outside are
// zero.
func RangeMask(k int, lo, hi rune) uint64 {
	if lo > hi {
		return 0
	}
	loWord, hiWord := int(lo)/WordBits, int(hi)/WordBits
	if k < loWord || k > hiWord {
		return 0
	}
	mask := ^uint64(0)
	if k == loWord {
		mask &= ^uint64(0) << (uint(lo) % WordBits)
	}
	if k == hiWord {
		shift := WordBits - 1 - uint(hi)%WordBits
		mask &= ^uint64(0) >> shift
	}
	return mask
}

// CountRange returns the number of set bits within the inclusive code point
// range [lo, hi]. Parts of the range beyond the vector's length count zero.
func (v *Vector) CountRange(lo, hi rune) int {
	if lo < 0 {
		lo = 0
	}
	if lo > hi {
		return 0
	}
	n := 0
	loWord, hiWord := int(lo)/WordBits, int(hi)/WordBits
	if hiWord >= len(v.words) {
		hiWord = len(v.words) - 1
	}
	for k := loWord; k <= hiWord; k++ {
		w := v.words[k]
		if w == 0 {
			continue
		}
		n += bits.OnesCount64(w & RangeMask(k, lo, hi))
	}
	return n
}

// Or unions other into v, zero-extending v as needed. A nil other is a
// no-op.
func (v *Vector) Or(other *Vector) {
	if other == nil {
		return
	}
	if len(other.words) > len(v.words) {
		grown := make([]uint64, len(other.words))
		copy(grown, v.words)
		v.words = grown
	}
	for k, w := range other.words {
		v.words[k] |= w
	}
}

// Equal reports whether two vectors have identical bit contents. Trailing
// zero words do not distinguish vectors.
func (v *Vector) Equal(other *Vector) bool {
	a, b := v.words, other.words
	if len(a) < len(b) {
		a, b = b, a
	}
	for k := range b {
		if a[k] != b[k] {
			return false
		}
	}
	for _, w := range a[len(b):] {
		if w != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the vector.
func (v *Vector) Clone() *Vector {
	c := &Vector{words: make([]uint64, len(v.words))}
	copy(c.words, v.words)
	return c
}

// vectorJSON is the artifact wire form: word count plus a base64 dump of
// the words in little-endian byte order.
type vectorJSON struct {
	Words int    `json:"words"`
	Bits  string `json:"bits"`
}

// MarshalJSON encodes the vector for the reference-data artifact.
func (v *Vector) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 8*len(v.words))
	for k, w := range v.words {
		binary.LittleEndian.PutUint64(buf[8*k:], w)
	}
	return json.Marshal(vectorJSON{
		Words: len(v.words),
		Bits:  base64.StdEncoding.EncodeToString(buf),
	})
}

// UnmarshalJSON decodes a vector from its artifact form.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var wire vectorJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	buf, err := base64.StdEncoding.DecodeString(wire.Bits)
	if err != nil {
		return err
	}
	n := len(buf) / 8
	if wire.Words >= 0 && wire.Words < n {
		n = wire.Words
	}
	v.words = make([]uint64, n)
	for k := range v.words {
		v.words[k] = binary.LittleEndian.Uint64(buf[8*k:])
	}
	return nil
}
