package pair

import (
	"encoding/binary"
	"encoding/hex"
	"iter"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-textpair/text"
)

// Digest is a BLAKE2b-256 fingerprint of a pair's text.
type Digest [blake2b.Size256]byte

// String returns the lowercase hex encoding of d.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Fingerprint hashes the text of both slots. Each slot is length-prefixed,
// so ("ab", "c") and ("a", "bc") have different fingerprints. Two pairs
// with equal text have equal fingerprints whatever their element types.
func Fingerprint[T text.Text](p Pair[T]) Digest {
	first, second := p.First().Borrow(), p.Second().Borrow()

	msg := make([]byte, 0, 2*binary.MaxVarintLen64+len(first)+len(second))
	msg = binary.AppendUvarint(msg, uint64(len(first)))
	msg = append(msg, first...)
	msg = binary.AppendUvarint(msg, uint64(len(second)))
	msg = append(msg, second...)
	return blake2b.Sum256(msg)
}

// Unique yields the pairs of the input sequence, skipping any pair whose
// [Fingerprint] has already been seen. The first occurrence wins.
func Unique[T text.Text](pairs iter.Seq[Pair[T]]) iter.Seq[Pair[T]] {
	return func(yield func(Pair[T]) bool) {
		seen := make(map[Digest]struct{})
		for p := range pairs {
			d := Fingerprint(p)
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			if !yield(p) {
				return
			}
		}
	}
}
