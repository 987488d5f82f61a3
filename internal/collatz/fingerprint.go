package collatz

import (
	"encoding/binary"
	"hash"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"
)

// fingerprinter hashes matching start values in scan order so two runs (or two
// implementations) can be compared without exchanging the full match list.
type fingerprinter struct {
	h   hash.Hash
	buf [8]byte
}

func newFingerprinter() *fingerprinter {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with an oversized key.
		panic(err)
	}
	return &fingerprinter{h: h}
}

func (f *fingerprinter) add(n uint64) {
	binary.BigEndian.PutUint64(f.buf[:], n)
	_, _ = f.h.Write(f.buf[:])
}

func (f *fingerprinter) sum() string {
	return base58.Encode(f.h.Sum(nil))
}

// Fingerprint returns the scan fingerprint for an explicit list of matching
// start values, in the order given.
func Fingerprint(starts []uint64) string {
	fp := newFingerprinter()
	for _, n := range starts {
		fp.add(n)
	}
	return fp.sum()
}
