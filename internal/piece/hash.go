package piece

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"honnef.co/go/inkfield"
)

// entropy is where RandomHash draws its bytes from.
var entropy io.Reader = rand.Reader

// RandomHash returns a fresh hex hash for a new, unseen drawing.
func RandomHash() (string, error) {
	var s inkfield.Seed
	if _, err := io.ReadFull(entropy, s[:]); err != nil {
		return "", fmt.Errorf("reading random hash: %w", err)
	}
	return s.String(), nil
}

// Variant returns the hash of the n-th variation of hash. Variation 0 is hash
// itself; the others alter the last eight bytes of its seed.
func Variant(hash string, n int) (string, error) {
	seed, err := inkfield.ParseSeed(hash)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return hash, nil
	}
	tail := seed[len(seed)-8:]
	binary.BigEndian.PutUint64(tail, binary.BigEndian.Uint64(tail)+uint64(n))
	return seed.String(), nil
}
