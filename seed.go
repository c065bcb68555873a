package inkfield

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// ErrInvalidSeed is returned, wrapped, for seed strings that cannot be decoded.
var ErrInvalidSeed = errors.New("invalid seed")

// Seed is the 32 bytes a [Rand] is initialized from.
type Seed [32]byte

// String returns the seed as 0x-prefixed hexadecimal.
func (s Seed) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// SeedFromHex decodes a hexadecimal hash, with or without a 0x prefix. Up to 32
// bytes are used; shorter hashes are padded with zeros.
func SeedFromHex(hash string) (Seed, error) {
	var s Seed
	h := strings.TrimPrefix(strings.TrimPrefix(hash, "0x"), "0X")
	if h == "" {
		return s, fmt.Errorf("%w: empty hex hash", ErrInvalidSeed)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return s, fmt.Errorf("%w: %q: %w", ErrInvalidSeed, hash, err)
	}
	copy(s[:], b)
	return s, nil
}

// SeedFromBase58 decodes a content-identifier style hash. The two leading
// characters identify the hash kind and are skipped; the remainder is base58
// decoded and its first 32 bytes form the seed.
func SeedFromBase58(hash string) (Seed, error) {
	var s Seed
	if len(hash) <= 2 {
		return s, fmt.Errorf("%w: base58 hash %q too short", ErrInvalidSeed, hash)
	}
	b, err := base58.Decode(hash[2:])
	if err != nil {
		return s, fmt.Errorf("%w: %q: %w", ErrInvalidSeed, hash, err)
	}
	copy(s[:], b)
	return s, nil
}

// ParseSeed decodes hash as hexadecimal if it has a 0x prefix or only consists
// of hex digits, and as a base58 content identifier otherwise.
func ParseSeed(hash string) (Seed, error) {
	if strings.HasPrefix(hash, "0x") || strings.HasPrefix(hash, "0X") || isHex(hash) {
		return SeedFromHex(hash)
	}
	return SeedFromBase58(hash)
}

func isHex(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
