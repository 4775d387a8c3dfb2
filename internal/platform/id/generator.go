package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// idBytes is the entropy per generated ID. 16 bytes keeps collisions
// out of reach at archive record counts.
const idBytes = 16

// Generator creates opaque identifiers for stored records. IDs carry no
// meaning; lookups always go through the repositories.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator produces hex-encoded random IDs.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [idBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate id entropy: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
