// Package rng provides the entropy sources used by the draw engine
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

// Source names accepted by New
const (
	SourcePCG  = "pcg"
	SourceDice = "dice"
)

// floatResolution is the die size used to build floats from dice rolls
const floatResolution = 1 << 30

// Source supplies the randomness for a draw
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Reseeder is implemented by sources whose state can be replaced
type Reseeder interface {
	Reseed(seed uint64)
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read random seed")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// New builds the named source seeded with seed
func New(name string, seed uint64) (Source, error) {
	switch name {
	case "", SourcePCG:
		return NewPCG(seed), nil
	case SourceDice:
		return NewDice(dice.DefaultRoller, seed), nil
	default:
		return nil, errors.InvalidArgumentf("unknown random source %q", name)
	}
}

// PCG is a reseedable permuted congruential generator
type PCG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewPCG creates a PCG source
func NewPCG(seed uint64) *PCG {
	src := rand.NewPCG(seed, streamFor(seed))
	return &PCG{src: src, r: rand.New(src)}
}

// IntN returns a uniform integer in [0, n)
func (p *PCG) IntN(n int) int {
	return p.r.IntN(n)
}

// Float64 returns a uniform float in [0, 1)
func (p *PCG) Float64() float64 {
	return p.r.Float64()
}

// Reseed replaces the generator state
func (p *PCG) Reseed(seed uint64) {
	p.src.Seed(seed, streamFor(seed))
}

func streamFor(seed uint64) uint64 {
	return seed ^ 0x9e3779b97f4a7c15
}

// Dice draws through an rpg-toolkit dice roller. Roller failures fall back
// to an internal PCG so a draw never stalls on entropy. The roller keeps its
// own entropy, so a Dice source is not a Reseeder and its draws cannot be
// reproduced from a seed.
type Dice struct {
	roller   dice.Roller
	fallback *PCG
}

// NewDice wraps roller; seed only feeds the fallback generator
func NewDice(roller dice.Roller, seed uint64) *Dice {
	return &Dice{roller: roller, fallback: NewPCG(seed)}
}

// IntN returns a uniform integer in [0, n)
func (d *Dice) IntN(n int) int {
	v, err := d.roller.Roll(n)
	if err != nil || v < 1 || v > n {
		slog.Warn("Dice roller failed, using fallback generator", "size", n, "error", err)
		return d.fallback.IntN(n)
	}
	return v - 1
}

// Float64 returns a uniform float in [0, 1)
func (d *Dice) Float64() float64 {
	return float64(d.IntN(floatResolution)) / floatResolution
}

var _ Reseeder = (*PCG)(nil)
