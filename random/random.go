// Package random implements a mutex-guarded PCG-XSH-RR 32-bit generator
// with derived integer, float, token, sampling and shuffling helpers.
// All operations on a single Random share one lock; independent instances
// never contend with each other.
package random

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	multiplier = 6364136223846793005
	seedMixin  = 0x853c49e6748fea9b
)

var ErrInvalidRange = errors.New("random: max is less than min")

var ErrZeroLength = errors.New("random: token length must be positive")

var ErrEmptyCollection = errors.New("random: empty collection")

var ErrEvenStream = errors.New("random: stream selector must be odd")

// Alphabet selects the character set used by Token.
type Alphabet int

const (
	Alpha Alphabet = iota
	AlphaNumeric
)

const alphaCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const alphaNumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func (a Alphabet) String() string {
	switch a {
	case AlphaNumeric:
		return "AlphaNumeric"
	default:
		return "Alpha"
	}
}

func (a Alphabet) charset() string {
	switch a {
	case AlphaNumeric:
		return alphaNumericCharset
	default:
		return alphaCharset
	}
}

// Random is a 64-bit permuted-congruential generator. The stream selector
// is kept odd so the underlying LCG has full 2^64 period. Safe for
// concurrent use; every operation holds the instance mutex for the full
// read-modify-write of the state.
type Random struct {
	mu      sync.Mutex
	state   uint64
	stream  uint64
	counter uint64
}

// NewRandom returns a generator seeded from crypto/rand entropy.
func NewRandom() *Random {
	r := &Random{}
	r.Seed(0)
	return r
}

// NewSeeded returns a generator seeded with the given value. Seeding with
// zero falls back to entropy.
func NewSeeded(seed uint64) *Random {
	r := &Random{}
	r.Seed(seed)
	return r
}

// Seed reseeds the generator. A zero value pulls fresh entropy and yields
// an unpredictable stream; any other value selects a fixed stream whose
// output sequence is reproducible across runs and platforms.
func (r *Random) Seed(seed uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seed(seed)
}

func (r *Random) seed(seed uint64) {
	if seed == 0 {
		r.state = uint64(entropy32())
		r.stream = uint64(entropy32())<<1 | 1
		r.next32()
		r.state += uint64(entropy32())
	} else {
		r.state = seed
		r.stream = 1
		r.next32()
		r.state += seedMixin
	}
	r.next32()
}

// next32 advances the LCG state and applies the XSH-RR output permutation.
// Callers must hold r.mu. Wraparound in the multiply-add is intended.
func (r *Random) next32() uint32 {
	old := r.state
	r.state = old*multiplier + r.stream
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old>>59) & 31
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Uint32 returns the next raw 32-bit draw.
func (r *Random) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next32()
}

// Int returns a value in [min, max]. Spans that fit in 32 bits consume
// one draw; wider spans consume two. The modulo reduction carries the
// usual slight bias for spans that do not divide the draw width; fine
// for the library's use cases, not cryptographic-grade.
func (r *Random) Int(min, max int) (int, error) {
	if max < min {
		return 0, ErrInvalidRange
	}
	span := uint64(max) - uint64(min) + 1
	r.mu.Lock()
	defer r.mu.Unlock()
	if span == 0 {
		// max-min covers the whole int range, so the span wrapped to zero.
		hi := uint64(r.next32())
		return int(hi<<32 | uint64(r.next32())), nil
	}
	draw := uint64(r.next32())
	if span > 1<<32 {
		draw = draw<<32 | uint64(r.next32())
	}
	return min + int(draw%span), nil
}

// Float returns a value in [min, max].
func (r *Random) Float(min, max float32) (float32, error) {
	if max < min {
		return 0, ErrInvalidRange
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	f := float32(r.next32()) / float32(^uint32(0))
	return min + f*(max-min), nil
}

// Bool flips a coin.
func (r *Random) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next32()%2 == 1
}

// Token builds a string of length characters drawn uniformly from the
// chosen alphabet.
func (r *Random) Token(length int, alphabet Alphabet) (string, error) {
	if length <= 0 {
		return "", ErrZeroLength
	}
	charset := alphabet.charset()
	r.mu.Lock()
	defer r.mu.Unlock()
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[int(r.next32())%len(charset)]
	}
	return string(buf), nil
}

// Gaussian draws from a normal distribution with the given mean and
// standard deviation. The sampler is driven by the core stream, so
// Gaussian draws are reproducible under explicit seeding and are
// serialized by the instance lock like every other operation.
func (r *Random) Gaussian(mean, stddev float32) float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(stddev), Src: rawSource{r}}
	return float32(dist.Rand())
}

// GenerateID concatenates a nanosecond timestamp, one raw draw and a
// per-instance counter. Uniqueness is best-effort only; clock skew or
// counter wraparound can repeat an ID.
func (r *Random) GenerateID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	timestamp := time.Now().UnixNano()
	component := r.next32()
	r.counter++
	return fmt.Sprintf("%d%d%d", timestamp, component, r.counter)
}

// State snapshots the generator for later Restore.
func (r *Random) State() (state, stream, counter uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.stream, r.counter
}

// Restore rewinds the generator to a snapshot taken with State.
func (r *Random) Restore(state, stream, counter uint64) error {
	if stream&1 == 0 {
		return ErrEvenStream
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.stream = stream
	r.counter = counter
	return nil
}

// PickOne returns a uniformly selected element.
func PickOne[T any](r *Random, elements []T) (T, error) {
	var zero T
	if len(elements) == 0 {
		return zero, ErrEmptyCollection
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return elements[int(r.next32())%len(elements)], nil
}

// Shuffle permutes elements in place using Fisher-Yates.
func Shuffle[T any](r *Random, elements []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(elements) - 1; i > 0; i-- {
		j := int(r.next32() % uint32(i+1))
		elements[i], elements[j] = elements[j], elements[i]
	}
}
