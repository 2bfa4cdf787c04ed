package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Rand is the randomness the scenario and question pickers consume.
// *Stream satisfies it; tests may pass any deterministic implementation.
type Rand interface {
	Intn(n int) int
}

// SeedFromString returns a 64-bit seed from an arbitrary string using SHA256.
func SeedFromString(s string) uint64 {
	h := sha256.Sum256([]byte(s))
	return binary.LittleEndian.Uint64(h[:8])
}

// DeriveSeed returns a deterministic child seed based on a base seed and a label using HMAC-SHA256.
// Labels should be stable strings such as "round:3:scenario".
func DeriveSeed(base uint64, label string) uint64 {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, base)
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(label))
	sum := m.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// Seed is the textual session seed plus the root it hashes to.
type Seed struct {
	Text string
	root uint64
}

// NewSeed creates a deterministic Seed from text. Empty text is rejected.
func NewSeed(text string) (Seed, error) {
	if text == "" {
		return Seed{}, fmt.Errorf("seed text must not be empty")
	}
	return Seed{Text: text, root: SeedFromString(text)}, nil
}

// Stream returns a labelled deterministic stream.
func (s Seed) Stream(label string) *Stream {
	return newStream(DeriveSeed(s.root, label))
}

// Round returns the stream for one part ("scenario", "question") of round n. Parts are
// children of the round's stream. Two sessions with the same seed see the same rounds.
func (s Seed) Round(n int, part string) *Stream {
	return s.Stream(fmt.Sprintf("round:%d", n)).Child(part)
}

// splitMix64 PRNG for deterministic streams.
type splitMix64 struct{ state uint64 }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Stream provides deterministic random numbers with support for labelled child streams.
type Stream struct {
	base uint64
	sm   *splitMix64
}

func newStream(seed uint64) *Stream {
	return &Stream{base: seed, sm: &splitMix64{state: seed}}
}

// Intn returns a value in [0,n). n <= 0 yields 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.sm.next() % uint64(n))
}

// Child creates a stable sub-stream derived from this stream's base seed and label.
func (s *Stream) Child(label string) *Stream { return newStream(DeriveSeed(s.base, label)) }
