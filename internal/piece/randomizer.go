package piece

import (
	"fmt"
	"math/rand"
)

// Randomizer picks piece types. Two randomizers of the same kind created
// with the same seed produce identical sequences.
type Randomizer interface {
	// Next consumes and returns the next type.
	Next() Type
	// Peek returns the next type without consuming it.
	Peek() Type
}

// Randomizer kinds accepted by NewRandomizer.
const (
	KindBag     = "bag"
	KindUniform = "uniform"
)

// RandomizerFor returns the constructor for a randomizer kind. An empty
// kind means bag.
func RandomizerFor(kind string) (func(seed int64) Randomizer, error) {
	switch kind {
	case KindBag, "":
		return func(seed int64) Randomizer { return NewBag(seed) }, nil
	case KindUniform:
		return func(seed int64) Randomizer { return NewUniform(seed) }, nil
	default:
		return nil, fmt.Errorf("piece: unknown randomizer %q", kind)
	}
}

// NewRandomizer creates a randomizer by kind name.
func NewRandomizer(kind string, seed int64) (Randomizer, error) {
	newRand, err := RandomizerFor(kind)
	if err != nil {
		return nil, err
	}
	return newRand(seed), nil
}

// Bag deals every type once per shuffled bag of Count.
type Bag struct {
	rng *rand.Rand
	bag []Type
}

// NewBag creates a seeded 7-bag randomizer.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next type from the bag.
func (b *Bag) Next() Type {
	if len(b.bag) == 0 {
		b.refill()
	}
	t := b.bag[0]
	b.bag = b.bag[1:]
	return t
}

// Peek returns the next type without consuming it.
func (b *Bag) Peek() Type {
	if len(b.bag) == 0 {
		b.refill()
	}
	return b.bag[0]
}

func (b *Bag) refill() {
	b.bag = make([]Type, Count)
	for i := range b.bag {
		b.bag[i] = Type(i)
	}
	// Fisher-Yates shuffle
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// Uniform draws each type independently.
type Uniform struct {
	rng    *rand.Rand
	next   Type
	primed bool
}

// NewUniform creates a seeded uniform randomizer.
func NewUniform(seed int64) *Uniform {
	return &Uniform{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns a uniformly chosen type.
func (u *Uniform) Next() Type {
	t := u.Peek()
	u.primed = false
	return t
}

// Peek returns the next type without consuming it.
func (u *Uniform) Peek() Type {
	if !u.primed {
		u.next = Type(u.rng.Intn(Count))
		u.primed = true
	}
	return u.next
}

// Sequence replays a fixed list of types in a loop. Tests use it to script
// exact piece orders.
type Sequence struct {
	types []Type
	pos   int
}

// NewSequence creates a looping randomizer over types, which must be non-empty.
func NewSequence(types ...Type) *Sequence {
	return &Sequence{types: types}
}

// Next returns the next scripted type.
func (s *Sequence) Next() Type {
	t := s.Peek()
	s.pos = (s.pos + 1) % len(s.types)
	return t
}

// Peek returns the next scripted type without consuming it.
func (s *Sequence) Peek() Type {
	return s.types[s.pos]
}
