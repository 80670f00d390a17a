package hashmap

import (
	"errors"

	errors2 "github.com/pkg/errors"

	sumhash "github.com/A248/hash-that-set"
)

var (
	// ErrCapacity is returned when the initial capacity is negative.
	ErrCapacity = errors.New("capacity error")

	// ErrLoadFactor is returned when the max load factor is not strictly
	// between 0 and 1.
	ErrLoadFactor = errors.New("load factor error")
)

// Options records params for creating a Map.
type Options struct {
	// InitialCapacity sizes the initial bucket array. Zero is valid and
	// uses the minimum size.
	InitialCapacity int

	// MaxLoadFactor is the entries-per-bucket ratio beyond which the
	// bucket array doubles.
	MaxLoadFactor float64

	// Seed keys bucket placement and element hashing. The zero Seed
	// means a random one is drawn; collections that must agree on
	// digests under a borrowed context share an explicit Seed.
	Seed sumhash.Seed
}

// DefaultOptions are the options used by New.
var DefaultOptions = Options{
	InitialCapacity: 16,
	MaxLoadFactor:   0.75,
}

func (o Options) validate() error {
	if o.InitialCapacity < 0 {
		return errors2.Wrapf(ErrCapacity, "initial capacity %d", o.InitialCapacity)
	}
	if o.MaxLoadFactor <= 0 || o.MaxLoadFactor >= 1 {
		return errors2.Wrapf(ErrLoadFactor, "max load factor %v", o.MaxLoadFactor)
	}
	return nil
}
