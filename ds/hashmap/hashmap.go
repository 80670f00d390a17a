// Copyright 2026 The hash-that-set Author. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hashmap implements a hash map keyed with its own per-instance
// seed. The map exposes that seed as a hashing context, so the
// order-independent combiner can hash its entries with the exact
// configuration the map uses for bucket placement.
package hashmap

import (
	"iter"

	sumhash "github.com/A248/hash-that-set"
)

// Key constrains map keys: comparable for lookup, hashable for bucket
// placement.
type Key interface {
	comparable
	sumhash.Hashable
}

// Value constrains map values.
type Value = Key

// Entry is a key-value pair yielded by map iteration.
type Entry[K Key, V Value] struct {
	Key   K
	Value V
}

// HashInto feeds the key then the value, the same stream a
// sumhash.Pair with those fields produces.
func (e Entry[K, V]) HashInto(h sumhash.Hasher) {
	e.Key.HashInto(h)
	e.Value.HashInto(h)
}

// Map is a hash map with chained buckets. Bucket placement runs every key
// through a hasher built from the map's seed, so lookups depend on a
// keyed hash function that the map also exposes via Hasher. Not safe for
// concurrent mutation.
type Map[K Key, V Value] struct {
	seed    sumhash.Seed
	maxLoad float64
	buckets [][]Entry[K, V]
	length  int
}

// New returns an empty map with DefaultOptions and a random seed.
func New[K Key, V Value]() *Map[K, V] {
	m, _ := NewWith[K, V](DefaultOptions)
	return m
}

// NewWith returns an empty map configured by opts.
func NewWith[K Key, V Value](opts Options) (*Map[K, V], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = sumhash.NewSeed()
	}
	return &Map[K, V]{
		seed:    seed,
		maxLoad: opts.MaxLoadFactor,
		buckets: make([][]Entry[K, V], bucketCount(opts.InitialCapacity)),
	}, nil
}

func bucketCount(capacity int) int {
	n := 8
	for n < capacity {
		n <<= 1
	}
	return n
}

func (m *Map[K, V]) bucketFor(key K) int {
	h := m.seed.NewHasher()
	key.HashInto(h)
	return int(h.Sum64() & uint64(len(m.buckets)-1))
}

// Put associates key with value, replacing any previous value.
func (m *Map[K, V]) Put(key K, value V) {
	if float64(m.length+1) > m.maxLoad*float64(len(m.buckets)) {
		m.grow()
	}
	i := m.bucketFor(key)
	for j, e := range m.buckets[i] {
		if e.Key == key {
			m.buckets[i][j].Value = value
			return
		}
	}
	m.buckets[i] = append(m.buckets[i], Entry[K, V]{Key: key, Value: value})
	m.length++
}

func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([][]Entry[K, V], 2*len(old))
	for _, bucket := range old {
		for _, e := range bucket {
			i := m.bucketFor(e.Key)
			m.buckets[i] = append(m.buckets[i], e)
		}
	}
}

// Get returns the value associated with key, and whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	for _, e := range m.buckets[m.bucketFor(key)] {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.bucketFor(key)
	bucket := m.buckets[i]
	for j, e := range bucket {
		if e.Key == key {
			last := len(bucket) - 1
			bucket[j] = bucket[last]
			m.buckets[i] = bucket[:last]
			m.length--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.length
}

// All iterates the entries in bucket order, which depends on the seed and
// must not be relied on.
func (m *Map[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Keys iterates the keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := range m.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates the values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range m.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Seed returns the seed keying this map. Passing it in Options builds
// another collection with an identical hashing context.
func (m *Map[K, V]) Seed() sumhash.Seed {
	return m.seed
}

// Hasher exposes the map's hashing context.
func (m *Map[K, V]) Hasher() sumhash.BuildHasher {
	return m.seed
}

// Equal reports whether both maps hold the same entries. Seeds and
// iteration orders play no part.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.length != other.length {
		return false
	}
	for e := range m.All() {
		v, ok := other.Get(e.Key)
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}

// Hashed wraps the map for order-independent hashing with its own seed.
func (m *Map[K, V]) Hashed() sumhash.Hashed[Entry[K, V], *Map[K, V]] {
	return sumhash.New[Entry[K, V]](m)
}

var _ sumhash.ProvidingCollection[Entry[sumhash.Int, sumhash.String]] = (*Map[sumhash.Int, sumhash.String])(nil)
