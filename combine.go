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

package sumhash

import "iter"

// Collection is any iterable of hashable elements. Iteration order is
// deliberately unspecified: the combiner produces the same digest for
// every order All may yield.
type Collection[E Hashable] interface {
	All() iter.Seq[E]
}

// Seq adapts a bare iterator, such as slices.Values, to Collection. It
// exists as an escape hatch for arbitrary iterables; applying it to an
// order-sensitive collection is semantically wrong, since the digest
// ignores an order that the collection's own equality respects.
type Seq[E Hashable] iter.Seq[E]

// All returns the underlying iterator.
func (s Seq[E]) All() iter.Seq[E] { return iter.Seq[E](s) }

// HasherSource chooses the hashing context used per element, given the
// collection being hashed as the peer.
type HasherSource[C any] interface {
	HasherFor(peer C) Hasher
}

// UseDefault ignores the peer collection and always builds hashers from
// DefaultBuild. Usable with any collection type.
type UseDefault[C any] struct{}

// HasherFor builds a default hasher.
func (UseDefault[C]) HasherFor(C) Hasher { return DefaultBuild.NewHasher() }

// UseProvided borrows the hashing context from the peer collection. The
// HasherProvider constraint makes it a compile error to select this
// strategy for a collection that exposes no context.
type UseProvided[C HasherProvider] struct{}

// HasherFor builds a hasher from the peer's own context.
func (UseProvided[C]) HasherFor(peer C) Hasher { return peer.Hasher().NewHasher() }

// Sum writes the order-independent digest of the elements of seq into
// state, hashing each element with the fixed default algorithm.
//
// Every element is fed into a fresh hasher and the finalized per-element
// digests are added together with wraparound arithmetic; reusing one
// hasher across elements would leak iteration order through its internal
// state. The final sum is written into state as one 64-bit block, so an
// empty seq contributes a zero block.
func Sum[E Hashable](seq iter.Seq[E], state Hasher) {
	var sum uint64
	for e := range seq {
		sum += HashOf(e, DefaultBuild)
	}
	WriteUint64(state, sum)
}

// SumWith is the general form of Sum: the per-element hashing context is
// chosen by source, which is handed collection as the peer for every
// element.
func SumWith[E Hashable, C Collection[E]](collection C, state Hasher, source HasherSource[C]) {
	var sum uint64
	for e := range collection.All() {
		h := source.HasherFor(collection)
		e.HashInto(h)
		sum += h.Sum64()
	}
	WriteUint64(state, sum)
}

// SumProvided hashes collection with its own borrowed context, i.e.
// SumWith under the UseProvided strategy.
func SumProvided[E Hashable, C ProvidingCollection[E]](collection C, state Hasher) {
	SumWith[E, C](collection, state, UseProvided[C]{})
}
