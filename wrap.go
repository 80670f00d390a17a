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

// ProvidingCollection is a Collection that exposes its own hashing
// context.
type ProvidingCollection[E Hashable] interface {
	Collection[E]
	HasherProvider
}

// Hashed adapts a context-providing collection into a Hashable value,
// hashing elements with the collection's own borrowed context. It is the
// safe wrapper for hash maps and hash sets: per-element hashing uses the
// exact configuration, seed included, that the collection uses for its
// own lookups.
//
// The wrapper holds the collection by value and intercepts nothing but
// hash requests; mutate and read the collection through Inner. Note that
// two equal collections keyed with different random seeds produce
// different borrowed-context digests. Callers who need digest agreement
// across instances construct the collections with a shared Seed, or hash
// with the default context instead.
//
// Hashed is itself a ProvidingCollection, so wrapped collections nest as
// elements of other hashed collections.
type Hashed[E Hashable, C ProvidingCollection[E]] struct {
	inner C
}

// New wraps collection. O(1): the collection is moved in as-is. The
// element type is given explicitly, as in
// New[hashmap.Entry[Int, String]](m).
func New[E Hashable, C ProvidingCollection[E]](collection C) Hashed[E, C] {
	return Hashed[E, C]{inner: collection}
}

// IntoInner destructures the wrapper back into the collection. O(1).
func (w Hashed[E, C]) IntoInner() C { return w.inner }

// Inner returns the wrapped collection for direct reads and mutation.
func (w Hashed[E, C]) Inner() C { return w.inner }

// All iterates the wrapped collection, unchanged.
func (w Hashed[E, C]) All() iter.Seq[E] { return w.inner.All() }

// Hasher exposes the wrapped collection's hashing context.
func (w Hashed[E, C]) Hasher() BuildHasher { return w.inner.Hasher() }

// HashInto writes the order-independent digest of the wrapped
// collection's elements into state, using the borrowed context.
func (w Hashed[E, C]) HashInto(state Hasher) {
	SumWith[E, C](w.inner, state, UseProvided[C]{})
}

// HashedAny adapts any collection into a Hashable value, hashing elements
// with the fixed default context. It works for collections with no notion
// of a hashing context at all.
//
// Do not use this wrapper with an order-sensitive collection. The wrapper
// does not change equality semantics, only hashing; an ordered
// collection's equality distinguishes orderings that this digest cannot.
type HashedAny[E Hashable, C Collection[E]] struct {
	inner C
}

// NewAny wraps collection. O(1).
func NewAny[E Hashable, C Collection[E]](collection C) HashedAny[E, C] {
	return HashedAny[E, C]{inner: collection}
}

// IntoInner destructures the wrapper back into the collection. O(1).
func (w HashedAny[E, C]) IntoInner() C { return w.inner }

// Inner returns the wrapped collection for direct reads and mutation.
func (w HashedAny[E, C]) Inner() C { return w.inner }

// All iterates the wrapped collection, unchanged.
func (w HashedAny[E, C]) All() iter.Seq[E] { return w.inner.All() }

// HashInto writes the order-independent digest of the wrapped
// collection's elements into state, using the default context.
func (w HashedAny[E, C]) HashInto(state Hasher) {
	SumWith[E, C](w.inner, state, UseDefault[C]{})
}

var (
	_ Hashable                 = Hashed[Int, ProvidingCollection[Int]]{}
	_ ProvidingCollection[Int] = Hashed[Int, ProvidingCollection[Int]]{}
	_ Hashable                 = HashedAny[Int, Collection[Int]]{}
	_ Collection[Int]          = HashedAny[Int, Collection[Int]]{}
)
