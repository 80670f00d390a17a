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

// Package hashset implements a hash set over the seeded map from
// ds/hashmap, exposing the same borrowed hashing context.
package hashset

import (
	"errors"
	"iter"

	errors2 "github.com/pkg/errors"

	sumhash "github.com/A248/hash-that-set"
	"github.com/A248/hash-that-set/ds/hashmap"
)

var (
	// ErrMemberNotFound is returned when removing a member the set does
	// not hold.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberEmpty is returned when no members are given.
	ErrMemberEmpty = errors.New("member empty")
)

type unit struct{}

func (unit) HashInto(sumhash.Hasher) {}

// Set represents the Set. Iteration yields each member once, in an order
// that depends on the seed and must not be relied on.
type Set[E hashmap.Key] struct {
	m *hashmap.Map[E, unit]
}

// New returns an empty set with hashmap.DefaultOptions and a random seed.
func New[E hashmap.Key]() *Set[E] {
	s, _ := NewWith[E](hashmap.DefaultOptions)
	return s
}

// NewWith returns an empty set configured by opts.
func NewWith[E hashmap.Key](opts hashmap.Options) (*Set[E], error) {
	m, err := hashmap.NewWith[E, unit](opts)
	if err != nil {
		return nil, err
	}
	return &Set[E]{m: m}, nil
}

// Of returns a set holding the given members.
func Of[E hashmap.Key](members ...E) *Set[E] {
	s := New[E]()
	s.Add(members...)
	return s
}

// Add adds the given members to the set.
func (s *Set[E]) Add(members ...E) {
	for _, member := range members {
		s.m.Put(member, unit{})
	}
}

// Remove removes the given members. If any member is absent the set is
// left unchanged and ErrMemberNotFound is returned.
func (s *Set[E]) Remove(members ...E) error {
	if len(members) == 0 {
		return ErrMemberEmpty
	}
	for _, member := range members {
		if !s.m.Contains(member) {
			return errors2.Wrap(ErrMemberNotFound, "remove")
		}
	}
	for _, member := range members {
		s.m.Delete(member)
	}
	return nil
}

// Contains reports whether member is in the set.
func (s *Set[E]) Contains(member E) bool {
	return s.m.Contains(member)
}

// ContainsAll reports whether every given member is in the set.
func (s *Set[E]) ContainsAll(members ...E) bool {
	for _, member := range members {
		if !s.m.Contains(member) {
			return false
		}
	}
	return true
}

// Len returns the set cardinality.
func (s *Set[E]) Len() int {
	return s.m.Len()
}

// All iterates the members.
func (s *Set[E]) All() iter.Seq[E] {
	return s.m.Keys()
}

// Seed returns the seed keying this set.
func (s *Set[E]) Seed() sumhash.Seed {
	return s.m.Seed()
}

// Hasher exposes the set's hashing context.
func (s *Set[E]) Hasher() sumhash.BuildHasher {
	return s.m.Hasher()
}

func (s *Set[E]) emptyLike() *Set[E] {
	opts := hashmap.DefaultOptions
	opts.Seed = s.Seed()
	out, _ := NewWith[E](opts)
	return out
}

// Union returns a new set holding the members of both sets, keyed with
// the receiver's seed.
func (s *Set[E]) Union(other *Set[E]) *Set[E] {
	out := s.emptyLike()
	for member := range s.All() {
		out.Add(member)
	}
	for member := range other.All() {
		out.Add(member)
	}
	return out
}

// Intersect returns a new set holding the members present in both sets,
// keyed with the receiver's seed.
func (s *Set[E]) Intersect(other *Set[E]) *Set[E] {
	out := s.emptyLike()
	for member := range s.All() {
		if other.Contains(member) {
			out.Add(member)
		}
	}
	return out
}

// Diff returns a new set holding the receiver's members that are absent
// from other, keyed with the receiver's seed.
func (s *Set[E]) Diff(other *Set[E]) *Set[E] {
	out := s.emptyLike()
	for member := range s.All() {
		if !other.Contains(member) {
			out.Add(member)
		}
	}
	return out
}

// Equal reports whether both sets hold the same members. Seeds and
// iteration orders play no part.
func (s *Set[E]) Equal(other *Set[E]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for member := range s.All() {
		if !other.Contains(member) {
			return false
		}
	}
	return true
}

// Hashed wraps the set for order-independent hashing with its own seed.
func (s *Set[E]) Hashed() sumhash.Hashed[E, *Set[E]] {
	return sumhash.New[E](s)
}

var _ sumhash.ProvidingCollection[sumhash.Int] = (*Set[sumhash.Int])(nil)
