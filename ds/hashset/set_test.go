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

package hashset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sumhash "github.com/A248/hash-that-set"
	"github.com/A248/hash-that-set/ds/hashmap"
)

func TestSet_Add(t *testing.T) {
	s := New[sumhash.String]()

	s.Add("hi", "hello")
	s.Add("hi")

	require.Equal(t, 2, s.Len())
	require.True(t, s.ContainsAll(sumhash.String("hi"), sumhash.String("hello")))
	require.False(t, s.Contains(sumhash.String("good bye")))
}

func TestSet_Remove(t *testing.T) {
	s := Of[sumhash.String]("hi", "hello", "good bye")

	require.NoError(t, s.Remove(sumhash.String("hi")))
	require.NoError(t, s.Remove(sumhash.String("hello"), sumhash.String("good bye")))
	require.Equal(t, 0, s.Len())

	err := s.Remove(sumhash.String("hi"))
	require.True(t, errors.Is(err, ErrMemberNotFound))

	require.ErrorIs(t, s.Remove(), ErrMemberEmpty)
}

func TestSet_RemoveLeavesSetUnchangedOnError(t *testing.T) {
	s := Of[sumhash.Int](1, 2, 3)

	err := s.Remove(sumhash.Int(1), sumhash.Int(99))
	require.True(t, errors.Is(err, ErrMemberNotFound))
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(sumhash.Int(1)))
}

func TestSet_Union(t *testing.T) {
	a := Of[sumhash.Int](1, 2)
	b := Of[sumhash.Int](2, 3)

	u := a.Union(b)
	require.Equal(t, 3, u.Len())
	require.True(t, u.ContainsAll(sumhash.Int(1), sumhash.Int(2), sumhash.Int(3)))
	require.Equal(t, a.Seed(), u.Seed())
}

func TestSet_Intersect(t *testing.T) {
	a := Of[sumhash.Int](1, 2, 3)
	b := Of[sumhash.Int](2, 3, 4)

	i := a.Intersect(b)
	require.Equal(t, 2, i.Len())
	require.True(t, i.ContainsAll(sumhash.Int(2), sumhash.Int(3)))
	require.False(t, i.Contains(sumhash.Int(1)))
}

func TestSet_Diff(t *testing.T) {
	a := Of[sumhash.Int](1, 2, 3)
	b := Of[sumhash.Int](2, 3, 4)

	d := a.Diff(b)
	require.Equal(t, 1, d.Len())
	require.True(t, d.Contains(sumhash.Int(1)))
}

func TestSet_Equal(t *testing.T) {
	a := Of[sumhash.Int](1, 2, 3)
	b := Of[sumhash.Int](3, 2, 1)

	require.True(t, a.Equal(b))

	require.NoError(t, b.Remove(sumhash.Int(2)))
	require.False(t, a.Equal(b))
}

func TestSet_NewWithInvalidOptions(t *testing.T) {
	_, err := NewWith[sumhash.Int](hashmap.Options{InitialCapacity: -1, MaxLoadFactor: 0.5})
	require.True(t, errors.Is(err, hashmap.ErrCapacity))
}

func TestSet_All(t *testing.T) {
	s := Of[sumhash.Int](1, 2, 3)

	seen := map[sumhash.Int]bool{}
	for member := range s.All() {
		seen[member] = true
	}
	require.Len(t, seen, 3)
}
