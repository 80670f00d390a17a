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

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedColl is a minimal context-providing collection for tests.
type fixedColl struct {
	seed  Seed
	items []Int
}

func (c fixedColl) All() iter.Seq[Int] { return slices.Values(c.items) }
func (c fixedColl) Hasher() BuildHasher { return c.seed }

func sumDigest[E Hashable](seq iter.Seq[E]) uint64 {
	state := DefaultBuild.NewHasher()
	Sum(seq, state)
	return state.Sum64()
}

func TestSum_EmptyWritesZeroBlock(t *testing.T) {
	baseline := DefaultBuild.NewHasher()
	WriteUint64(baseline, 0)

	require.Equal(t, baseline.Sum64(), sumDigest(slices.Values([]Int{})))
	require.Equal(t, baseline.Sum64(), sumDigest(slices.Values([]String{})))
}

func TestSum_PermutationInvariant(t *testing.T) {
	items := []Int{4, 1, -3, 20}
	reversed := []Int{20, -3, 1, 4}
	rotated := []Int{1, -3, 20, 4}

	digest := sumDigest(slices.Values(items))
	require.Equal(t, digest, sumDigest(slices.Values(reversed)))
	require.Equal(t, digest, sumDigest(slices.Values(rotated)))
}

func TestSum_DuplicatesEachContribute(t *testing.T) {
	twice := []String{"a", "a", "b"}
	shuffled := []String{"b", "a", "a"}
	once := []String{"a", "b"}

	require.Equal(t, sumDigest(slices.Values(twice)), sumDigest(slices.Values(shuffled)))
	require.NotEqual(t, sumDigest(slices.Values(twice)), sumDigest(slices.Values(once)))
}

func TestSum_ChangedElementChangesDigest(t *testing.T) {
	require.NotEqual(t,
		sumDigest(slices.Values([]Int{1, 2, 3})),
		sumDigest(slices.Values([]Int{1, 2, 4})))
}

func TestSumWith_DefaultMatchesSum(t *testing.T) {
	items := []Int{7, 8, 9}
	coll := Seq[Int](slices.Values(items))

	state := DefaultBuild.NewHasher()
	SumWith[Int](coll, state, UseDefault[Seq[Int]]{})

	require.Equal(t, sumDigest(slices.Values(items)), state.Sum64())
}

func TestSumProvided_UsesBorrowedSeed(t *testing.T) {
	coll := fixedColl{seed: Seed(42), items: []Int{5, 6, 7}}

	var sum uint64
	for _, item := range coll.items {
		sum += HashOf(item, Seed(42))
	}
	want := DefaultBuild.NewHasher()
	WriteUint64(want, sum)

	state := DefaultBuild.NewHasher()
	SumProvided[Int](coll, state)
	require.Equal(t, want.Sum64(), state.Sum64())

	// A different seed yields a different per-element hash function.
	other := DefaultBuild.NewHasher()
	SumProvided[Int](fixedColl{seed: Seed(43), items: coll.items}, other)
	require.NotEqual(t, state.Sum64(), other.Sum64())
}

func TestSum_Deterministic(t *testing.T) {
	items := []String{"hi", "hello", "good bye"}
	digest := sumDigest(slices.Values(items))
	for i := 0; i < 3; i++ {
		require.Equal(t, digest, sumDigest(slices.Values(items)))
	}
}

func TestSeed_KeyedHashing(t *testing.T) {
	require.Equal(t, HashOf(Int(12), Seed(9)), HashOf(Int(12), Seed(9)))
	require.NotEqual(t, HashOf(Int(12), Seed(9)), HashOf(Int(12), Seed(10)))
	require.NotEqual(t, NewSeed(), NewSeed())
}
