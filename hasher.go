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
	"io"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// Hasher is a stateful accumulator: it consumes bytes and finalizes to a
// 64-bit digest. Sum64 does not reset the accumulated state, so a Hasher
// may be finalized and written to again.
type Hasher interface {
	io.Writer
	Sum64() uint64
}

// BuildHasher constructs fresh Hashers that all share one configuration,
// for example one seed. One Hasher is built per hashed element.
type BuildHasher interface {
	NewHasher() Hasher
}

// BuildHasherFunc adapts a function to the BuildHasher interface.
type BuildHasherFunc func() Hasher

// NewHasher calls f.
func (f BuildHasherFunc) NewHasher() Hasher { return f() }

// DefaultBuild is the fixed default hashing context. It builds unseeded
// xxhash hashers, so its digests are stable across processes and runs.
var DefaultBuild BuildHasher = BuildHasherFunc(func() Hasher { return xxhash.New() })

// Seed is a keyed hashing context: every Hasher it builds runs xxh3 with
// the same seed. Distinct Seed values make distinct hash functions, which
// lets a collection keep its bucket placement unpredictable while still
// exposing the configuration for element hashing.
type Seed uint64

// NewSeed returns a randomly drawn Seed.
func NewSeed() Seed {
	return Seed(rand.Uint64())
}

// NewHasher builds a hasher keyed with s.
func (s Seed) NewHasher() Hasher {
	return xxh3.NewSeed(uint64(s))
}

// HasherProvider is implemented by collections that expose their own
// hashing context. A hash map or hash set keyed with a seed satisfies it
// by returning that seed, so the borrowed-context strategy hashes
// elements with the identical configuration the collection uses for its
// own lookups.
type HasherProvider interface {
	Hasher() BuildHasher
}

var (
	_ BuildHasher = Seed(0)
	_ Hasher      = xxhash.New()
	_ Hasher      = xxh3.New()
)
