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
	"encoding/binary"
	"io"

	"golang.org/x/exp/constraints"
)

// Hashable is implemented by values that can feed their full
// representation into a Hasher. Composite values must write their parts
// with the prefix-free encodings below so that distinct values never
// produce identical byte streams.
type Hashable interface {
	HashInto(h Hasher)
}

// WriteInt writes an integer of any width into h as a fixed 8-byte
// little-endian block. Signed values are sign-extended first, so Int(-3)
// hashes the same regardless of the source integer width.
func WriteInt[T constraints.Integer](h Hasher, v T) {
	WriteUint64(h, uint64(int64(v)))
}

// WriteUint64 writes v into h as 8 little-endian bytes.
func WriteUint64(h Hasher, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// WriteBytes writes a length prefix followed by b, keeping concatenated
// variable-width values unambiguous.
func WriteBytes(h Hasher, b []byte) {
	WriteInt(h, len(b))
	h.Write(b)
}

// WriteString writes a length prefix followed by the bytes of s.
func WriteString(h Hasher, s string) {
	WriteInt(h, len(s))
	io.WriteString(h, s)
}

// HashOf hashes a single value with a fresh Hasher from build and returns
// the digest.
func HashOf(v Hashable, build BuildHasher) uint64 {
	h := build.NewHasher()
	v.HashInto(h)
	return h.Sum64()
}

// Bool is a hashable bool.
type Bool bool

// HashInto writes one byte, 0 or 1.
func (b Bool) HashInto(h Hasher) {
	if b {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

// Int is a hashable signed integer.
type Int int64

func (i Int) HashInto(h Hasher) { WriteInt(h, int64(i)) }

// Uint is a hashable unsigned integer.
type Uint uint64

func (u Uint) HashInto(h Hasher) { WriteUint64(h, uint64(u)) }

// String is a hashable string.
type String string

func (s String) HashInto(h Hasher) { WriteString(h, string(s)) }

// Bytes is a hashable byte slice. Unlike the other adapters it is not
// comparable, so it cannot key the ds collections directly.
type Bytes []byte

func (b Bytes) HashInto(h Hasher) { WriteBytes(h, b) }

// Pair is a hashable 2-tuple. It is comparable whenever both field types
// are, which makes Pair values usable as hash set elements. Its byte
// stream is the first field followed by the second, the same stream a
// map entry with that key and value produces.
type Pair[A, B Hashable] struct {
	First  A
	Second B
}

// PairOf returns the pair (a, b).
func PairOf[A, B Hashable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) HashInto(h Hasher) {
	p.First.HashInto(h)
	p.Second.HashInto(h)
}

var (
	_ Hashable = Bool(false)
	_ Hashable = Int(0)
	_ Hashable = Uint(0)
	_ Hashable = String("")
	_ Hashable = Bytes(nil)
	_ Hashable = Pair[Int, String]{}
)
