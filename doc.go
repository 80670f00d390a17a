/*
Package sumhash computes hashes of collections in an iteration
order-independent fashion. It can be used to hash a hash map or hash set:
two collections holding the same elements produce the same digest no
matter what order iteration yields them in.

The combiner hashes every element with a fresh Hasher and adds the
per-element digests together modulo 2^64. Addition is commutative, so the
final sum does not depend on iteration order. The per-element Hasher comes
from a BuildHasher context: either the fixed default algorithm, or a
context borrowed from the collection itself so that keyed (seeded)
collections hash their elements with the exact configuration they use
internally.

A collection is anything satisfying Collection, i.e. anything whose
elements can be iterated with All. The Hashed and HashedAny wrappers adapt
a collection into a Hashable value so it can itself be stored as an
element of another hashed collection. Ready-made context-providing
collections live in the ds/hashmap and ds/hashset packages.
*/
package sumhash
