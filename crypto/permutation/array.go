// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package permutation

// Array is an immutable ordered collection of count permutations sharing a
// common domain, stored interleaved: element (j,i) — the image of the
// one-based domain position i under the j-th (zero-based) permutation —
// lives at flat index count*(i-1)+j. That layout makes array-indexed
// composition (ComposeIndexed, ComposeIndexedInverse) cache-friendly,
// since all count images of a given domain position sit contiguously.
type Array struct {
	base   []uint32
	domain uint32
	count  uint32
}

// NewArray allocates a zeroed interleaved array for count permutations of
// the given domain. Callers populate it with StoreInterleaved before first
// use; an Array is not safe to read until every slot has been written.
func NewArray(domain, count uint32) *Array {
	return &Array{
		base:   make([]uint32, uint64(domain)*uint64(count)),
		domain: domain,
		count:  count,
	}
}

// NewArrayFromInterleaved wraps pre-flattened interleaved data (element
// (j,i) at flat index count*(i-1)+j, as produced by the reference
// parameter tables) without copying. Callers must not mutate data
// afterwards.
func NewArrayFromInterleaved(domain, count uint32, data []uint32) *Array {
	return &Array{base: data, domain: domain, count: count}
}

// NewArrayFromPermutations builds an interleaved Array out of a slice of
// fully-formed permutations, all of which must share a domain.
func NewArrayFromPermutations(perms []*Permutation) (*Array, error) {
	if len(perms) == 0 {
		return &Array{}, nil
	}
	domain := perms[0].domain
	arr := NewArray(domain, uint32(len(perms)))
	for j, p := range perms {
		if p.domain != domain {
			return nil, ErrDomainMismatch
		}
		if err := arr.StoreInterleaved(uint32(j), p); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

// Domain returns the common domain of every permutation in the array.
func (a *Array) Domain() uint32 { return a.domain }

// Count returns the number of permutations in the array.
func (a *Array) Count() uint32 { return a.count }

// Get returns the image of the one-based domain position i under the
// zero-based perm index j, without materializing the whole permutation.
func (a *Array) Get(j, i uint32) uint32 {
	return a.base[uint64(a.count)*uint64(i-1)+uint64(j)]
}

// StoreInterleaved writes src into slot j of the array.
func (a *Array) StoreInterleaved(j uint32, src *Permutation) error {
	if src.domain != a.domain {
		return ErrDomainMismatch
	}
	for i := uint32(1); i <= src.domain; i++ {
		a.base[uint64(a.count)*uint64(i-1)+uint64(j)] = src.Get(i)
	}
	return nil
}

// CopyFromArray overwrites dst with the permutation stored at slot j.
func (a *Array) CopyFromArray(dst *Permutation, j uint32) error {
	if dst.domain != a.domain {
		return ErrDomainMismatch
	}
	for i := uint32(1); i <= dst.domain; i++ {
		dst.Set(i, a.Get(j, i))
	}
	return nil
}

// ComposeIndexed sets p ← p∘A[j], reading directly from the interleaved
// array without materializing A[j].
func (a *Array) ComposeIndexed(p *Permutation, j uint32) error {
	if p.domain == 0 || p.domain != a.domain {
		return ErrDomainMismatch
	}
	t := make([]uint32, p.domain)
	for i := uint32(1); i <= p.domain; i++ {
		t[i-1] = a.Get(j, p.Get(i))
	}
	copy(p.mapping, t)
	return nil
}

// ComposeIndexedInverse sets p ← p∘A[j]⁻¹.
func (a *Array) ComposeIndexedInverse(p *Permutation, j uint32) error {
	t := New(a.domain)
	if err := a.CopyFromArray(t, j); err != nil {
		return err
	}
	t.Invert()
	return p.Compose(t)
}

// FindIndex scans the array linearly for a permutation equal to p, ties
// broken by lowest index. It reports whether a match was found.
func (a *Array) FindIndex(p *Permutation) (uint32, bool) {
	if p.domain != a.domain {
		return 0, false
	}
	for j := uint32(0); j < a.count; j++ {
		match := true
		for i := uint32(1); i <= a.domain; i++ {
			if p.Get(i) != a.Get(j, i) {
				match = false
				break
			}
		}
		if match {
			return j, true
		}
	}
	return 0, false
}
