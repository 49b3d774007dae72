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

// Package key implements private/public key generation, the key-pair
// relation, and public key import/export.
package key

import (
	"errors"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/rng"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/wire"
)

// ErrInvalidPublicKey is returned when imported bytes do not decode to
// a valid permutation on the preset's domain.
var ErrInvalidPublicKey = errors.New("key: invalid public key encoding")

// PrivateKey is the secret factorization x = F[indices[0]] . ... .
// F[indices[d-1]]. The index slice is the only secret material and
// MUST be wiped with Release before the key is discarded.
type PrivateKey struct {
	Preset  *params.Preset
	indices []uint32
}

// PublicKey is the public group element X0 = x^-1 corresponding to a
// PrivateKey.
type PublicKey struct {
	Preset *params.Preset
	X0     *permutation.Permutation
}

// Generate samples a fresh private key for preset: d indices, each
// drawn uniformly from {0,...,alpha-1} via rejection sampling.
func Generate(preset *params.Preset) (*PrivateKey, error) {
	indices := make([]uint32, preset.D)
	fCount := preset.F.Count()
	for j := range indices {
		idx, err := rng.UintBelow(fCount)
		if err != nil {
			return nil, err
		}
		indices[j] = idx
	}
	return &PrivateKey{Preset: preset, indices: indices}, nil
}

// Index returns the j-th secret generator index, 0 <= j < preset.D.
func (priv *PrivateKey) Index(j uint32) uint32 {
	return priv.indices[j]
}

// Release securely wipes the private key's index array. The key must
// not be used again afterward.
func (priv *PrivateKey) Release() {
	for i := range priv.indices {
		priv.indices[i] = 0
	}
}

// productOfGenerators composes F[indices[d-1]] . ... . F[indices[0]]
// starting from the identity, i.e. the indices are consumed back to
// front. This is the orientation spec.md §3's data model gives for x0
// (x₀ = (F[i_d] ∘ ... ∘ F[i₁])⁻¹, read with the spec's own "p ← p∘f"
// composition convention from §4.1) and the only one under which the
// prover's σ_j telescoping recurrence (§4.6) and the verifier's q=0
// check (§4.7) resolve to the same permutation.
func productOfGenerators(preset *params.Preset, indices []uint32) (*permutation.Permutation, error) {
	acc := permutation.New(preset.Domain)
	for k := len(indices) - 1; k >= 0; k-- {
		if err := preset.F.ComposeIndexed(acc, indices[k]); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// ComputePublicKey derives the public key matching priv: compose
// F[i_d], ..., F[i_1] starting from identity, then invert the
// accumulator. This orientation is the contract the verifier's
// telescoping check relies on.
func ComputePublicKey(priv *PrivateKey) (*PublicKey, error) {
	acc, err := productOfGenerators(priv.Preset, priv.indices)
	if err != nil {
		return nil, err
	}
	acc.Invert()
	return &PublicKey{Preset: priv.Preset, X0: acc}, nil
}

// IsKeyPair reports whether pub.X0 . F[i_d] . ... . F[i_1] is the
// identity, i.e. whether priv and pub form a matching key pair. The
// same back-to-front index order as ComputePublicKey is required: it is
// the inverse of the product pub.X0 was built from.
func IsKeyPair(priv *PrivateKey, pub *PublicKey) (bool, error) {
	acc := pub.X0.Clone()
	for k := len(priv.indices) - 1; k >= 0; k-- {
		if err := priv.Preset.F.ComposeIndexed(acc, priv.indices[k]); err != nil {
			return false, err
		}
	}
	identity := permutation.New(priv.Preset.Domain)
	return acc.Equal(identity), nil
}

// ExportPublicKey encodes pub.X0 into its byte-exact wire form.
func ExportPublicKey(pub *PublicKey) []byte {
	return wire.EncodePermutation(pub.X0)
}

// ImportPublicKey decodes data as a public key for preset, rejecting
// malformed or non-bijective input.
func ImportPublicKey(preset *params.Preset, data []byte) (*PublicKey, error) {
	x0, err := wire.DecodePermutation(preset.Domain, data)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{Preset: preset, X0: x0}, nil
}
