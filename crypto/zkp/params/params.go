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

// Package params provides the six parameter presets: the 3x3x3 cube
// preset, built from fixed F/H tables, and the 5x5x5 and
// S41/S41*/S43*/S53* presets, whose F and H arrays are generated lazily
// from a single H generator and a single F base generator the first time
// the preset is used. The 5x5x5 generators are synthetic, not reference
// move tables.
package params

import (
	"errors"
	"fmt"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/rng"
	"github.com/getamis/zkp-volte-patarin-nachef/logger"
)

// ErrLookupFailed reports a violation of the structural invariant:
// CheckClosureInvariant returns it (wrapped) when some H[tau]^-1 F[i]
// H[tau] is missing from F, and the prover panics with it when that
// lookup fails while answering. A failure here indicates corrupted
// parameters, never ordinary prover input.
var ErrLookupFailed = errors.New("params: structural invariant violated")

// GPrimeSampler draws a random element of G' for the given preset.
type GPrimeSampler func(p *Preset) (*permutation.Permutation, error)

// Preset bundles one parameter instance: the domain D, the soundness
// parameter d, the F and H permutation families, and the G' sampler
// variant the preset was designed around.
type Preset struct {
	Name    string
	Domain  uint32
	D       uint32
	F       *permutation.Array
	H       *permutation.Array
	sampler GPrimeSampler
}

// SampleGPrime draws a fresh element of G' using the preset's sampler
// variant.
func (p *Preset) SampleGPrime() (*permutation.Permutation, error) {
	return p.sampler(p)
}

// CheckClosureInvariant verifies, for every (tau, i) pair, that
// H[tau]^-1 F[i] H[tau] appears somewhere in F. This is the structural
// invariant every preset construction must satisfy; it is expensive
// (|H|*|F| lookups) and is meant for tests and
// one-time validation of a newly built preset, not the hot path.
func (p *Preset) CheckClosureInvariant() error {
	acc := permutation.New(p.Domain)
	h := permutation.New(p.Domain)
	for tau := uint32(0); tau < p.H.Count(); tau++ {
		if err := p.H.CopyFromArray(h, tau); err != nil {
			return err
		}
		hInv := h.Clone()
		hInv.Invert()
		for i := uint32(0); i < p.F.Count(); i++ {
			if err := acc.CopyFrom(hInv); err != nil {
				return err
			}
			if err := p.F.ComposeIndexed(acc, i); err != nil {
				return err
			}
			if err := acc.Compose(h); err != nil {
				return err
			}
			if _, ok := p.F.FindIndex(acc); !ok {
				logger.Logger().Warn("closure invariant violated", "preset", p.Name, "tau", tau, "i", i)
				return fmt.Errorf("%w: preset %q, tau=%d i=%d", ErrLookupFailed, p.Name, tau, i)
			}
		}
	}
	return nil
}

// V1Sampler implements the "F and H mixing walk" variant used by the
// cube presets: starting from identity, it takes 2d steps,
// each composing with a uniformly chosen element of H union F, with H
// and F weighted so both families are equally likely to be chosen on
// any given step.
func V1Sampler(p *Preset) (*permutation.Permutation, error) {
	hCount := p.H.Count()
	fCount := p.F.Count()
	r := hCount / fCount
	if r == 0 {
		r = 1
	}
	span := hCount + r*fCount

	acc := permutation.New(p.Domain)
	steps := 2 * p.D
	for s := uint32(0); s < steps; s++ {
		j, err := rng.UintBelow(span)
		if err != nil {
			return nil, err
		}
		if j < hCount {
			if err := p.H.ComposeIndexed(acc, j); err != nil {
				return nil, err
			}
		} else {
			fIdx := (j - hCount) % fCount
			if err := p.F.ComposeIndexed(acc, fIdx); err != nil {
				return nil, err
			}
		}
	}
	return acc, nil
}

// V2Sampler implements the "uniform symmetric group" variant used by
// the S41/S41*/S43*/S53* presets: a Fisher-Yates shuffle
// over {1,...,D} producing a uniform element of the full symmetric
// group S_D.
func V2Sampler(p *Preset) (*permutation.Permutation, error) {
	acc := permutation.New(p.Domain)
	for i := p.Domain; i >= 2; i-- {
		j, err := rng.UintBelow(i)
		if err != nil {
			return nil, err
		}
		j++ // UintBelow is zero-based; domain positions are one-based.
		vi, vj := acc.Get(i), acc.Get(j)
		acc.Set(i, vj)
		acc.Set(j, vi)
	}
	return acc, nil
}
