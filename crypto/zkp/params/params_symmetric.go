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

package params

import (
	"sync"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/logger"
)

// lazyPreset computes a symmetric-group preset's F and H arrays on
// first use and caches the result; concurrent callers share one
// initialization, since the S41-family presets' one-shot setup must be
// thread-safe when shared across provers.
type lazyPreset struct {
	once   sync.Once
	preset *Preset
	build  func() *Preset
}

func (l *lazyPreset) get() *Preset {
	l.once.Do(func() {
		logger.Logger().Debug("building symmetric-group preset")
		l.preset = l.build()
		logger.Logger().Debug("symmetric-group preset built", "preset", l.preset.Name)
	})
	return l.preset
}

// fromOneBased builds a Permutation from a one-based image mapping
// exactly as the reference generator tables list them.
func fromOneBased(domain uint32, mapping []uint32) *permutation.Permutation {
	p := permutation.New(domain)
	for i, v := range mapping {
		p.Set(uint32(i+1), v)
	}
	return p
}

// buildSymmetricPreset constructs an S41-family preset: H is the cyclic
// group generated by hGen (H[j] = hGen^j for j = 0..hOrder-1); F is the
// conjugacy family {H[j]^-1 . f1Gen . H[j] : j = 0..fCount-1}. This mirrors
// the reference construction's init_dynamically_allocated routines,
// which build both tables by walking the same accumulator forward.
func buildSymmetricPreset(name string, domain, hOrder, fCount, d uint32, hGen, f1Gen []uint32) *Preset {
	h := permutation.New(domain)
	hGenPerm := fromOneBased(domain, hGen)
	hArr := permutation.NewArray(domain, hOrder)
	for exp := uint32(0); exp < hOrder; exp++ {
		if err := hArr.StoreInterleaved(exp, h); err != nil {
			panic(err)
		}
		if err := h.Compose(hGenPerm); err != nil {
			panic(err)
		}
	}

	f1 := fromOneBased(domain, f1Gen)
	fArr := permutation.NewArray(domain, fCount)
	hj := permutation.New(domain)
	acc := permutation.New(domain)
	for exp := uint32(0); exp < fCount; exp++ {
		if err := hArr.CopyFromArray(hj, exp); err != nil {
			panic(err)
		}
		hjInv := hj.Clone()
		hjInv.Invert()

		acc.Identity()
		if err := acc.Compose(hjInv); err != nil {
			panic(err)
		}
		if err := acc.Compose(f1); err != nil {
			panic(err)
		}
		if err := acc.Compose(hj); err != nil {
			panic(err)
		}
		if err := fArr.StoreInterleaved(exp, acc); err != nil {
			panic(err)
		}
	}

	return &Preset{
		Name:    name,
		Domain:  domain,
		D:       d,
		F:       fArr,
		H:       hArr,
		sampler: V2Sampler,
	}
}
