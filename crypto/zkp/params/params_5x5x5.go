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

const (
	cube555Domain = 288
	cube555Alpha  = 12
	cube555HOrder = 48
	cube555D      = 42
	cube555Blocks = cube555Domain / cube555HOrder
)

// cube555HGenerator and cube555F1Generator stand in for the reference
// 5x5x5 move tables, which are not part of this codebase's reference
// material (see DESIGN.md). They are built, not hand-picked, from the
// same shape the S41-family presets use: h is a single permutation of
// exact order |H| (here, six disjoint 48-cycles covering the 288
// facelet positions), and f1 sends offset o of block b to offset
// 5*o mod 48 of block 5-b. Conjugating f1 by H[k] = h^k gives the map
// (b, o) -> (5-b, 5*o - 4*k mod 48), which depends only on k mod 12 =
// |F|. So F[i] is f1 conjugated by H[i] for i = 0..11, and
// H[t]^-1 F[i] H[t] = F[(i+t) mod 12], which keeps the structural
// invariant.
func cube555HGenerator() []uint32 {
	out := make([]uint32, cube555Domain)
	for i := uint32(0); i < cube555Domain; i++ {
		block := i / cube555HOrder
		offset := i % cube555HOrder
		next := (offset + 1) % cube555HOrder
		out[i] = block*cube555HOrder + next + 1
	}
	return out
}

func cube555F1Generator() []uint32 {
	out := make([]uint32, cube555Domain)
	for i := uint32(0); i < cube555Domain; i++ {
		block := i / cube555HOrder
		offset := i % cube555HOrder
		out[i] = (cube555Blocks-1-block)*cube555HOrder + (5*offset)%cube555HOrder + 1
	}
	return out
}

var cube555Lazy = &lazyPreset{build: func() *Preset {
	p := buildSymmetricPreset("5x5x5 Rubik's Cube", cube555Domain, cube555HOrder, cube555Alpha, cube555D,
		cube555HGenerator(), cube555F1Generator())
	p.sampler = V1Sampler
	return p
}}

// Cube555 returns the 5x5x5 preset, building its F and H tables on
// first call and reusing them afterwards.
func Cube555() *Preset { return cube555Lazy.get() }
