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
	s41Domain = 41
	s41Alpha  = 9240
	s41HOrder = 9240
	s41D      = 12
)

var s41HGenerator = []uint32{
	14, 2, 36, 23, 13, 7, 10, 24, 8, 6, 9, 40, 30, 39, 38, 25, 26, 37, 31, 34,
	28, 29, 20, 15, 17, 35, 11, 12, 22, 33, 18, 21, 5, 16, 3, 4, 1, 41, 19, 32,
	27,
}

var s41F1Generator = []uint32{
	11, 20, 14, 28, 27, 17, 29, 23, 30, 40, 31, 4, 26, 5, 38, 37, 34, 1, 10, 41,
	18, 12, 2, 22, 24, 8, 32, 3, 36, 9, 6, 13, 33, 25, 21, 7, 39, 16, 35, 15,
	19,
}

var s41Lazy = &lazyPreset{build: func() *Preset {
	return buildSymmetricPreset("S41", s41Domain, s41HOrder, s41Alpha, s41D, s41HGenerator, s41F1Generator)
}}

// S41 returns the S41 preset, building its F and H tables on first
// call and reusing them afterwards.
func S41() *Preset { return s41Lazy.get() }
