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
	s53AstDomain = 53
	s53AstAlpha  = 360360
	s53AstHOrder = 360360
	s53AstD      = 12
)

var s53AstHGenerator = []uint32{
	26, 4, 50, 14, 40, 42, 45, 28, 21, 11, 1, 3, 38, 51, 52, 31, 39, 27, 12, 48,
	33, 5, 7, 32, 19, 18, 35, 13, 24, 49, 41, 20, 34, 36, 6, 9, 17, 46, 8,
	15, 2, 10, 47, 16, 53, 37, 23, 43, 25, 30, 22, 44, 29,
}

var s53AstF1Generator = []uint32{
	52, 36, 1, 31, 8, 22, 3, 16, 27, 41, 26, 7, 34, 44, 48, 11, 19, 30, 24, 42,
	49, 39, 17, 40, 38, 37, 28, 23, 32, 51, 45, 10, 43, 33, 18, 6, 53, 5, 4,
	12, 13, 46, 47, 29, 2, 15, 14, 21, 20, 35, 50, 9, 25,
}

var s53AstLazy = &lazyPreset{build: func() *Preset {
	return buildSymmetricPreset("S53*", s53AstDomain, s53AstHOrder, s53AstAlpha, s53AstD, s53AstHGenerator, s53AstF1Generator)
}}

// S53Ast returns the S53* preset, building its F and H tables on first
// call and reusing them afterwards.
func S53Ast() *Preset { return s53AstLazy.get() }
