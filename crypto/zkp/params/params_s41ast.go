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
	s41AstDomain = 41
	s41AstAlpha  = 30030
	s41AstHOrder = 30030
	s41AstD      = 11
)

var s41AstHGenerator = []uint32{
	33, 16, 28, 39, 10, 34, 17, 11, 4, 13, 25, 32, 5, 7, 23, 14, 38, 35, 24, 21,
	3, 18, 30, 36, 22, 8, 40, 19, 31, 2, 37, 15, 26, 6, 41, 20, 1, 12, 27,
	9, 29,
}

var s41AstF1Generator = []uint32{
	4, 8, 5, 36, 20, 39, 27, 28, 32, 15, 10, 25, 24, 1, 3, 13, 33, 30, 7, 34,
	17, 21, 16, 29, 41, 35, 2, 26, 22, 18, 14, 40, 38, 11, 9, 31, 23, 37,
	19, 6, 12,
}

var s41AstLazy = &lazyPreset{build: func() *Preset {
	return buildSymmetricPreset("S41*", s41AstDomain, s41AstHOrder, s41AstAlpha, s41AstD, s41AstHGenerator, s41AstF1Generator)
}}

// S41Ast returns the S41* preset, building its F and H tables on first
// call and reusing them afterwards.
func S41Ast() *Preset { return s41AstLazy.get() }
