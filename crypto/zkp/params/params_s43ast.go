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
	s43AstDomain = 43
	s43AstAlpha  = 60060
	s43AstHOrder = 60060
	s43AstD      = 10
)

var s43AstHGenerator = []uint32{
	22, 26, 41, 32, 12, 30, 4, 42, 18, 13, 1, 25, 31, 11, 38, 9, 7, 40, 34, 2,
	5, 24, 35, 39, 20, 14, 23, 37, 28, 36, 33, 17, 8, 6, 27, 3, 15, 29, 21,
	10, 19, 43, 16,
}

var s43AstF1Generator = []uint32{
	13, 23, 26, 1, 3, 11, 37, 18, 38, 43, 33, 35, 27, 41, 42, 25, 19, 16, 21,
	22, 40, 14, 28, 6, 15, 4, 24, 10, 12, 34, 39, 20, 5, 8, 17, 7, 36, 31,
	9, 29, 32, 2, 30,
}

var s43AstLazy = &lazyPreset{build: func() *Preset {
	return buildSymmetricPreset("S43*", s43AstDomain, s43AstHOrder, s43AstAlpha, s43AstD, s43AstHGenerator, s43AstF1Generator)
}}

// S43Ast returns the S43* preset, building its F and H tables on first
// call and reusing them afterwards.
func S43Ast() *Preset { return s43AstLazy.get() }
