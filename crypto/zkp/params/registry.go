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

import "fmt"

// ErrUnknownPreset is returned by ByName for a name not in the registry.
var ErrUnknownPreset = fmt.Errorf("params: unknown preset")

// ByName looks up one of the six preset instances by its configuration
// name. Symmetric-group presets are built lazily on first lookup.
func ByName(name string) (*Preset, error) {
	switch name {
	case "3x3x3":
		return Cube333, nil
	case "5x5x5":
		return Cube555(), nil
	case "s41":
		return S41(), nil
	case "s41*":
		return S41Ast(), nil
	case "s43*":
		return S43Ast(), nil
	case "s53*":
		return S53Ast(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Names lists every registered preset name, in canonical preset order.
func Names() []string {
	return []string{"3x3x3", "5x5x5", "s41", "s41*", "s43*", "s53*"}
}
