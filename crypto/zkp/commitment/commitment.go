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

// Package commitment implements round-commitment tags as a keyed MAC
// checked by constant-time comparison. Each tag is keyed by a fresh,
// single-use 32-byte key, so no separate salt is needed.
package commitment

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
)

// Size is the length in bytes of a single HMAC-SHA256 commitment tag.
const Size = 32

// KeySize is the length in bytes of a single commitment key.
const KeySize = 32

// Commit computes HMAC-SHA256(key, data).
func Commit(key [KeySize]byte, data []byte) [Size]byte {
	mac := hmac.New(sha256.New, key[:])
	mac.Write(data)
	var out [Size]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// Verify reports whether tag is the HMAC-SHA256 commitment of data under
// key, using a constant-time comparison.
func Verify(key [KeySize]byte, data []byte, tag [Size]byte) bool {
	got := Commit(key, data)
	return subtle.ConstantTimeCompare(got[:], tag[:]) == 1
}
