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

// Package rng provides the CSPRNG primitives the protocol consumes: bulk
// random bytes and unbiased bounded integers via rejection sampling.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
)

// ErrCSPRNGFailure is returned when the underlying CSPRNG fails. Callers
// that cannot retry or abort cleanly should treat this as fatal.
var ErrCSPRNGFailure = errors.New("rng: CSPRNG capability failed")

// FillRandom fills buf with cryptographically strong random bytes.
func FillRandom(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return ErrCSPRNGFailure
	}
	return nil
}

// UintBelow returns a uniform, unbiased random integer in {0,...,n-1}.
//
// It draws a fresh uint32 and accepts it only when it is
// <= math.MaxUint32 - (math.MaxUint32 % n) - 1, retrying otherwise; this
// rejection sampling eliminates modulo bias. The expected number of
// retries is bounded by 2 for any n in range.
func UintBelow(n uint32) (uint32, error) {
	if n == 0 {
		return 0, errors.New("rng: n must be positive")
	}
	const maxUint32 = ^uint32(0)
	limit := maxUint32 - (maxUint32 % n) - 1
	var buf [4]byte
	for {
		if err := FillRandom(buf[:]); err != nil {
			return 0, err
		}
		v := binary.LittleEndian.Uint32(buf[:])
		if v <= limit {
			return v % n, nil
		}
	}
}
