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

package commitment

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestCommitment(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Commitment Suite")
}

var _ = Describe("commitment", func() {
	It("verifies a matching tag", func() {
		var key [KeySize]byte
		for i := range key {
			key[i] = byte(i)
		}
		data := []byte("some permutation encoding")
		tag := Commit(key, data)
		Expect(Verify(key, data, tag)).Should(BeTrue())
	})

	It("rejects a flipped data byte", func() {
		var key [KeySize]byte
		data := []byte{1, 2, 3}
		tag := Commit(key, data)
		data[0] ^= 0xff
		Expect(Verify(key, data, tag)).Should(BeFalse())
	})

	It("rejects a flipped tag byte", func() {
		var key [KeySize]byte
		data := []byte{1, 2, 3}
		tag := Commit(key, data)
		tag[0] ^= 0xff
		Expect(Verify(key, data, tag)).Should(BeFalse())
	})

	It("rejects the wrong key", func() {
		var key1, key2 [KeySize]byte
		key2[0] = 1
		data := []byte{1, 2, 3}
		tag := Commit(key1, data)
		Expect(Verify(key2, data, tag)).Should(BeFalse())
	})
})
