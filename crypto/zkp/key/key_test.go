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

package key

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
)

func TestKey(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Key Suite")
}

var _ = Describe("key", func() {
	preset := params.Cube333

	It("pairs a generated key with its own public key", func() {
		priv, err := Generate(preset)
		Expect(err).Should(BeNil())
		pub, err := ComputePublicKey(priv)
		Expect(err).Should(BeNil())

		ok, err := IsKeyPair(priv, pub)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeTrue())
	})

	It("does not pair with an independently generated key", func() {
		priv1, err := Generate(preset)
		Expect(err).Should(BeNil())
		priv2, err := Generate(preset)
		Expect(err).Should(BeNil())
		pub2, err := ComputePublicKey(priv2)
		Expect(err).Should(BeNil())

		ok, err := IsKeyPair(priv1, pub2)
		Expect(err).Should(BeNil())
		Expect(ok).Should(BeFalse())
	})

	It("round-trips export/import", func() {
		priv, err := Generate(preset)
		Expect(err).Should(BeNil())
		pub, err := ComputePublicKey(priv)
		Expect(err).Should(BeNil())

		encoded := ExportPublicKey(pub)
		decoded, err := ImportPublicKey(preset, encoded)
		Expect(err).Should(BeNil())
		Expect(decoded.X0.Equal(pub.X0)).Should(BeTrue())
	})

	It("rejects a malformed import", func() {
		bad := make([]byte, preset.Domain)
		bad[0], bad[1] = 1, 1
		_, err := ImportPublicKey(preset, bad)
		Expect(err).Should(Equal(ErrInvalidPublicKey))
	})

	It("wipes the private key on release", func() {
		priv, err := Generate(preset)
		Expect(err).Should(BeNil())
		priv.Release()
		for j := uint32(0); j < preset.D; j++ {
			Expect(priv.Index(j)).Should(BeEquivalentTo(0))
		}
	})
})
