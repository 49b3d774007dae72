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

package wire

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
)

func TestWire(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Wire Suite")
}

var _ = Describe("wire", func() {
	Context("permutation encoding, D<=255", func() {
		It("round-trips", func() {
			p := permutation.New(48)
			p.Set(1, 48)
			p.Set(48, 1)
			repr := EncodePermutation(p)
			Expect(len(repr)).Should(Equal(48))
			got, err := DecodePermutation(48, repr)
			Expect(err).Should(BeNil())
			Expect(got.Equal(p)).Should(BeTrue())
		})

		It("rejects a non-bijective repr", func() {
			repr := make([]byte, 3)
			repr[0], repr[1], repr[2] = 1, 1, 3
			_, err := DecodePermutation(3, repr)
			Expect(err).Should(Equal(ErrMalformedPermutation))
		})
	})

	Context("permutation encoding, D>255", func() {
		It("round-trips a 288-domain permutation", func() {
			p := permutation.New(288)
			p.Set(1, 288)
			p.Set(288, 1)
			repr := EncodePermutation(p)
			Expect(len(repr)).Should(Equal(576))
			got, err := DecodePermutation(288, repr)
			Expect(err).Should(BeNil())
			Expect(got.Equal(p)).Should(BeTrue())
		})
	})

	Context("IndexWidth", func() {
		It("picks 1 byte for small counts", func() {
			Expect(IndexWidth(6, 24)).Should(Equal(1))
		})

		It("picks 2 bytes when a count exceeds 256", func() {
			Expect(IndexWidth(9240, 9240)).Should(Equal(2))
		})

		It("picks 3 bytes when a count exceeds 65536", func() {
			Expect(IndexWidth(360360, 360360)).Should(Equal(3))
		})
	})

	Context("Answer", func() {
		It("round-trips q==0", func() {
			sigma0 := permutation.New(48)
			ans := &Answer{Q: 0, Tau: 5, Sigma0: sigma0}
			for i := range ans.KStar {
				ans.KStar[i] = byte(i)
			}
			enc := EncodeAnswer(ans, 6, 24)
			Expect(len(enc)).Should(Equal(AnswerSize(48, 6, 24, 0)))

			dec, err := DecodeAnswer(48, 6, 24, 0, enc)
			Expect(err).Should(BeNil())
			Expect(dec.Tau).Should(Equal(ans.Tau))
			Expect(dec.Sigma0.Equal(sigma0)).Should(BeTrue())
			Expect(dec.KStar).Should(Equal(ans.KStar))
		})

		It("round-trips q!=0", func() {
			sigmaQ := permutation.New(48)
			ans := &Answer{Q: 3, F: 2, SigmaQ: sigmaQ}
			enc := EncodeAnswer(ans, 6, 24)
			Expect(len(enc)).Should(Equal(AnswerSize(48, 6, 24, 3)))

			dec, err := DecodeAnswer(48, 6, 24, 3, enc)
			Expect(err).Should(BeNil())
			Expect(dec.F).Should(Equal(ans.F))
			Expect(dec.SigmaQ.Equal(sigmaQ)).Should(BeTrue())
		})

		It("rejects an out-of-range tau", func() {
			sigma0 := permutation.New(48)
			ans := &Answer{Q: 0, Tau: 23, Sigma0: sigma0}
			enc := EncodeAnswer(ans, 6, 24)
			_, err := DecodeAnswer(48, 6, 24, 0, enc)
			Expect(err).Should(BeNil())

			ans.Tau = 24
			enc = EncodeAnswer(ans, 6, 24)
			_, err = DecodeAnswer(48, 6, 24, 0, enc)
			Expect(err).Should(Equal(ErrIndexOutOfRange))
		})
	})
})
