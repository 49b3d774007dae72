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

package rng

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestRng(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rng Suite")
}

var _ = Describe("rng", func() {
	Context("FillRandom", func() {
		It("fills the whole buffer", func() {
			buf := make([]byte, 64)
			Expect(FillRandom(buf)).Should(Succeed())
			allZero := true
			for _, b := range buf {
				if b != 0 {
					allZero = false
					break
				}
			}
			Expect(allZero).Should(BeFalse())
		})
	})

	Context("UintBelow", func() {
		It("stays within [0, n) across many draws", func() {
			const n = 7
			counts := make([]int, n)
			for i := 0; i < 5000; i++ {
				v, err := UintBelow(n)
				Expect(err).Should(BeNil())
				Expect(v).Should(BeNumerically("<", n))
				counts[v]++
			}
			for _, c := range counts {
				Expect(c).Should(BeNumerically(">", 0))
			}
		})

		It("rejects n == 0", func() {
			_, err := UintBelow(0)
			Expect(err).ShouldNot(BeNil())
		})
	})
})
