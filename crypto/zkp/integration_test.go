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

// Package zkp_test exercises full prover/verifier round trips across
// every preset, the way the reference implementation's own
// conformance suite does: many honest rounds in a row, driving the
// impersonation bound toward zero, plus the two adversarial scenarios
// (a tampered commitment byte, a mismatched challenge).
package zkp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/key"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/prover"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/verifier"
)

// runHonestRounds drives n honest rounds between a fresh prover and
// verifier pair for preset, asserting every one verifies, and returns
// the verifier for further inspection.
func runHonestRounds(t *testing.T, preset *params.Preset, n int) *verifier.Verifier {
	t.Helper()

	priv, err := key.Generate(preset)
	require.NoError(t, err)
	pub, err := key.ComputePublicKey(priv)
	require.NoError(t, err)

	p := prover.New(priv)
	v := verifier.New(pub)

	for i := 0; i < n; i++ {
		commitments, err := p.BeginRound()
		require.NoError(t, err)
		q, err := v.ChooseQuestion(commitments)
		require.NoError(t, err)
		ans, err := p.GetAnswer(q)
		require.NoError(t, err)
		ok, err := v.Verify(ans)
		require.NoError(t, err)
		require.True(t, ok, "round %d did not verify", i)
	}
	return v
}

func TestConformanceScenarios(t *testing.T) {
	const boundBits = 30 // all scenarios require probability < 2^-30

	cases := []struct {
		name   string
		preset func() *params.Preset
		rounds int
	}{
		{"S1_3x3x3", func() *params.Preset { return params.Cube333 }, 510},
		{"S2_5x5x5", params.Cube555, 884},
		{"S3_S41", params.S41, 260},
		{"S4_S41ast", params.S41Ast, 239},
		{"S5_S43ast", params.S43Ast, 219},
		{"S6_S53ast", params.S53Ast, 260},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			preset := tc.preset()
			v := runHonestRounds(t, preset, tc.rounds)
			assert.EqualValues(t, tc.rounds, v.SuccessfulRounds())
			assert.Less(t, v.ImpersonationProbability(), math.Pow(2, -boundBits))
		})
	}
}

func TestS9_TamperedCommitmentIsRejected(t *testing.T) {
	preset := params.Cube333
	priv, err := key.Generate(preset)
	require.NoError(t, err)
	pub, err := key.ComputePublicKey(priv)
	require.NoError(t, err)

	p := prover.New(priv)
	v := verifier.New(pub)

	commitments, err := p.BeginRound()
	require.NoError(t, err)
	tampered := append([]byte(nil), commitments...)

	q, err := v.ChooseQuestion(tampered)
	require.NoError(t, err)
	// Flip a byte inside the one commitment slot challenge q is
	// guaranteed to check: slot 0 for q==0, slot q otherwise.
	tampered[q*32] ^= 0xff
	ans, err := p.GetAnswer(q)
	require.NoError(t, err)
	ok, err := v.Verify(ans)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.EqualValues(t, 0, v.SuccessfulRounds())
}

func TestS10_WrongChallengeIsRejected(t *testing.T) {
	preset := params.Cube333
	priv, err := key.Generate(preset)
	require.NoError(t, err)
	pub, err := key.ComputePublicKey(priv)
	require.NoError(t, err)

	p := prover.New(priv)
	v := verifier.New(pub)

	commitments, err := p.BeginRound()
	require.NoError(t, err)
	q, err := v.ChooseQuestion(commitments)
	require.NoError(t, err)

	wrong := q + 1
	if wrong > preset.D {
		wrong = 0
	}
	ans, err := p.GetAnswer(wrong)
	require.NoError(t, err)

	_, err = v.Verify(ans)
	assert.ErrorIs(t, err, verifier.ErrChallengeMismatch)
	assert.EqualValues(t, 0, v.SuccessfulRounds())
}

func TestKeyPairRejectsImpostor(t *testing.T) {
	preset := params.Cube333
	priv1, err := key.Generate(preset)
	require.NoError(t, err)
	priv2, err := key.Generate(preset)
	require.NoError(t, err)
	pub2, err := key.ComputePublicKey(priv2)
	require.NoError(t, err)

	p := prover.New(priv1)
	v := verifier.New(pub2)

	// A q!=0 round never consults the public key, so a prover holding a
	// different private key passes it. Run rounds until the verifier
	// issues q=0, which ties the commitments to pub2 and must fail.
	for i := 0; i < 1000; i++ {
		commitments, err := p.BeginRound()
		require.NoError(t, err)
		q, err := v.ChooseQuestion(commitments)
		require.NoError(t, err)
		ans, err := p.GetAnswer(q)
		require.NoError(t, err)
		ok, err := v.Verify(ans)
		require.NoError(t, err)
		if q == 0 {
			assert.False(t, ok)
			return
		}
	}
	t.Fatal("verifier never issued q=0")
}
