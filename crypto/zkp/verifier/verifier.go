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

// Package verifier implements the verifier side of the identification
// protocol: challenge selection, answer verification, round accounting,
// and the impersonation-probability bound.
package verifier

import (
	"errors"
	"math"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/rng"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/commitment"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/key"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/wire"
	"github.com/getamis/zkp-volte-patarin-nachef/logger"
)

// ErrInvalidState is returned when Verify is called before
// ChooseQuestion, or ChooseQuestion is called a second time before a
// Verify completes the round.
var ErrInvalidState = errors.New("verifier: invalid state for this operation")

// ErrChallengeMismatch is returned when an answer's Q does not match
// the challenge issued by the most recent ChooseQuestion.
var ErrChallengeMismatch = errors.New("verifier: answer does not match last challenge")

type state int

const (
	stateIdle state = iota
	stateChallenged
)

// Verifier is a single round-trip verifier bound to one public key. It
// is not safe for concurrent use from multiple goroutines.
type Verifier struct {
	pub             *key.PublicKey
	state           state
	lastChallenge   uint32
	successfulRounds uint64
	commitments     []byte
}

// New constructs a Verifier holding pub.
func New(pub *key.PublicKey) *Verifier {
	return &Verifier{pub: pub, state: stateIdle}
}

// ChooseQuestion samples a fresh challenge q uniformly from
// {0,...,d}, remembers the commitments block the prover produced for
// this round, and transitions to Challenged.
func (v *Verifier) ChooseQuestion(commitments []byte) (uint32, error) {
	l := logger.Logger()
	if v.state != stateIdle {
		l.Warn("choose_question called out of order", "state", v.state)
		return 0, ErrInvalidState
	}
	q, err := rng.UintBelow(v.pub.Preset.D + 1)
	if err != nil {
		return 0, err
	}
	v.lastChallenge = q
	v.commitments = commitments
	v.state = stateChallenged
	l.Debug("choose_question", "q", q)
	return q, nil
}

// Verify checks ans against the commitments recorded by ChooseQuestion.
// On success it increments the successful-round counter and
// transitions back to Idle; on failure it still transitions back to
// Idle (the round is over either way) but leaves the counter
// unchanged.
func (v *Verifier) Verify(ans *wire.Answer) (bool, error) {
	l := logger.Logger()
	if v.state != stateChallenged {
		l.Warn("verify called out of order", "state", v.state)
		return false, ErrInvalidState
	}
	defer func() { v.state = stateIdle }()

	if ans.Q != v.lastChallenge {
		l.Warn("answer does not match last challenge", "got", ans.Q, "want", v.lastChallenge)
		return false, ErrChallengeMismatch
	}

	ok, err := v.check(ans)
	if err != nil {
		return false, err
	}
	if ok {
		v.successfulRounds++
	} else {
		l.Warn("round failed to verify", "q", ans.Q)
	}
	l.Debug("verify", "q", ans.Q, "ok", ok)
	return ok, nil
}

func (v *Verifier) check(ans *wire.Answer) (bool, error) {
	preset := v.pub.Preset
	if ans.Q == 0 {
		if ans.Tau >= preset.H.Count() {
			return false, nil
		}
		if !ans.Sigma0.IsValid() {
			return false, nil
		}

		hTau := permutation.New(preset.Domain)
		if err := preset.H.CopyFromArray(hTau, ans.Tau); err != nil {
			return false, err
		}

		// sigma_d_check = sigma0 ∘ H[tau]^-1 ∘ x0 ∘ H[tau] in the p∘f
		// (apply p first) convention of permutation.Compose, the same
		// apply-order the prover's telescoping recurrence produces
		// sigma_d in (see prover.BeginRound): sigma0 first, then
		// H[tau]^-1, then x0, then H[tau] last.
		sigmaDCheck := ans.Sigma0.Clone()
		if err := preset.H.ComposeIndexedInverse(sigmaDCheck, ans.Tau); err != nil {
			return false, err
		}
		if err := sigmaDCheck.Compose(v.pub.X0); err != nil {
			return false, err
		}
		if err := preset.H.ComposeIndexed(sigmaDCheck, ans.Tau); err != nil {
			return false, err
		}

		if !commitment.Verify(ans.KStar, wire.EncodePermutation(hTau), tagAt(v.commitments, 0)) {
			return false, nil
		}
		if !commitment.Verify(ans.K0, wire.EncodePermutation(ans.Sigma0), tagAt(v.commitments, 1)) {
			return false, nil
		}
		if !commitment.Verify(ans.Kd, wire.EncodePermutation(sigmaDCheck), tagAt(v.commitments, preset.D+1)) {
			return false, nil
		}
		return true, nil
	}

	if ans.Q > preset.D {
		return false, nil
	}
	if ans.F >= preset.F.Count() {
		return false, nil
	}
	if !ans.SigmaQ.IsValid() {
		return false, nil
	}

	sigmaPrevCheck := ans.SigmaQ.Clone()
	if err := preset.F.ComposeIndexed(sigmaPrevCheck, ans.F); err != nil {
		return false, err
	}

	if !commitment.Verify(ans.KCur, wire.EncodePermutation(ans.SigmaQ), tagAt(v.commitments, ans.Q+1)) {
		return false, nil
	}
	if !commitment.Verify(ans.KPrev, wire.EncodePermutation(sigmaPrevCheck), tagAt(v.commitments, ans.Q)) {
		return false, nil
	}
	return true, nil
}

// ImportAndVerify decodes answerBytes as the wire encoding of the answer
// to the challenge issued by the most recent ChooseQuestion and verifies
// it, combining wire.DecodeAnswer and Verify for callers that received
// the answer off the wire rather than as an already-parsed *wire.Answer.
func (v *Verifier) ImportAndVerify(answerBytes []byte) (bool, error) {
	if v.state != stateChallenged {
		return false, ErrInvalidState
	}
	preset := v.pub.Preset
	ans, err := wire.DecodeAnswer(preset.Domain, preset.F.Count(), preset.H.Count(), v.lastChallenge, answerBytes)
	if err != nil {
		return false, err
	}
	return v.Verify(ans)
}

// tagAt extracts the commitment.Size-byte tag at the given position
// out of the flat commitments buffer.
func tagAt(commitments []byte, position uint32) [commitment.Size]byte {
	var out [commitment.Size]byte
	start := position * commitment.Size
	copy(out[:], commitments[start:start+commitment.Size])
	return out
}

// SuccessfulRounds returns the number of rounds this verifier has
// accepted so far.
func (v *Verifier) SuccessfulRounds() uint64 { return v.successfulRounds }

// ImpersonationProbability returns (d/(d+1))^successfulRounds, the
// probability that an impersonator with no private key would have
// survived this many rounds.
func (v *Verifier) ImpersonationProbability() float64 {
	d := float64(v.pub.Preset.D)
	base := d / (d + 1)
	return math.Pow(base, float64(v.successfulRounds))
}
