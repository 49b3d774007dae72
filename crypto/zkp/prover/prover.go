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

// Package prover implements the prover side of the identification
// protocol: round-secret generation, commitment production, and answer
// production for the three challenge variants.
package prover

import (
	"errors"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/rng"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/commitment"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/key"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/params"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/wire"
	"github.com/getamis/zkp-volte-patarin-nachef/logger"
)

// ErrInvalidState is returned when GetAnswer or BeginRound is called
// out of the order new_proof -> (begin_round -> get_answer)*.
var ErrInvalidState = errors.New("prover: invalid state for this operation")

// ErrChallengeOutOfRange is returned by GetAnswer for q > d.
var ErrChallengeOutOfRange = errors.New("prover: challenge out of range")

type state int

const (
	stateIdle state = iota
	stateCommitted
	stateAnswered
)

// Prover is a single round-trip prover bound to one private key. It is
// not safe for concurrent use from multiple goroutines.
type Prover struct {
	priv   *key.PrivateKey
	preset *params.Preset
	state  state

	tau    uint32
	sigmas []*permutation.Permutation // sigmas[j] = sigma_j, j=0..d
	keys   [][commitment.KeySize]byte // keys[0]=k_*, keys[1+j]=k_j, j=0..d

	commitments []byte // preallocated (d+2)*32-byte buffer, reused per round
}

// New constructs a Prover for priv. The commitment buffer and secret
// slices are allocated once here and reused by every subsequent round.
func New(priv *key.PrivateKey) *Prover {
	d := priv.Preset.D
	return &Prover{
		priv:        priv,
		preset:      priv.Preset,
		state:       stateIdle,
		sigmas:      make([]*permutation.Permutation, d+1),
		keys:        make([][commitment.KeySize]byte, d+2),
		commitments: make([]byte, (d+2)*commitment.Size),
	}
}

// BeginRound samples fresh round secrets, computes commitments, and
// returns the (d+2)*32-byte commitment buffer. Valid from Idle or
// Answered; any other state is a programming error.
func (p *Prover) BeginRound() ([]byte, error) {
	l := logger.Logger()
	if p.state != stateIdle && p.state != stateAnswered {
		l.Warn("begin_round called out of order", "state", p.state)
		return nil, ErrInvalidState
	}
	l.Debug("begin_round", "preset", p.preset.Name)

	tau, err := rng.UintBelow(p.preset.H.Count())
	if err != nil {
		return nil, err
	}
	p.tau = tau

	hTau := permutation.New(p.preset.Domain)
	if err := p.preset.H.CopyFromArray(hTau, tau); err != nil {
		return nil, err
	}
	hTauInv := hTau.Clone()
	hTauInv.Invert()

	sigma0, err := p.preset.SampleGPrime()
	if err != nil {
		return nil, err
	}
	p.sigmas[0] = sigma0

	for j := uint32(1); j <= p.preset.D; j++ {
		conj := permutation.New(p.preset.Domain)
		if err := conj.Compose(hTauInv); err != nil {
			return nil, err
		}
		if err := p.preset.F.ComposeIndexed(conj, p.priv.Index(j-1)); err != nil {
			return nil, err
		}
		if err := conj.Compose(hTau); err != nil {
			return nil, err
		}
		conj.Invert()

		sigmaJ := p.sigmas[j-1].Clone()
		if err := sigmaJ.Compose(conj); err != nil {
			return nil, err
		}
		p.sigmas[j] = sigmaJ
	}

	for i := range p.keys {
		if err := rng.FillRandom(p.keys[i][:]); err != nil {
			return nil, err
		}
	}

	tag0 := commitmentTag(p.keys[0], wire.EncodePermutation(hTau))
	copy(p.commitments[0:commitment.Size], tag0[:])
	for j := uint32(0); j <= p.preset.D; j++ {
		tag := commitmentTag(p.keys[j+1], wire.EncodePermutation(p.sigmas[j]))
		copy(p.commitments[(j+1)*commitment.Size:(j+2)*commitment.Size], tag[:])
	}

	p.state = stateCommitted
	return p.commitments, nil
}

// GetAnswer produces the answer to challenge q against the round begun
// by the most recent BeginRound. Valid only from Committed.
func (p *Prover) GetAnswer(q uint32) (*wire.Answer, error) {
	l := logger.Logger()
	if p.state != stateCommitted {
		l.Warn("get_answer called out of order", "state", p.state)
		return nil, ErrInvalidState
	}
	if q > p.preset.D {
		l.Warn("get_answer challenge out of range", "q", q, "d", p.preset.D)
		return nil, ErrChallengeOutOfRange
	}
	l.Debug("get_answer", "q", q)

	var ans *wire.Answer
	if q == 0 {
		ans = &wire.Answer{
			Q:      0,
			Tau:    p.tau,
			Sigma0: p.sigmas[0].Clone(),
			KStar:  p.keys[0],
			K0:     p.keys[1],
			Kd:     p.keys[p.preset.D+1],
		}
	} else {
		hTau := permutation.New(p.preset.Domain)
		if err := p.preset.H.CopyFromArray(hTau, p.tau); err != nil {
			return nil, err
		}
		hTauInv := hTau.Clone()
		hTauInv.Invert()

		conj := permutation.New(p.preset.Domain)
		if err := conj.Compose(hTauInv); err != nil {
			return nil, err
		}
		if err := p.preset.F.ComposeIndexed(conj, p.priv.Index(q-1)); err != nil {
			return nil, err
		}
		if err := conj.Compose(hTau); err != nil {
			return nil, err
		}

		f, ok := p.preset.F.FindIndex(conj)
		if !ok {
			// The closure invariant guarantees this lookup always
			// succeeds for a correctly built preset; failure here means
			// corrupted parameters, not bad prover input.
			panic(params.ErrLookupFailed)
		}

		ans = &wire.Answer{
			Q:      q,
			F:      f,
			SigmaQ: p.sigmas[q].Clone(),
			KPrev:  p.keys[q],
			KCur:   p.keys[q+1],
		}
	}

	p.state = stateAnswered
	return ans, nil
}

func commitmentTag(key [commitment.KeySize]byte, data []byte) [commitment.Size]byte {
	return commitment.Commit(key, data)
}
