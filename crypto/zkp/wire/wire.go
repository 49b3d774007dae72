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

// Package wire implements the byte-exact on-wire serialization of public
// keys and answers.
package wire

import (
	"errors"

	"github.com/getamis/zkp-volte-patarin-nachef/crypto/permutation"
	"github.com/getamis/zkp-volte-patarin-nachef/crypto/zkp/commitment"
)

// maxSmallDomainRepr is the largest domain that still fits a one-byte-per-
// image encoding.
const maxSmallDomainRepr = 255

var (
	// ErrMalformedPermutation is returned when decoded bytes do not
	// represent a valid bijection on {1,...,domain}.
	ErrMalformedPermutation = errors.New("wire: malformed permutation encoding")
	// ErrTruncated is returned when a byte slice is shorter than the
	// layout it is claimed to encode.
	ErrTruncated = errors.New("wire: truncated input")
	// ErrIndexOutOfRange is returned when a decoded τ or f index exceeds
	// the bound the preset allows.
	ErrIndexOutOfRange = errors.New("wire: index out of range")
)

// PermByteSize returns the number of bytes needed to encode a permutation
// on the given domain: one byte per image for D<=255, two (little-endian,
// base-255) otherwise.
func PermByteSize(domain uint32) int {
	if domain > maxSmallDomainRepr {
		return 2 * int(domain)
	}
	return int(domain)
}

// EncodePermutation serializes p into its byte-exact wire form.
func EncodePermutation(p *permutation.Permutation) []byte {
	domain := p.Domain()
	out := make([]byte, PermByteSize(domain))
	for i := uint32(1); i <= domain; i++ {
		v := p.Get(i)
		if domain > maxSmallDomainRepr {
			out[2*(i-1)] = byte(v % maxSmallDomainRepr)
			out[2*(i-1)+1] = byte(v / maxSmallDomainRepr)
		} else {
			out[i-1] = byte(v)
		}
	}
	return out
}

// DecodePermutation parses repr into a permutation on the given domain,
// rejecting any byte sequence that does not decode to a valid bijection.
func DecodePermutation(domain uint32, repr []byte) (*permutation.Permutation, error) {
	if len(repr) != PermByteSize(domain) {
		return nil, ErrTruncated
	}
	p := permutation.New(domain)
	for i := uint32(1); i <= domain; i++ {
		var v uint32
		if domain > maxSmallDomainRepr {
			v = uint32(repr[2*(i-1)]) + uint32(repr[2*(i-1)+1])*maxSmallDomainRepr
		} else {
			v = uint32(repr[i-1])
		}
		p.Set(i, v)
	}
	if !p.IsValid() {
		return nil, ErrMalformedPermutation
	}
	return p, nil
}

// PublicKeySize returns the exported public key size for a given domain.
func PublicKeySize(domain uint32) int {
	return PermByteSize(domain)
}

// IndexWidth returns the byte width W used to encode τ/f indices: the
// smallest of {1,2,3} such that both fCount and hCount fit.
func IndexWidth(fCount, hCount uint32) int {
	for _, w := range []int{1, 2, 3} {
		limit := uint64(1) << (8 * uint(w))
		if uint64(fCount) <= limit && uint64(hCount) <= limit {
			return w
		}
	}
	return 3
}

func putIndexLE(buf []byte, w int, v uint32) {
	for i := 0; i < w; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

func getIndexLE(buf []byte, w int) uint32 {
	var v uint32
	for i := 0; i < w; i++ {
		v |= uint32(buf[i]) << (8 * uint(i))
	}
	return v
}

// Answer is the tagged-variant wire representation of an answer:
// Q identifies which branch is populated. Go models this directly as a
// discriminated struct rather than a reused buffer; callers that want to reuse
// backing storage across rounds may still do so by retaining one Answer
// and overwriting its fields.
type Answer struct {
	Q uint32

	// Populated when Q == 0.
	Tau    uint32
	Sigma0 *permutation.Permutation
	KStar  [commitment.KeySize]byte
	K0     [commitment.KeySize]byte
	Kd     [commitment.KeySize]byte

	// Populated when 1 <= Q <= d.
	F      uint32
	SigmaQ *permutation.Permutation
	KPrev  [commitment.KeySize]byte
	KCur   [commitment.KeySize]byte
}

// AnswerSize returns the wire size of an answer for challenge q.
func AnswerSize(domain uint32, fCount, hCount uint32, q uint32) int {
	w := IndexWidth(fCount, hCount)
	s := PermByteSize(domain)
	if q == 0 {
		return w + s + 3*commitment.Size
	}
	return w + s + 2*commitment.Size
}

// MaxAnswerSize returns the largest answer size for the given preset
// shape, which is always the q==0 layout.
func MaxAnswerSize(domain uint32, fCount, hCount uint32) int {
	return AnswerSize(domain, fCount, hCount, 0)
}

// EncodeAnswer serializes ans into its byte-exact wire form.
func EncodeAnswer(ans *Answer, fCount, hCount uint32) []byte {
	w := IndexWidth(fCount, hCount)
	domain := uint32(0)
	if ans.Q == 0 {
		domain = ans.Sigma0.Domain()
	} else {
		domain = ans.SigmaQ.Domain()
	}
	out := make([]byte, AnswerSize(domain, fCount, hCount, ans.Q))
	pos := 0
	if ans.Q == 0 {
		putIndexLE(out[pos:], w, ans.Tau)
		pos += w
		copy(out[pos:], EncodePermutation(ans.Sigma0))
		pos += PermByteSize(domain)
		copy(out[pos:], ans.KStar[:])
		pos += commitment.Size
		copy(out[pos:], ans.K0[:])
		pos += commitment.Size
		copy(out[pos:], ans.Kd[:])
	} else {
		putIndexLE(out[pos:], w, ans.F)
		pos += w
		copy(out[pos:], EncodePermutation(ans.SigmaQ))
		pos += PermByteSize(domain)
		copy(out[pos:], ans.KPrev[:])
		pos += commitment.Size
		copy(out[pos:], ans.KCur[:])
	}
	return out
}

// DecodeAnswer parses data as the answer to challenge q, rejecting any
// out-of-range index or invalid permutation encoding.
func DecodeAnswer(domain, fCount, hCount, q uint32, data []byte) (*Answer, error) {
	if len(data) != AnswerSize(domain, fCount, hCount, q) {
		return nil, ErrTruncated
	}
	w := IndexWidth(fCount, hCount)
	pos := 0
	ans := &Answer{Q: q}
	if q == 0 {
		tau := getIndexLE(data[pos:], w)
		pos += w
		if tau >= hCount {
			return nil, ErrIndexOutOfRange
		}
		ans.Tau = tau
		sigma0, err := DecodePermutation(domain, data[pos:pos+PermByteSize(domain)])
		if err != nil {
			return nil, err
		}
		pos += PermByteSize(domain)
		ans.Sigma0 = sigma0
		copy(ans.KStar[:], data[pos:pos+commitment.Size])
		pos += commitment.Size
		copy(ans.K0[:], data[pos:pos+commitment.Size])
		pos += commitment.Size
		copy(ans.Kd[:], data[pos:pos+commitment.Size])
	} else {
		f := getIndexLE(data[pos:], w)
		pos += w
		if f >= fCount {
			return nil, ErrIndexOutOfRange
		}
		ans.F = f
		sigmaQ, err := DecodePermutation(domain, data[pos:pos+PermByteSize(domain)])
		if err != nil {
			return nil, err
		}
		pos += PermByteSize(domain)
		ans.SigmaQ = sigmaQ
		copy(ans.KPrev[:], data[pos:pos+commitment.Size])
		pos += commitment.Size
		copy(ans.KCur[:], data[pos:pos+commitment.Size])
	}
	return ans, nil
}
