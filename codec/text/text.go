/*
NAME
  text.go

DESCRIPTION
  text.go converts between application text and the bit sequence that the
  rest of the pipeline operates on.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package text converts between application-level UTF-8 text and the bit
// sequences the link encoder/decoder operate on.
package text

import (
	"unicode/utf8"

	"github.com/ausocean/commsim/bitstream"
)

// Undecodable is the sentinel string returned by Decode when the
// reconstructed byte sequence is not valid UTF-8. Per the source spec,
// invalid byte sequences are reported rather than raised as an error, since
// corrupted physical-layer recovery is an expected failure mode, not a
// programming error.
const Undecodable = "undecodable bit sequence"

// Encode converts text to its UTF-8 byte representation and then to a bit
// sequence, most-significant-bit first within each byte.
func Encode(s string) bitstream.Bits {
	data := []byte(s)
	bits := make(bitstream.Bits, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// Decode reconstructs text from a bit sequence. Any trailing bits that do
// not form a complete byte are dropped, the same tolerance the framing and
// error-coding stages already document for their own padding artifacts.
// If the resulting bytes are not valid UTF-8, Decode returns Undecodable.
func Decode(bits bitstream.Bits) string {
	n := len(bits) / 8
	data := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b = (b << 1) | bits[8*i+j]
		}
		data[i] = b
	}
	if !utf8.Valid(data) {
		return Undecodable
	}
	return string(data)
}
