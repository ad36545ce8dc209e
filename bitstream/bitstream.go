/*
NAME
  bitstream.go

DESCRIPTION
  bitstream.go defines the Bits sequence type shared by every pipeline stage
  (framing, error coding, line coding, carrier coding) and the MSB-first
  byte serialization used to move a Bits sequence across the in-process
  channel boundary.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitstream provides a packed-bit-friendly view over the bit
// sequences that flow between pipeline stages, replacing the
// list-of-integers convention of the Python original with a typed
// container, per the re-architecture guidance in the source spec's design
// notes.
package bitstream

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Bit is a single binary digit, always 0 or 1. Consumers must not rely on
// any other value; FromInts validates this, Clone copies without checking.
type Bit = byte

// Bits is an ordered sequence of Bit values. It is never mutated in place
// by a stage that did not produce it; each stage returns a fresh Bits
// built from its input.
type Bits []Bit

// FromInts builds a Bits sequence from plain 0/1 integers, the shape the
// framing and error-coding algorithms are specified against.
func FromInts(v ...int) Bits {
	b := make(Bits, len(v))
	for i, x := range v {
		if x != 0 && x != 1 {
			panic(fmt.Sprintf("bitstream: value %d at index %d is not a bit", x, i))
		}
		b[i] = byte(x)
	}
	return b
}

// Clone returns an independent copy of b, so that a consumer may safely
// mutate the result without affecting the stage that produced b.
func (b Bits) Clone() Bits {
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// Equal reports whether b and o contain the same bits in the same order.
func (b Bits) Equal(o Bits) bool {
	return bytes.Equal(b, o)
}

// String renders b as a string of '0'/'1' characters, useful for debug
// logging and test failure messages.
func (b Bits) String() string {
	s := make([]byte, len(b))
	for i, bit := range b {
		s[i] = '0' + bit
	}
	return string(s)
}

// Pack serializes b MSB-first into bytes, zero-padding the final byte on
// the right when len(b) is not a multiple of 8. This is the wire format
// called out in the design notes: a plain byte-serialization of the bit
// stream, bit-exact between two conformant implementations.
func Pack(b Bits) []byte {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	for _, bit := range b {
		// WriteBool never fails against a bytes.Buffer sink.
		_ = w.WriteBool(bit == 1)
	}
	_ = w.Close()
	return buf.Bytes()
}

// Unpack is the inverse of Pack: it reads exactly n bits, MSB-first, from
// data and returns them as a Bits sequence. n must not exceed 8*len(data).
func Unpack(data []byte, n int) Bits {
	if n > 8*len(data) {
		panic("bitstream: Unpack: n exceeds available bits")
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make(Bits, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			panic(fmt.Sprintf("bitstream: Unpack: %v", err))
		}
		if bit {
			out[i] = 1
		}
	}
	return out
}

// Hex renders the MSB-first packed form of b as a space-separated hex
// string, used for debug logging of a frame or codeword without dumping
// every individual bit.
func Hex(b Bits) string {
	return fmt.Sprintf("% x", Pack(b))
}
