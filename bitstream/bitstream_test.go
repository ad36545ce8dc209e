/*
NAME
  bitstream_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitstream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		bits Bits
	}{
		{"empty", Bits{}},
		{"byte-aligned", FromInts(0, 1, 0, 0, 0, 0, 0, 1)},
		{"short", FromInts(1, 1, 0)},
		{"two-bytes-plus", FromInts(1, 0, 1, 0, 1, 0, 1, 0, 1, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			packed := Pack(c.bits)
			got := Unpack(packed, len(c.bits))
			if !cmp.Equal([]byte(got), []byte(c.bits)) {
				t.Errorf("Unpack(Pack(%v)) = %v, want %v", c.bits, got, c.bits)
			}
		})
	}
}

func TestPackMSBFirst(t *testing.T) {
	// 'A' = 0x41 = 0100 0001.
	bits := FromInts(0, 1, 0, 0, 0, 0, 0, 1)
	got := Pack(bits)
	want := []byte{0x41}
	if !cmp.Equal(got, want) {
		t.Errorf("Pack(%v) = % x, want % x", bits, got, want)
	}
}

func TestPackZeroPadsFinalByte(t *testing.T) {
	bits := FromInts(1, 1, 1) // Should pad to 1110 0000 = 0xE0.
	got := Pack(bits)
	want := []byte{0xE0}
	if !cmp.Equal(got, want) {
		t.Errorf("Pack(%v) = % x, want % x", bits, got, want)
	}
}

func TestCloneIndependent(t *testing.T) {
	b := FromInts(1, 0, 1)
	c := b.Clone()
	c[0] = 0
	if b[0] != 1 {
		t.Errorf("mutating clone affected original: b[0] = %v, want 1", b[0])
	}
}

func TestEqual(t *testing.T) {
	a := FromInts(1, 0, 1)
	b := FromInts(1, 0, 1)
	c := FromInts(1, 1, 1)
	if !a.Equal(b) {
		t.Errorf("Equal(%v, %v) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Errorf("Equal(%v, %v) = true, want false", a, c)
	}
}

func TestString(t *testing.T) {
	b := FromInts(1, 0, 1, 1)
	if got, want := b.String(), "1011"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
