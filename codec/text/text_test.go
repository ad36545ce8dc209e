/*
NAME
  text_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package text

import (
	"testing"

	"github.com/ausocean/commsim/bitstream"
)

func TestEncodeA(t *testing.T) {
	// 'A' = 0x41 = 01000001.
	got := Encode("A")
	want := bitstream.FromInts(0, 1, 0, 0, 0, 0, 0, 1)
	if !got.Equal(want) {
		t.Errorf("Encode(\"A\") = %v, want %v", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	got := Encode("")
	if len(got) != 0 {
		t.Errorf("Encode(\"\") = %v, want empty", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{"", "A", "Hi", "~", "hello, world", "héllo", "日本語"}
	for _, s := range cases {
		t.Run(s, func(t *testing.T) {
			got := Decode(Encode(s))
			if got != s {
				t.Errorf("Decode(Encode(%q)) = %q, want %q", s, got, s)
			}
		})
	}
}

func TestDecodeUndecodable(t *testing.T) {
	// 0xFF is never valid as a UTF-8 lead byte.
	bits := bitstream.FromInts(1, 1, 1, 1, 1, 1, 1, 1)
	if got := Decode(bits); got != Undecodable {
		t.Errorf("Decode(invalid) = %q, want %q", got, Undecodable)
	}
}

func TestDecodeDropsTrailingPartialByte(t *testing.T) {
	bits := append(Encode("A"), bitstream.FromInts(1, 0, 1)...)
	if got, want := Decode(bits), "A"; got != want {
		t.Errorf("Decode(with trailing bits) = %q, want %q", got, want)
	}
}
