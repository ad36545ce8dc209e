/*
NAME
  errcode_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package errcode

import (
	"testing"

	"github.com/ausocean/commsim/bitstream"
)

func TestParityRoundTrip(t *testing.T) {
	// T="U" (0x55 = 01010101), four ones, even parity bit is 0.
	data := bitstream.FromInts(0, 1, 0, 1, 0, 1, 0, 1)
	cw := Encode(data, EvenParity)
	want := append(data.Clone(), 0)
	if !cw.Equal(want) {
		t.Fatalf("Encode = %v, want %v", cw, want)
	}
	got, report := Decode(cw, EvenParity)
	if report != OK {
		t.Errorf("report = %v, want OK", report)
	}
	if !got.Equal(data) {
		t.Errorf("decoded data = %v, want %v", got, data)
	}
}

func TestParitySingleBitFlipDetected(t *testing.T) {
	data := bitstream.FromInts(0, 1, 0, 1, 0, 1, 0, 1)
	cw := Encode(data, EvenParity)
	cw[3] ^= 1
	_, report := Decode(cw, EvenParity)
	if report != ParityMismatch {
		t.Errorf("report = %v, want ParityMismatch", report)
	}
}

func TestParityDoubleBitFlipUndetected(t *testing.T) {
	data := bitstream.FromInts(0, 1, 0, 1, 0, 1, 0, 1)
	cw := Encode(data, EvenParity)
	cw[0] ^= 1
	cw[1] ^= 1
	_, report := Decode(cw, EvenParity)
	if report != OK {
		t.Errorf("report = %v, want OK (undetected)", report)
	}
}

func TestCRCEmptyPayload(t *testing.T) {
	cw := Encode(bitstream.Bits{}, CRC32)
	if len(cw) != 32 {
		t.Fatalf("len(cw) = %d, want 32", len(cw))
	}
	for i, b := range cw {
		if b != 0 {
			t.Errorf("cw[%d] = %d, want 0", i, b)
		}
	}
	data, report := Decode(cw, CRC32)
	if report != OK {
		t.Errorf("report = %v, want OK", report)
	}
	if len(data) != 0 {
		t.Errorf("data = %v, want empty", data)
	}
}

func TestCRCSingleBitFlipDetected(t *testing.T) {
	data := bitstream.FromInts(0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1)
	cw := Encode(data, CRC32)
	for i := range cw {
		flipped := cw.Clone()
		flipped[i] ^= 1
		if _, report := Decode(flipped, CRC32); report != CRCMismatch {
			t.Errorf("flip bit %d: report = %v, want CRCMismatch", i, report)
		}
	}
}

func TestCRCRoundTrip(t *testing.T) {
	data := bitstream.FromInts(1, 1, 0, 0, 1, 0, 1, 0, 1)
	cw := Encode(data, CRC32)
	got, report := Decode(cw, CRC32)
	if report != OK {
		t.Fatalf("report = %v, want OK", report)
	}
	if !got.Equal(data) {
		t.Errorf("data = %v, want %v", got, data)
	}
}

func TestHammingRoundTripNoError(t *testing.T) {
	// "Hi" = 0x48, 0x69 = 01001000 01101001 (16 bits).
	data := bitstream.FromInts(0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1)
	cw := Encode(data, Hamming)
	got, report := Decode(cw, Hamming)
	if report != HammingApplied {
		t.Errorf("report = %v, want HammingApplied", report)
	}
	if len(got) < len(data) {
		t.Fatalf("decoded too short: %d < %d", len(got), len(data))
	}
	if !got[:len(data)].Equal(data) {
		t.Errorf("data = %v, want %v", got[:len(data)], data)
	}
}

func TestHammingSingleBitErrorCorrectedPerBlock(t *testing.T) {
	data := bitstream.FromInts(0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0, 1, 0, 0, 1)
	cw := Encode(data, Hamming)
	for i := range cw {
		corrupted := cw.Clone()
		corrupted[i] ^= 1
		got, report := Decode(corrupted, Hamming)
		if report != HammingApplied {
			t.Errorf("flip bit %d: report = %v, want HammingApplied", i, report)
		}
		if !got[:len(data)].Equal(data) {
			t.Errorf("flip bit %d: data = %v, want %v", i, got[:len(data)], data)
		}
	}
}

func TestHammingBlockSizeSelection(t *testing.T) {
	cases := []struct {
		dataBits int
		wantLen  int // Encoded length.
	}{
		{4, 7},
		{11, 15},
		{26, 31},
		{57, 63},
		{58, 63 + 7}, // 57 then a padded (7,4) block for the 1 leftover bit.
		{0, 0},
		{2, 7}, // Fewer than the smallest k: still a padded (7,4) block.
	}
	for _, c := range cases {
		data := make(bitstream.Bits, c.dataBits)
		got := Encode(data, Hamming)
		if len(got) != c.wantLen {
			t.Errorf("dataBits=%d: len(Encode) = %d, want %d", c.dataBits, len(got), c.wantLen)
		}
	}
}
