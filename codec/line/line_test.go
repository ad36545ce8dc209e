/*
NAME
  line_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package line

import (
	"testing"

	"github.com/ausocean/commsim/bitstream"
	"github.com/ausocean/commsim/physparams"
)

var allCodes = []Code{NRZPolar, Manchester, Bipolar}

func TestRoundTripNoiseless(t *testing.T) {
	data := bitstream.FromInts(0, 1, 0, 0, 0, 0, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1)
	for _, code := range allCodes {
		t.Run(code.String(), func(t *testing.T) {
			samples := Encode(data, code)
			if len(samples) != len(data)*physparams.SamplesPerBit {
				t.Fatalf("len(samples) = %d, want %d", len(samples), len(data)*physparams.SamplesPerBit)
			}
			got := Decode(samples, code)
			if !got.Equal(data) {
				t.Errorf("Decode(Encode(%v)) = %v, want %v", data, got, data)
			}
		})
	}
}

func TestNRZPolarSampleValues(t *testing.T) {
	data := bitstream.FromInts(1, 0)
	samples := Encode(data, NRZPolar)
	for i := 0; i < physparams.SamplesPerBit; i++ {
		if samples[i] != 1 {
			t.Fatalf("samples[%d] = %v, want 1", i, samples[i])
		}
	}
	for i := physparams.SamplesPerBit; i < 2*physparams.SamplesPerBit; i++ {
		if samples[i] != -1 {
			t.Fatalf("samples[%d] = %v, want -1", i, samples[i])
		}
	}
}

func TestBipolarAlternatesMarkSign(t *testing.T) {
	data := bitstream.FromInts(1, 0, 1, 1)
	samples := Encode(data, Bipolar)
	n := physparams.SamplesPerBit
	if samples[0] != 1 {
		t.Errorf("first mark = %v, want +1", samples[0])
	}
	if samples[2*n] != -1 {
		t.Errorf("second mark = %v, want -1", samples[2*n])
	}
	if samples[3*n] != 1 {
		t.Errorf("third mark = %v, want +1", samples[3*n])
	}
}
