/*
NAME
  audioexport_test.go

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package audioexport

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteHeaderFields(t *testing.T) {
	samples := []float64{0, 0.5, -0.5, 1, -1}
	var buf bytes.Buffer
	if err := WriteSamples(&buf, samples, 50000); err != nil {
		t.Fatalf("WriteSamples: %v", err)
	}
	got := buf.Bytes()
	if len(got) != 44+len(samples)*2 {
		t.Fatalf("len(got) = %d, want %d", len(got), 44+len(samples)*2)
	}
	if string(got[0:4]) != "RIFF" || string(got[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers: %q", got[0:12])
	}
	if string(got[12:16]) != "fmt " || string(got[36:40]) != "data" {
		t.Fatalf("missing fmt/data chunk markers")
	}
	if rate := binary.LittleEndian.Uint32(got[24:28]); rate != 50000 {
		t.Errorf("sample rate in header = %d, want 50000", rate)
	}
	if depth := binary.LittleEndian.Uint16(got[34:36]); depth != 16 {
		t.Errorf("bit depth in header = %d, want 16", depth)
	}
}

func TestWriteEmptyFails(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSamples(&buf, nil, 50000); err == nil {
		t.Errorf("WriteSamples with no samples returned nil error")
	}
}

func TestWriteInvalidSampleRateFails(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSamples(&buf, []float64{0, 1}, 0); err == nil {
		t.Errorf("WriteSamples with sample rate 0 returned nil error")
	}
}

func TestClippingReportedButStillWrites(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSamples(&buf, []float64{2, -2}, 50000)
	if err == nil {
		t.Fatalf("expected a clip error")
	}
	if buf.Len() != 44+4 {
		t.Errorf("clipped write still produced %d bytes, want %d", buf.Len(), 44+4)
	}
}

func TestPCMValuesRoundToNearestInt16(t *testing.T) {
	samples := []float64{1, -1, 0}
	b, err := ToIntBuffer(samples, 50000)
	if err != nil {
		t.Fatalf("ToIntBuffer: %v", err)
	}
	want := []int{32767, -32767, 0}
	for i, v := range want {
		if b.Data[i] != v {
			t.Errorf("Data[%d] = %d, want %d", i, b.Data[i], v)
		}
	}
}
