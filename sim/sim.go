/*
NAME
  sim.go

DESCRIPTION
  sim.go implements the two top-level pipeline operations, Encode and
  Decode, wiring together text, framing, error coding, line-or-carrier
  modulation and the noisy channel.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sim

import (
	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/commsim/bitstream"
	"github.com/ausocean/commsim/channel"
	"github.com/ausocean/commsim/codec/carrier"
	"github.com/ausocean/commsim/codec/errcode"
	"github.com/ausocean/commsim/codec/framing"
	"github.com/ausocean/commsim/codec/line"
	"github.com/ausocean/commsim/codec/text"
	"github.com/ausocean/commsim/physparams"
)

// Log is the package-level logger, a no-op by default.
var Log logging.Logger = nopLogger{}

// Result is everything Decode recovers from a sample sequence.
type Result struct {
	Text          string
	Report        errcode.Report
	RecoveredBits bitstream.Bits
}

// Encode runs the full transmit pipeline: payload text to UTF-8 bits, to a
// framed bit stream, to an error-coded codeword, to line or carrier
// samples, to a noisy channel. If cfg.UsesCarrier(), carrier modulation is
// used in place of the line code, not layered on top of it; cfg.Line is
// then ignored.
func Encode(payload string, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bits := text.Encode(payload)
	framed := framing.Frame(bits, cfg.Framing)
	codeword := errcode.Encode(framed, cfg.ErrCode)
	Log.Debug("encoded codeword", "hex", bitstream.Hex(codeword), "bits", len(codeword))

	var samples []float64
	if cfg.UsesCarrier() {
		samples = carrier.Encode(padToSymbol(codeword, cfg.Carrier.BitsPerSymbol()), cfg.Carrier)
	} else {
		samples = line.Encode(codeword, cfg.Line)
	}

	ch := channel.New(cfg.Sigma, cfg.Seed)
	return ch.Add(samples), nil
}

// Decode runs the full receive pipeline: the inverse of Encode. It always
// returns the recovered text, even when error_report indicates a mismatch,
// per the source spec's "never silently substitute" error taxonomy.
func Decode(samples []float64, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if err := checkAlignment(samples, cfg); err != nil {
		return Result{}, errors.Wrap(err, "sim: malformed sample stream")
	}

	var codeword bitstream.Bits
	if cfg.UsesCarrier() {
		codeword = carrier.Decode(samples, cfg.Carrier)
	} else {
		codeword = line.Decode(samples, cfg.Line)
	}

	data, report := errcode.Decode(codeword, cfg.ErrCode)
	framed := framing.Deframe(data, cfg.Framing)
	recovered := text.Decode(framed)

	return Result{Text: recovered, Report: report, RecoveredBits: framed}, nil
}

// checkAlignment reports whether samples could plausibly have come from
// cfg's modulation: its length must be a whole multiple of one symbol's
// sample span. A stray truncated or corrupted sample stream fails this
// check before it reaches the line/carrier decoders, which otherwise would
// just silently drop a trailing partial slot.
func checkAlignment(samples []float64, cfg Config) error {
	span := physparams.SamplesPerBit
	if cfg.UsesCarrier() {
		span *= cfg.Carrier.BitsPerSymbol()
	}
	if len(samples)%span != 0 {
		return errors.Errorf("sample count %d is not a multiple of %d samples/symbol", len(samples), span)
	}
	return nil
}

// padToSymbol right-pads bits with zeros so its length is a multiple of n.
// The receiver cannot distinguish these from payload zeros; like the
// Hamming codec's own block-padding artifact, they are expected to be
// resolved by the deframer's length boundary or by UTF-8 validation.
func padToSymbol(bits bitstream.Bits, n int) bitstream.Bits {
	if n <= 1 {
		return bits
	}
	rem := len(bits) % n
	if rem == 0 {
		return bits
	}
	out := make(bitstream.Bits, len(bits), len(bits)+n-rem)
	copy(out, bits)
	for i := 0; i < n-rem; i++ {
		out = append(out, 0)
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Log(int8, string, ...interface{}) {}
func (nopLogger) SetLevel(int8)                    {}
func (nopLogger) Debug(string, ...interface{})     {}
func (nopLogger) Info(string, ...interface{})      {}
func (nopLogger) Warning(string, ...interface{})   {}
func (nopLogger) Error(string, ...interface{})     {}
func (nopLogger) Fatal(string, ...interface{})     {}
