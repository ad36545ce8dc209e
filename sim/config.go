/*
NAME
  config.go

DESCRIPTION
  config.go defines the configuration for one simulated transmission: the
  framing discipline, error code, and line or carrier modulation to use,
  plus the channel's noise level.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sim orchestrates the full encode and decode pipelines: text,
// framing, error coding, line or carrier modulation, and the noisy
// channel between them.
package sim

import (
	"fmt"

	"github.com/ausocean/commsim/codec/carrier"
	"github.com/ausocean/commsim/codec/errcode"
	"github.com/ausocean/commsim/codec/framing"
	"github.com/ausocean/commsim/codec/line"
)

// Config selects one combination of framing discipline, error code, and
// physical-layer modulation for a simulated transmission.
//
// Exactly one of Line or Carrier is meaningful: if Carrier is not
// carrier.None, it is used in place of the line code (they are not
// cascaded), matching the source program's single physical-layer choice.
type Config struct {
	Framing framing.Discipline
	ErrCode errcode.Code
	Line    line.Code
	Carrier carrier.Code

	// Sigma is the channel's Gaussian noise standard deviation. Zero
	// simulates a noiseless channel.
	Sigma float64

	// Seed seeds the channel's random source, for reproducible runs.
	Seed uint64
}

// UsesCarrier reports whether c's carrier modulation takes over from the
// line code.
func (c Config) UsesCarrier() bool {
	return c.Carrier != carrier.None
}

// Validate reports whether c names usable disciplines and codes, and
// whether their combination is one the pipeline can execute.
func (c Config) Validate() error {
	switch c.Framing {
	case framing.None, framing.CharCount, framing.ByteStuffing, framing.BitStuffing:
	default:
		return fmt.Errorf("sim: unknown framing discipline %d", c.Framing)
	}
	switch c.ErrCode {
	case errcode.None, errcode.EvenParity, errcode.CRC32, errcode.Hamming:
	default:
		return fmt.Errorf("sim: unknown error code %d", c.ErrCode)
	}
	switch c.Line {
	case line.NRZPolar, line.Manchester, line.Bipolar:
	default:
		return fmt.Errorf("sim: unknown line code %d", c.Line)
	}
	switch c.Carrier {
	case carrier.None, carrier.ASK, carrier.FSK, carrier.QPSK, carrier.QAM16:
	default:
		return fmt.Errorf("sim: unknown carrier code %d", c.Carrier)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("sim: negative sigma %v", c.Sigma)
	}
	return nil
}
