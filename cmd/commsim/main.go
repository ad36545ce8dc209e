/*
NAME
  main.go

DESCRIPTION
  commsim is a bare bones program that runs one simulated transmission:
  text in, through framing, error coding, and line or carrier modulation,
  across a noisy channel, and back out through the inverse chain.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main runs commsim, a CLI front end for the sim package: one
// text payload, a chosen framing/error-code/modulation configuration, an
// optional WAV export of the modulated samples, and a report of what the
// receiver recovered.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/commsim/audioexport"
	"github.com/ausocean/commsim/codec/carrier"
	"github.com/ausocean/commsim/codec/errcode"
	"github.com/ausocean/commsim/codec/framing"
	"github.com/ausocean/commsim/codec/line"
	"github.com/ausocean/commsim/physparams"
	"github.com/ausocean/commsim/sim"
)

// Logging related constants.
const (
	logPath      = "/var/log/commsim/commsim.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

var framingNames = map[string]framing.Discipline{
	"none":          framing.None,
	"char-count":    framing.CharCount,
	"byte-stuffing": framing.ByteStuffing,
	"bit-stuffing":  framing.BitStuffing,
}

var errCodeNames = map[string]errcode.Code{
	"none":        errcode.None,
	"even-parity": errcode.EvenParity,
	"crc32":       errcode.CRC32,
	"hamming":     errcode.Hamming,
}

var lineNames = map[string]line.Code{
	"nrz-polar":  line.NRZPolar,
	"manchester": line.Manchester,
	"bipolar":    line.Bipolar,
}

var carrierNames = map[string]carrier.Code{
	"none":  carrier.None,
	"ask":   carrier.ASK,
	"fsk":   carrier.FSK,
	"qpsk":  carrier.QPSK,
	"qam16": carrier.QAM16,
}

func main() {
	textPtr := flag.String("text", "Hello, World!", "Payload text to transmit.")
	framingPtr := flag.String("framing", "char-count", "Framing discipline: none, char-count, byte-stuffing, bit-stuffing.")
	errCodePtr := flag.String("errcode", "none", "Error code: none, even-parity, crc32, hamming.")
	linePtr := flag.String("line", "nrz-polar", "Line code: nrz-polar, manchester, bipolar.")
	carrierPtr := flag.String("carrier", "none", "Carrier code: none, ask, fsk, qpsk, qam16. Overrides -line when not none.")
	sigmaPtr := flag.Float64("sigma", 0, "Channel noise standard deviation.")
	seedPtr := flag.Uint64("seed", 1, "Channel RNG seed.")
	wavPtr := flag.String("wav", "", "If set, write the modulated samples to this WAV file path.")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	l := logging.New(logVerbosity, fileLog, logSuppress)

	fr, ok := framingNames[*framingPtr]
	if !ok {
		l.Fatal("unknown framing discipline", "framing", *framingPtr)
	}
	ec, ok := errCodeNames[*errCodePtr]
	if !ok {
		l.Fatal("unknown error code", "errcode", *errCodePtr)
	}
	ln, ok := lineNames[*linePtr]
	if !ok {
		l.Fatal("unknown line code", "line", *linePtr)
	}
	ca, ok := carrierNames[*carrierPtr]
	if !ok {
		l.Fatal("unknown carrier code", "carrier", *carrierPtr)
	}

	sim.Log = l
	errcode.Log = l

	cfg := sim.Config{Framing: fr, ErrCode: ec, Line: ln, Carrier: ca, Sigma: *sigmaPtr, Seed: *seedPtr}

	samples, err := sim.Encode(*textPtr, cfg)
	if err != nil {
		l.Fatal("encode failed", "error", err)
	}
	l.Info("encoded transmission", "text", *textPtr, "samples", len(samples), "config", cfg)

	if *wavPtr != "" {
		f, err := os.Create(*wavPtr)
		if err != nil {
			l.Error("could not create wav file", "path", *wavPtr, "error", err)
		} else {
			if err := audioexport.WriteSamples(f, samples, physparams.SampleRate); err != nil {
				l.Warning("wav export reported an issue", "error", err)
			}
			f.Close()
		}
	}

	result, err := sim.Decode(samples, cfg)
	if err != nil {
		l.Fatal("decode failed", "error", err)
	}

	fmt.Printf("sent:      %q\n", *textPtr)
	fmt.Printf("received:  %q\n", result.Text)
	fmt.Printf("report:    %s\n", result.Report)
}
