/*
NAME
  channel.go

DESCRIPTION
  channel.go simulates the point-to-point link's only physical
  impairment: additive white Gaussian noise. The encoder and decoder
  packages otherwise run noiselessly.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package channel models the noisy medium a modulated sample sequence
// crosses between encode and decode: i.i.d. zero-mean Gaussian noise at
// a configurable standard deviation.
package channel

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Channel adds Gaussian noise to a sample sequence. The zero value, with
// Sigma 0, is a noiseless pass-through.
type Channel struct {
	Sigma float64
	// Src is golang.org/x/exp/rand.Source, not math/rand.Source: that is
	// what distuv.Normal requires.
	Src rand.Source
}

// New returns a Channel with standard deviation sigma, seeded from seed so
// runs are reproducible.
func New(sigma float64, seed uint64) Channel {
	return Channel{Sigma: sigma, Src: rand.NewSource(seed)}
}

// Add returns a copy of samples with independent Gaussian noise of mean 0
// and standard deviation c.Sigma added to every sample. Sigma of 0 returns
// an unmodified copy without drawing any randomness.
func (c Channel) Add(samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	if c.Sigma == 0 {
		return out
	}
	src := c.Src
	if src == nil {
		src = rand.NewSource(0)
	}
	noise := distuv.Normal{Mu: 0, Sigma: c.Sigma, Src: src}
	for i := range out {
		out[i] += noise.Rand()
	}
	return out
}
