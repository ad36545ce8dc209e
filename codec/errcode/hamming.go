/*
NAME
  hamming.go

DESCRIPTION
  hamming.go implements a generalized single-error-correcting (SEC) Hamming
  block code over the fixed block family {(7,4), (15,11), (31,26), (63,57)}.

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

import "github.com/ausocean/commsim/bitstream"

// hammingBlock describes one member of the fixed Hamming block family:
// n total bits, k data bits, p = n - k parity bits.
type hammingBlock struct{ n, k, p int }

// hammingBlocks is ordered largest-first.
var hammingBlocks = []hammingBlock{
	{n: 63, k: 57, p: 6},
	{n: 31, k: 26, p: 5},
	{n: 15, k: 11, p: 4},
	{n: 7, k: 4, p: 3},
}

// largestBlock and smallestBlock name the two ends of hammingBlocks used by
// the partition rule below.
var (
	largestBlock  = hammingBlocks[0]
	smallestBlock = hammingBlocks[len(hammingBlocks)-1]
)

// blockSequence partitions dataLen data bits into hammingBlocks members: as
// many full largestBlock blocks as fit, then at most one tail block sized
// to the smallest family member whose k covers what remains, zero-padded
// where the remainder is shorter than that member's k. Unlike a naive "largest k
// that fits the remainder" greedy walk, this never emits two or more
// sub-maximal blocks back to back, so the total encoded length alone
// determines the exact sequence: the decoder does not need the original
// dataLen to re-derive it (see decodeHamming).
func blockSequence(dataLen int) []hammingBlock {
	var seq []hammingBlock
	remaining := dataLen
	for remaining >= largestBlock.k {
		seq = append(seq, largestBlock)
		remaining -= largestBlock.k
	}
	if remaining <= 0 {
		return seq
	}
	tail := largestBlock
	for i := len(hammingBlocks) - 1; i >= 0; i-- {
		if hammingBlocks[i].k >= remaining {
			tail = hammingBlocks[i]
			break
		}
	}
	return append(seq, tail)
}

// encodeHamming encodes bits one blockSequence(len(bits)) member at a time,
// zero-padding the final block if it is not fully covered by real data.
func encodeHamming(bits bitstream.Bits) bitstream.Bits {
	var out bitstream.Bits
	idx := 0
	for _, blk := range blockSequence(len(bits)) {
		data := make(bitstream.Bits, blk.k)
		copy(data, bits[idx:])
		idx += blk.k
		if idx > len(bits) {
			idx = len(bits)
		}
		out = append(out, encodeHammingBlock(data, blk)...)
	}
	return out
}

// encodeHammingBlock builds one n-bit, 1-indexed Hamming block from k data
// bits: parity positions are the powers of two, data bits fill the rest in
// order, and each parity bit at position 2^i is the XOR of every position
// whose (1-indexed) index has bit i set.
func encodeHammingBlock(data bitstream.Bits, blk hammingBlock) bitstream.Bits {
	block := make(bitstream.Bits, blk.n+1) // 1-indexed; index 0 unused.
	isParity := make([]bool, blk.n+1)
	for i := 0; i < blk.p; i++ {
		isParity[1<<uint(i)] = true
	}
	di := 0
	for pos := 1; pos <= blk.n; pos++ {
		if !isParity[pos] {
			block[pos] = data[di]
			di++
		}
	}
	for i := 0; i < blk.p; i++ {
		pp := 1 << uint(i)
		var x byte
		for pos := 1; pos <= blk.n; pos++ {
			if pos != pp && pos&pp != 0 {
				x ^= block[pos]
			}
		}
		block[pp] = x
	}
	return block[1:]
}

// decodeHamming re-derives blockSequence's partition from len(codeword)
// alone: codeword is some number of full largestBlock blocks followed by at
// most one shorter tail block, so len(codeword) mod largestBlock.n names
// the tail (0 meaning no tail, otherwise one of the smaller family sizes).
// This only works because blockSequence never emits two sub-maximal blocks
// back to back; a naive "largest n that fits the remaining bits" decode,
// tried here previously, cannot tell such a run apart from one bigger
// block and desynchronizes.
func decodeHamming(codeword bitstream.Bits) bitstream.Bits {
	full := len(codeword) / largestBlock.n
	tailLen := len(codeword) % largestBlock.n

	var tail *hammingBlock
	for i := range hammingBlocks {
		if hammingBlocks[i].n == tailLen {
			tail = &hammingBlocks[i]
			break
		}
	}
	// tailLen == 0 leaves tail nil: no tail block, just full-sized ones.
	// A nonzero tailLen matching no family member means the codeword was
	// never produced by blockSequence; the undersized remainder is dropped.

	var out bitstream.Bits
	idx := 0
	for i := 0; i < full; i++ {
		out = append(out, decodeHammingBlock(codeword[idx:idx+largestBlock.n], largestBlock)...)
		idx += largestBlock.n
	}
	if tail != nil {
		out = append(out, decodeHammingBlock(codeword[idx:idx+tail.n], *tail)...)
	}
	return out
}

// decodeHammingBlock computes the Hamming syndrome over a 1-indexed n-bit
// block, flips the indicated bit if the syndrome names a valid position,
// and returns the block's data bits in order.
func decodeHammingBlock(block bitstream.Bits, blk hammingBlock) bitstream.Bits {
	received := make(bitstream.Bits, blk.n+1)
	copy(received[1:], block)
	isParity := make([]bool, blk.n+1)
	for i := 0; i < blk.p; i++ {
		isParity[1<<uint(i)] = true
	}

	syndrome := 0
	for i := 0; i < blk.p; i++ {
		pp := 1 << uint(i)
		var x byte
		for pos := 1; pos <= blk.n; pos++ {
			if pos&pp != 0 {
				x ^= received[pos]
			}
		}
		if x != 0 {
			syndrome |= pp
		}
	}
	if syndrome != 0 && syndrome <= blk.n {
		received[syndrome] ^= 1
		Log.Debug("hamming corrected single-bit error", "position", syndrome)
	}

	data := make(bitstream.Bits, blk.k)
	di := 0
	for pos := 1; pos <= blk.n; pos++ {
		if !isParity[pos] {
			data[di] = received[pos]
			di++
		}
	}
	return data
}
