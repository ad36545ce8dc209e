/*
NAME
  crc.go

DESCRIPTION
  crc.go implements CRC-32 by explicit bitwise polynomial division against
  the 33-bit generator fixed in the source spec, rather than a reflected,
  table-driven CRC-32 variant. This keeps the implementation bit-exact
  against the spec's worked example (an all-zero payload produces an
  all-zero remainder) at the cost of the throughput a table like
  container/mts/psi's AddCRC/UpdateCRC would give; see DESIGN.md.

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

// crc32Degree is the degree of the generator polynomial: the CRC occupies
// this many low-order bits of the remainder.
const crc32Degree = 32

// crc32Poly is the 33-bit generator polynomial from the source spec,
// MSB-first: 1 0000 0100 1100 0001 0001 1101 1011 0111. This is NOT the
// reflected IEEE CRC-32 polynomial used by hash/crc32 or
// container/mts/psi.AddCRC; no reflection and no final XOR are applied,
// per the spec's explicit requirement.
var crc32Poly = bitstream.FromInts(
	1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0,
	1, 0, 0, 0, 1, 1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 1, 1,
)

// crcRemainder performs in-place bitwise XOR division of data against
// crc32Poly and returns the low crc32Degree bits of the result. data must
// be at least crc32Degree bits long.
func crcRemainder(data bitstream.Bits) bitstream.Bits {
	temp := data.Clone()
	for i := 0; i <= len(temp)-crc32Degree-1; i++ {
		if temp[i] == 1 {
			for j := 0; j < len(crc32Poly); j++ {
				temp[i+j] ^= crc32Poly[j]
			}
		}
	}
	return temp[len(temp)-crc32Degree:]
}

func encodeCRC(bits bitstream.Bits) bitstream.Bits {
	padded := make(bitstream.Bits, len(bits)+crc32Degree)
	copy(padded, bits)
	rem := crcRemainder(padded)
	out := make(bitstream.Bits, len(bits)+crc32Degree)
	copy(out, bits)
	copy(out[len(bits):], rem)
	return out
}

func decodeCRC(codeword bitstream.Bits) (bitstream.Bits, error) {
	rem := crcRemainder(codeword)
	data := codeword[:len(codeword)-crc32Degree].Clone()
	for _, b := range rem {
		if b != 0 {
			return data, ErrCRCMismatch
		}
	}
	return data, nil
}
