package sha3

import "math/bits"

const keccakRounds = 24

// rhoOffsets[y][x] is the left-rotation applied to lane (x, y) by the rho
// step, per FIPS 202 table 2.
var rhoOffsets = [5][5]int{
	{0, 1, 62, 28, 27},
	{36, 44, 6, 55, 20},
	{3, 10, 43, 25, 39},
	{41, 45, 15, 21, 8},
	{18, 2, 61, 56, 14},
}

// roundConstants[r] is XORed into lane (0, 0) by the iota step of round r.
var roundConstants = [keccakRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation to a.
// The state is indexed a[y][x], so the lane holding bit (x, y, z) is
// a[y][x] and the bit itself is a[y][x]>>z&1.
func keccakF1600(a *[5][5]uint64) {
	for r := 0; r < keccakRounds; r++ {
		// theta
		var c, d [5]uint64
		for x := 0; x < 5; x++ {
			c[x] = a[0][x] ^ a[1][x] ^ a[2][x] ^ a[3][x] ^ a[4][x]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				a[y][x] ^= d[x]
			}
		}

		// rho
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				a[y][x] = bits.RotateLeft64(a[y][x], rhoOffsets[y][x])
			}
		}

		// pi, via a scratch copy of the whole state
		var b [5][5]uint64
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				b[y][x] = a[x][(x+3*y)%5]
			}
		}
		*a = b

		// chi, each row against a snapshot of itself
		for y := 0; y < 5; y++ {
			row := a[y]
			for x := 0; x < 5; x++ {
				a[y][x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// iota
		a[0][0] ^= roundConstants[r]
	}
}
