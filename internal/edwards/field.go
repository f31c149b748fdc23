package edwards

import "math/big"

// fieldPrime is p = 2^256 - 189.
var fieldPrime = new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(189))

// sqrtExponent is (p+1)/4; p = 3 (mod 4), so v^((p+1)/4) is a square
// root of v whenever v is a quadratic residue.
var sqrtExponent = new(big.Int).Rsh(
	new(big.Int).Add(fieldPrime, big.NewInt(1)), 2)

func modAdd(a, b *big.Int) *big.Int {
	s := new(big.Int).Add(a, b)
	return s.Mod(s, fieldPrime)
}

func modSub(a, b *big.Int) *big.Int {
	s := new(big.Int).Sub(a, b)
	return s.Mod(s, fieldPrime)
}

func modMul(a, b *big.Int) *big.Int {
	s := new(big.Int).Mul(a, b)
	return s.Mod(s, fieldPrime)
}

// modInv returns a^-1 mod p, or nil when a = 0 (mod p).
func modInv(a *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, fieldPrime)
}

func modPow(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, fieldPrime)
}

// modSqrt returns the square root of v mod p whose least significant
// bit matches lsb, or nil when v is not a quadratic residue or when
// the only root is 0 and an odd root was requested.
func modSqrt(v *big.Int, lsb bool) *big.Int {
	v = new(big.Int).Mod(v, fieldPrime)
	x := modPow(v, sqrtExponent)
	if modMul(x, x).Cmp(v) != 0 {
		return nil
	}
	want := uint(0)
	if lsb {
		want = 1
	}
	if x.Bit(0) != want {
		if x.Sign() == 0 {
			return nil
		}
		x.Sub(fieldPrime, x)
	}
	return x
}
