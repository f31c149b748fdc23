package edwards

import (
	"errors"
	"math/big"
)

// curveD is the Edwards coefficient d of NUMS-256.
var curveD = big.NewInt(15343)

// groupOrder is r = 2^254 - 87175310462106073678594642380840586067,
// the order of the prime-order subgroup (the curve has cofactor 4).
var groupOrder = func() *big.Int {
	delta, ok := new(big.Int).SetString("87175310462106073678594642380840586067", 10)
	if !ok {
		panic("edwards: bad group order constant")
	}
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 254), delta)
}()

// generator is the base point: y = -4 mod p with the even choice of x.
var generator = func() Point {
	y := new(big.Int).Sub(fieldPrime, big.NewInt(4))
	x := xFromY(y, false)
	if x == nil {
		panic("edwards: generator is not on the curve")
	}
	return Point{X: x, Y: y}
}()

// ErrInvalidPoint reports a compressed encoding that does not decode to
// a point in the prime-order subgroup.
var ErrInvalidPoint = errors.New("edwards: invalid point encoding")

// Order returns a copy of the group order r.
func Order() *big.Int { return new(big.Int).Set(groupOrder) }

// FieldPrime returns a copy of the field prime p.
func FieldPrime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Generator returns the base point G.
func Generator() Point { return generator.clone() }

// IsOnCurve reports whether (x, y) satisfies the curve equation.
func IsOnCurve(x, y *big.Int) bool {
	x2 := modMul(x, x)
	y2 := modMul(y, y)
	lhs := modAdd(x2, y2)
	rhs := modAdd(big.NewInt(1), modMul(curveD, modMul(x2, y2)))
	return lhs.Cmp(rhs) == 0
}

// xFromY solves x^2 = (1 - y^2) / (1 - d*y^2) mod p for the root with
// the requested parity, returning nil when no such root exists.
func xFromY(y *big.Int, xOdd bool) *big.Int {
	y2 := modMul(y, y)
	num := modSub(big.NewInt(1), y2)
	den := modInv(modSub(big.NewInt(1), modMul(curveD, y2)))
	if den == nil {
		return nil
	}
	return modSqrt(modMul(num, den), xOdd)
}

// Decompress reconstructs the point with the given y-coordinate and
// x-parity bit. It fails with ErrInvalidPoint when y is out of range,
// when no matching square root exists, or when the decoded point lies
// outside the prime-order subgroup (the r-torsion check; points in a
// small subgroup must never be accepted).
func Decompress(y *big.Int, xOdd bool) (Point, error) {
	if y.Sign() < 0 || y.Cmp(fieldPrime) >= 0 {
		return Point{}, ErrInvalidPoint
	}
	x := xFromY(y, xOdd)
	if x == nil {
		return Point{}, ErrInvalidPoint
	}
	p := Point{X: x, Y: new(big.Int).Set(y)}
	if !p.mulNoReduce(groupOrder).IsZero() {
		return Point{}, ErrInvalidPoint
	}
	return p, nil
}
