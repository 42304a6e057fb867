// Package field implements arithmetic in the prime field F_p used by
// Curve25519, where p = 2^255-19. It mirrors the modular-arithmetic
// routines of the Rust source this package was ported from: the prime
// is computed once and reused, and every operation returns a freshly
// reduced value in [0, p).
package field

import (
	"fmt"
	"math/big"
)

// prime is 2^255 - 19, computed once at package init and never mutated.
var prime = func() *big.Int {
	p, ok := new(big.Int).SetString(
		"7FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFED",
		16,
	)
	if !ok {
		panic("field: failed to parse prime modulus")
	}
	return p
}()

// Prime returns a copy of the Curve25519 field prime, 2^255-19.
func Prime() *big.Int {
	return new(big.Int).Set(prime)
}

// DomainError reports an arithmetic input that falls outside the
// operation's contract, such as Sub being asked to subtract a value
// greater than the field prime.
type DomainError struct {
	Op    string
	Value *big.Int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("field: %s: value %s is out of domain", e.Op, e.Value.Text(16))
}

// Element is a nonnegative integer canonically reduced modulo the field
// prime. The zero value is not a valid Element; use New or one of the
// arithmetic operations to obtain one.
type Element struct {
	v *big.Int
}

// New reduces n modulo p and wraps it as a field Element. n may be
// negative or larger than p; the result is always in [0, p).
func New(n *big.Int) Element {
	r := new(big.Int).Mod(n, prime)
	return Element{v: r}
}

// FromUint64 wraps a small nonnegative integer as a field Element.
func FromUint64(n uint64) Element {
	return New(new(big.Int).SetUint64(n))
}

// Int returns the element's value as a *big.Int. The caller receives a
// copy and may mutate it freely.
func (e Element) Int() *big.Int {
	return new(big.Int).Set(e.v)
}

// Bytes returns the element's canonical big-endian encoding.
func (e Element) Bytes() []byte {
	return e.v.Bytes()
}

// IsZero reports whether the element is the additive identity.
func (e Element) IsZero() bool {
	return e.v.Sign() == 0
}

// Add returns x + y mod p.
func Add(x, y Element) Element {
	return New(new(big.Int).Add(x.v, y.v))
}

// Sub returns x - y mod p, computed as (x + (p - y)) mod p per the
// source's identity -y mod p == (p - y) mod p. y must not exceed p; a
// caller that subtracts something larger (e.g. 2^255 when p = 2^255-19)
// violates the contract and gets a DomainError rather than a silently
// wrapped result. This is preserved from the source on purpose — see
// SPEC_FULL.md §4.1.
func Sub(x, y Element) (Element, error) {
	if y.v.Cmp(prime) > 0 {
		return Element{}, &DomainError{Op: "sub", Value: y.v}
	}
	diff := new(big.Int).Sub(prime, y.v)
	return New(new(big.Int).Add(x.v, diff)), nil
}

// Mul returns x * y mod p.
func Mul(x, y Element) Element {
	return New(new(big.Int).Mul(x.v, y.v))
}

// Square returns x * x mod p.
func Square(x Element) Element {
	return Mul(x, x)
}

// Pow returns x^e mod p using right-to-left square-and-multiply: scan
// e from its least significant bit, squaring
// the base every iteration and folding it into the accumulator whenever
// the current bit is set.
func Pow(x Element, e *big.Int) Element {
	result := FromUint64(1)
	base := x
	exp := new(big.Int).Set(e)
	one := big.NewInt(1)
	zero := big.NewInt(0)
	for exp.Cmp(zero) != 0 {
		if new(big.Int).And(exp, one).Sign() != 0 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		exp.Rsh(exp, 1)
	}
	return result
}

// Invert returns x^(p-2) mod p, the multiplicative inverse of x under
// Fermat's little theorem. It is undefined for x = 0 (0^(p-2) mod p is
// 0, not an inverse); callers must ensure x != 0 themselves, which the
// ladder guarantees for any non-identity input (see design notes, open
// question 4).
func Invert(x Element) Element {
	exp := new(big.Int).Sub(prime, big.NewInt(2))
	return Pow(x, exp)
}
