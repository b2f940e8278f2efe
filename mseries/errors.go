package mseries

import "errors"

// Sentinel errors returned by the multiseries algebra.
var (
	// ErrBadBasis indicates a basis with an empty or duplicated scale name.
	ErrBadBasis = errors.New("mseries: basis names must be non-empty and distinct")

	// ErrBadIndex indicates a scale index outside [0, len(basis)).
	ErrBadIndex = errors.New("mseries: scale index out of basis range")

	// ErrBadDepth indicates an operation that needs at least one basis
	// level was given a bare-constant (depth 0) expansion.
	ErrBadDepth = errors.New("mseries: operation requires a non-empty basis")

	// ErrDepthMismatch indicates two expansions over different basis
	// depths were combined, or a coefficient sits at the wrong depth.
	ErrDepthMismatch = errors.New("mseries: basis depths do not match")

	// ErrUnordered indicates explicitly supplied terms whose exponents
	// are not strictly decreasing.
	ErrUnordered = errors.New("mseries: exponents must be strictly decreasing")

	// ErrNotSmall indicates Apply was given a multiseries whose leading
	// exponent is not strictly negative, i.e. the substituted quantity
	// does not tend to zero, so the power series would diverge.
	ErrNotSmall = errors.New("mseries: substituted value must tend to zero (negative leading exponent)")

	// ErrZeroDivision indicates Invert reached a zero scalar coefficient
	// at some basis depth.
	ErrZeroDivision = errors.New("mseries: cannot invert a value with zero leading coefficient")

	// ErrZeroValue indicates an inspection that needs a non-zero value
	// (such as Leading) was given one that trims to zero.
	ErrZeroValue = errors.New("mseries: value is identically zero")

	// ErrNegativePower indicates Pow was called with a negative exponent;
	// use Invert together with Pow for negative powers.
	ErrNegativePower = errors.New("mseries: power must be non-negative")
)
