package mathutil

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Sentinel is returned by SquareRoot when the input is negative.
// No non-negative input has a square root of -1.
const Sentinel = -1.0

// NegativeInputMessage is the diagnostic line SquareRoot writes on a guard violation.
const NegativeInputMessage = "Error: Negative input for square root."

// ErrNegativeInput is returned by Sqrt for inputs below zero.
var ErrNegativeInput = errors.New("negative input for square root")

// Sqrt returns the square root of x.
// Returns ErrNegativeInput if x < 0. Zero is not an error.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("sqrt(%g): %w", x, ErrNegativeInput)
	}
	return math.Sqrt(x), nil
}

// SquareRoot returns the square root of x, or Sentinel if x is negative.
//
// On negative input it writes NegativeInputMessage to diag before returning.
// A nil diag discards the diagnostic.
func SquareRoot(diag io.Writer, x float64) float64 {
	root, err := Sqrt(x)
	if err != nil {
		if diag != nil {
			fmt.Fprintln(diag, NegativeInputMessage)
		}
		return Sentinel
	}
	return root
}

// IsSentinel reports whether v is the SquareRoot error sentinel.
func IsSentinel(v float64) bool {
	return v == Sentinel
}
