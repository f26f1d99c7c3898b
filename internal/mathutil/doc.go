// Package mathutil provides the three elementary operations the demo exercises.
//
// The operations are independent of each other:
//   - Add sums two integers (overflow wraps, unguarded)
//   - SquareRoot computes a guarded square root, signalling negative input
//     with the Sentinel value and a diagnostic line
//   - PrintSequence writes a Sequence as space-terminated elements
//
// Sqrt is the error-returning form of SquareRoot. Callers that want a
// distinct error channel use Sqrt; callers that compare by value use
// SquareRoot and IsSentinel.
//
// No function holds state. Every call is a single pass over its inputs.
package mathutil
