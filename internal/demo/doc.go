// Package demo is the fixed entry script of mathdemo.
//
// Run executes three steps in order with literal inputs:
//  1. Add(5, 10), printed as "Sum of 5 and 10: 15"
//  2. SquareRoot(16), printed as "Square root of 16: 4" unless the guard fired
//  3. Sequence{1, 2, 3, 4, 5}, printed as "Array elements: 1 2 3 4 5 "
//
// Compute performs the same steps without printing and returns a Report, so
// the CLI can render a run in any output format.
package demo
