package mathutil

// Add returns the sum of two integers. Overflow wraps.
func Add(a, b int) int {
	return a + b
}
