package domain

import "fmt"

const (
	bytesPerKB = 1_000
	bytesPerMB = 1_000_000
)

// FormatSize renders a byte length with decimal units and two decimals.
// Lengths from one million bytes upward are reported in MB, smaller ones in KB.
func FormatSize(n uint64) string {
	if n >= bytesPerMB {
		return fmt.Sprintf("%.2f MB", float64(n)/bytesPerMB)
	}
	return fmt.Sprintf("%.2f KB", float64(n)/bytesPerKB)
}
