//go:build !amd64 && !arm64

package scanner

// hasWideLanes returns false for unsupported architectures
func hasWideLanes() bool {
	return false
}
