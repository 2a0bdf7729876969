//go:build !mobile

package mobile

// Dummy keeps the package importable outside mobile builds.
func Dummy() {}
