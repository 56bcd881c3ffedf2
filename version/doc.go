// Package version provides build version information for the genc binary.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/genc/version.Version=1.0.0" ./cmd/genc
//
// Builds without ldflags fall back to the module version and VCS stamps
// recorded by the Go toolchain.
package version
