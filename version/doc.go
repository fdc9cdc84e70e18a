// Package version reports which confkit build is linked into a binary.
//
// The version comes from the module graph recorded by the Go toolchain and
// can be pinned at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/confkit/version.Version=v1.0.0"
package version
