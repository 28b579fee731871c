// Package version reports the numkit build.
//
// Values are injected at link time and fall back to the module build
// info recorded by the Go toolchain:
//
//	go build -ldflags "-X github.com/kbukum/numkit/version.Version=1.0.0" ./cmd/numkit
package version
