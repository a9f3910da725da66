// Package runtime defines the Runner interface for running a generated
// skill's tests and provides the Go implementation. DispatchRuntime selects a
// runner by name.
package runtime
