// File: helpers.go
// Role: small shared helpers for error wrapping, mirroring
// lvlath/builder's builderErrorf (wrap a sentinel with call-site context,
// keep errors.Is working via %w).
package dag

import "fmt"

// wrapf wraps sentinel with a formatted context message, preserving it for
// errors.Is while adding the detail callers need to locate the offending
// node without parsing strings, and logs it through ctx's Logger before
// returning — spec.md §7: "Log events accompany every error with the
// offending node's identity."
func wrapf(ctx *Context, sentinel error, format string, args ...interface{}) error {
	err := fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
	ctx.Logger().Errorf("%s", err)
	return err
}
