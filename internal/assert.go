// assert.go implements the programming-contract assertion.

// Package internal holds helpers shared by avhwgate packages but not exported.
package internal

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avhwgate/logger"
)

// Assert panics if mustBeTrue is false.
//
// It is used for programming-contract violations only (like releasing a
// buffer reference that was never acquired); such conditions are never
// returned as errors.
func Assert(
	ctx context.Context,
	mustBeTrue bool,
	format string,
	args ...any,
) {
	if mustBeTrue {
		return
	}

	msg := fmt.Sprintf("assertion failed: "+format, args...)
	logger.Errorf(ctx, "%s", msg)
	panic(msg)
}
