package logger

import (
	"context"
)

// Recover turns an unexpected panic into a Fatal report. FatalError
// panics pass through untouched.
//
//	defer logger.Recover(ctx)
func Recover(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(FatalError); ok {
		panic(r)
	}
	// Skip Recover and the runtime's panic frame
	FatalWithStackSkip(ctx, 2, "panic: %v", r)
}
