package main

import (
	"context"
	"time"
)

// withOptionalTimeout returns context.Background() unbounded when d is
// zero, or a context.WithTimeout deadline otherwise.
func withOptionalTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), d)
}
