//go:build !darwin

package settime

import (
	"context"
	"time"
)

const creationSupported = false

func checkCreationTool() error {
	return nil
}

// No creation-time concept on this platform; the modification time set by
// touch is the whole update. The caller surfaces this limitation once at
// startup instead of failing every file.
func setCreationTime(ctx context.Context, path string, t time.Time) error {
	return nil
}
