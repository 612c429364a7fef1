//go:build darwin

package settime

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrSetFileNotFound is returned when the SetFile utility is missing.
// SetFile ships with the Xcode Command Line Tools (xcode-select --install).
var ErrSetFileNotFound = errors.New("SetFile not found on PATH; install the Xcode Command Line Tools (xcode-select --install)")

const setFileLayout = "01/02/2006 15:04:05"

const creationSupported = true

func checkCreationTool() error {
	if _, err := exec.LookPath("SetFile"); err != nil {
		return ErrSetFileNotFound
	}
	return nil
}

func setCreationTime(ctx context.Context, path string, t time.Time) error {
	setFilePath, err := exec.LookPath("SetFile")
	if err != nil {
		return ErrSetFileNotFound
	}
	if err := runQuiet(ctx, setFilePath, "-d", t.Local().Format(setFileLayout), path); err != nil {
		return fmt.Errorf("creation time: %w", err)
	}
	return nil
}
