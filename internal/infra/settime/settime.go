// Package settime sets file timestamps by shelling out to the OS utilities
// the platform provides: touch for access/modification times everywhere,
// SetFile for creation times on darwin.
package settime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrTouchNotFound is returned by Check when touch is missing from PATH.
var ErrTouchNotFound = errors.New("touch not found on PATH")

const touchLayout = "200601021504.05"

type ExecSetter struct{}

// Check verifies the required utilities exist before any file is mutated.
func (ExecSetter) Check() error {
	if _, err := exec.LookPath("touch"); err != nil {
		return ErrTouchNotFound
	}
	return checkCreationTool()
}

// CreationSupported reports whether this platform can set creation times.
func (ExecSetter) CreationSupported() bool {
	return creationSupported
}

// Set applies t as the access and modification time, then as the creation
// time where the platform supports it. Both steps must succeed; a failed
// creation step leaves the modification time already changed, which is
// accepted — there is no rollback.
func (s ExecSetter) Set(ctx context.Context, path string, t time.Time) error {
	if err := runQuiet(ctx, "touch", "-a", "-m", "-t", t.Local().Format(touchLayout), path); err != nil {
		return err
	}
	return setCreationTime(ctx, path, t)
}

// runQuiet runs a command with captured stderr and folds the tail of the
// output into the returned error.
func runQuiet(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderrBuf.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, lastLine(msg))
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
