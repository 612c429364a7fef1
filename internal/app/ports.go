package app

import (
	"context"
	"io/fs"
	"time"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
}

// TimestampSetter applies a target timestamp to one file. Implementations
// cover modification time and, where the platform supports it, creation time.
type TimestampSetter interface {
	Set(ctx context.Context, path string, t time.Time) error
}
