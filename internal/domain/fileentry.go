package domain

import (
	"path/filepath"
	"strings"
)

type FileEntry struct {
	Path string
	Name string
	Ext  string
}

func NewFileEntry(path string) FileEntry {
	name := filepath.Base(path)
	return FileEntry{
		Path: path,
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
	}
}
