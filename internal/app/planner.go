package app

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"time"

	"phostamp/internal/domain"
	"phostamp/internal/logging"
)

type Planner struct {
	FS     FileSystem
	Logger logging.Logger
}

// Plan scans the direct children of folder, keeps regular files whose
// lowercased extension is in the set, orders them by full path, and assigns
// start + i*increment to the file at sorted position i.
//
// The ordering is a plain byte-wise string sort: case-sensitive and not
// numeric-aware, so "img10.jpg" sorts before "img9.jpg". The whole point of
// the tool is that this order becomes the chronological order, so it must
// stay a pure function of the path set.
func (p *Planner) Plan(ctx context.Context, folder string, exts domain.ExtensionSet, start time.Time, increment time.Duration) (domain.Plan, error) {
	if p.FS == nil {
		return domain.Plan{}, errors.New("planner requires FS")
	}

	stop := p.Logger.Measure("Planning assignments")
	defer stop()

	select {
	case <-ctx.Done():
		return domain.Plan{}, ctx.Err()
	default:
	}

	entries, err := p.FS.ReadDir(folder)
	if err != nil {
		return domain.Plan{}, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !exts.Contains(filepath.Ext(entry.Name())) {
			continue
		}
		paths = append(paths, filepath.Join(folder, entry.Name()))
	}
	p.Logger.Verbosef("Found %d matching files out of %d entries in %s", len(paths), len(entries), folder)

	sort.Strings(paths)

	items := make([]domain.Assignment, 0, len(paths))
	for i, path := range paths {
		items = append(items, domain.Assignment{
			Entry: domain.NewFileEntry(path),
			At:    start.Add(time.Duration(i) * increment),
		})
	}

	return domain.Plan{
		Items:     items,
		Start:     start,
		Increment: increment,
	}, nil
}
