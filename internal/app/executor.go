package app

import (
	"context"
	"errors"
	"time"

	"phostamp/internal/domain"
	appErrors "phostamp/internal/errors"
)

// ProgressFunc is called after each successful assignment.
type ProgressFunc func(done, total int, entry domain.FileEntry, at time.Time)

type Executor struct {
	Setter     TimestampSetter
	OnProgress ProgressFunc
}

// Apply walks the plan in order and sets each file's timestamps. The first
// failure aborts the whole run: a skipped file would break the monotonic
// ordering, and silently producing a non-monotonic result is worse than
// stopping. Files updated before the failure keep their new timestamps.
func (e *Executor) Apply(ctx context.Context, plan domain.Plan) error {
	if e.Setter == nil {
		return errors.New("executor requires Setter")
	}

	total := len(plan.Items)
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.Setter.Set(ctx, item.Entry.Path, item.At); err != nil {
			return appErrors.Wrap(appErrors.SetFailure, "set", item.Entry.Path, err)
		}
		if e.OnProgress != nil {
			e.OnProgress(i+1, total, item.Entry, item.At)
		}
	}
	return nil
}
