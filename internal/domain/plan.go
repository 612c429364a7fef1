package domain

import "time"

// Assignment pairs one file with the timestamp it will receive.
type Assignment struct {
	Entry FileEntry
	At    time.Time
}

// Plan is the ordered sequence of assignments for one run. Items[i].At is
// always Start.Add(i * Increment), so the sequence is strictly increasing
// and evenly spaced.
type Plan struct {
	Items     []Assignment
	Start     time.Time
	Increment time.Duration
}
