package app

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"phostamp/internal/domain"
)

type mockFS struct {
	entries map[string][]mockEntry
}

type mockEntry struct {
	name  string
	isDir bool
}

func (m mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	var out []fs.DirEntry
	for _, entry := range m.entries[path] {
		out = append(out, mockDirEntry{name: entry.name, isDir: entry.isDir})
	}
	return out, nil
}

func (m mockFS) Stat(path string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

type mockDirEntry struct {
	name  string
	isDir bool
}

func (m mockDirEntry) Name() string { return m.name }
func (m mockDirEntry) IsDir() bool  { return m.isDir }
func (m mockDirEntry) Type() fs.FileMode {
	if m.isDir {
		return fs.ModeDir
	}
	return 0
}
func (m mockDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

func TestPlannerAssignsInSortedOrder(t *testing.T) {
	folder := "/photos"
	mock := mockFS{entries: map[string][]mockEntry{
		folder: {
			{name: "b.jpg"},
			{name: "a.jpg"},
			{name: "c.png"},
			{name: "notes.txt"},
		},
	}}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	planner := Planner{FS: mock}

	plan, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), start, 60*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(plan.Items))
	}

	expected := []struct {
		name string
		at   time.Time
	}{
		{"a.jpg", start},
		{"b.jpg", start.Add(time.Hour)},
		{"c.png", start.Add(2 * time.Hour)},
	}
	for i, want := range expected {
		if plan.Items[i].Entry.Name != want.name {
			t.Fatalf("item %d: expected %s, got %s", i, want.name, plan.Items[i].Entry.Name)
		}
		if !plan.Items[i].At.Equal(want.at) {
			t.Fatalf("item %d: expected %v, got %v", i, want.at, plan.Items[i].At)
		}
		if plan.Items[i].Entry.Path != filepath.Join(folder, want.name) {
			t.Fatalf("item %d: unexpected path %s", i, plan.Items[i].Entry.Path)
		}
	}
}

func TestPlannerSortIsLexicographicNotNumeric(t *testing.T) {
	folder := "/photos"
	mock := mockFS{entries: map[string][]mockEntry{
		folder: {
			{name: "img9.jpg"},
			{name: "img10.jpg"},
		},
	}}

	planner := Planner{FS: mock}
	plan, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), time.Now(), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Items[0].Entry.Name != "img10.jpg" || plan.Items[1].Entry.Name != "img9.jpg" {
		t.Fatalf("expected img10.jpg before img9.jpg, got %s, %s", plan.Items[0].Entry.Name, plan.Items[1].Entry.Name)
	}
}

func TestPlannerFiltersByExtension(t *testing.T) {
	folder := "/photos"
	mock := mockFS{entries: map[string][]mockEntry{
		folder: {
			{name: "shot.JPG"},
			{name: "scan.bmp"},
			{name: "README"},
			{name: "raw.NEF"},
			{name: "subdir.jpg", isDir: true},
		},
	}}

	planner := Planner{FS: mock}
	plan, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), time.Now(), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan.Items))
	}
	if plan.Items[0].Entry.Name != "raw.NEF" || plan.Items[1].Entry.Name != "shot.JPG" {
		t.Fatalf("unexpected items: %s, %s", plan.Items[0].Entry.Name, plan.Items[1].Entry.Name)
	}
}

func TestPlannerSpacingInvariant(t *testing.T) {
	folder := "/photos"
	names := []string{"e.jpg", "a.jpg", "c.jpg", "b.jpg", "d.jpg"}
	var entries []mockEntry
	for _, name := range names {
		entries = append(entries, mockEntry{name: name})
	}
	mock := mockFS{entries: map[string][]mockEntry{folder: entries}}

	increment := 15 * time.Minute
	planner := Planner{FS: mock}
	plan, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), time.Now(), increment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(plan.Items); i++ {
		gap := plan.Items[i].At.Sub(plan.Items[i-1].At)
		if gap != increment {
			t.Fatalf("gap between items %d and %d is %v, expected %v", i-1, i, gap, increment)
		}
	}
}

func TestPlannerIsDeterministic(t *testing.T) {
	folder := "/photos"
	mock := mockFS{entries: map[string][]mockEntry{
		folder: {
			{name: "z.jpg"},
			{name: "m.jpg"},
			{name: "a.jpg"},
		},
	}}

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	planner := Planner{FS: mock}

	first, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), start, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), start, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Items) != len(second.Items) {
		t.Fatalf("plans differ in length: %d vs %d", len(first.Items), len(second.Items))
	}
	for i := range first.Items {
		if first.Items[i] != second.Items[i] {
			t.Fatalf("plans differ at %d: %v vs %v", i, first.Items[i], second.Items[i])
		}
	}
}

func TestPlannerEmptyDirectory(t *testing.T) {
	folder := "/empty"
	mock := mockFS{entries: map[string][]mockEntry{folder: nil}}

	planner := Planner{FS: mock}
	plan, err := planner.Plan(context.Background(), folder, domain.DefaultExtensions(), time.Now(), time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Items) != 0 {
		t.Fatalf("expected empty plan, got %d items", len(plan.Items))
	}
}
