package domain

import "testing"

func TestDefaultExtensionsMembership(t *testing.T) {
	set := DefaultExtensions()

	for _, ext := range []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".heic", ".nef", ".cr2", ".arw"} {
		if !set.Contains(ext) {
			t.Fatalf("expected %s to be included", ext)
		}
	}
	if set.Contains(".bmp") {
		t.Fatal("expected .bmp to be excluded")
	}
	if set.Contains("") {
		t.Fatal("expected files without extension to be excluded")
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	set := DefaultExtensions()
	if !set.Contains(".JPG") {
		t.Fatal("expected .JPG to match .jpg")
	}
}

func TestNewExtensionSetNormalizes(t *testing.T) {
	set := NewExtensionSet("GIF", " .Webp ", "", ".png")
	if set.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", set.Len())
	}
	if !set.Contains(".gif") || !set.Contains(".webp") || !set.Contains(".png") {
		t.Fatalf("unexpected members: %v", set.Slice())
	}
}

func TestNewFileEntryLowercasesExt(t *testing.T) {
	entry := NewFileEntry("/photos/DSC0001.JPG")
	if entry.Name != "DSC0001.JPG" {
		t.Fatalf("unexpected name: %s", entry.Name)
	}
	if entry.Ext != ".jpg" {
		t.Fatalf("unexpected ext: %s", entry.Ext)
	}
}
