package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/readcoil/strictstrings/internal/model"
)

func okScan(ctx context.Context, path string) (*model.Report, error) {
	return &model.Report{Input: path}, nil
}

func failScan(ctx context.Context, path string) (*model.Report, error) {
	return nil, errors.New("scan error")
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	processor := NewBatchProcessor(okScan, 2)

	paths := []string{"c.bin", "a.bin", "b.bin"}
	results := processor.ProcessPaths(context.Background(), paths)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Results come back sorted by path regardless of completion order
	want := []string{"a.bin", "b.bin", "c.bin"}
	for i, res := range results {
		if res.Path != want[i] {
			t.Errorf("expected %s at index %d, got %s", want[i], i, res.Path)
		}
		if res.Err != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Err)
		}
		if res.Report == nil {
			t.Errorf("expected report for %s", res.Path)
		}
	}
}

func TestBatchProcessor_ProcessPaths_Error(t *testing.T) {
	processor := NewBatchProcessor(failScan, 2)

	results := processor.ProcessPaths(context.Background(), []string{"sample.bin"})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Report != nil {
		t.Error("expected nil report on error")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	processor := NewBatchProcessor(okScan, 2)

	results := processor.ProcessPaths(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessTarget_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.bin"), []byte{0x7f, 0x45}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "a.bin"), []byte{0x4d, 0x5a}, 0644); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(okScan, 2)
	results, err := processor.ProcessTarget(context.Background(), dir)
	if err != nil {
		t.Fatalf("ProcessTarget failed: %v", err)
	}

	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessTarget_Manifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "samples.txt")
	content := "one.bin\n# comment\n\ntwo.bin\none.bin\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(okScan, 2)
	results, err := processor.ProcessTarget(context.Background(), manifest)
	if err != nil {
		t.Fatalf("ProcessTarget failed: %v", err)
	}

	if len(results) != 2 {
		t.Errorf("expected 2 results after dedup, got %d", len(results))
	}
}

func TestBatchProcessor_ProcessTarget_Missing(t *testing.T) {
	processor := NewBatchProcessor(okScan, 2)

	if _, err := processor.ProcessTarget(context.Background(), "no_such_target"); err == nil {
		t.Error("expected error for missing target, got nil")
	}
}

func TestCollectFiles_FindsRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.bin"), []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "empty-dir"), 0755); err != nil {
		t.Fatal(err)
	}

	paths, err := CollectFiles(dir)
	if err != nil {
		t.Fatalf("CollectFiles failed: %v", err)
	}

	if len(paths) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(paths), paths)
	}
	if filepath.Base(paths[0]) != "sample.bin" {
		t.Errorf("expected sample.bin, got %s", paths[0])
	}
}

func TestReadManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "samples.txt")
	content := "first.bin\n# comment\nsecond.bin\n   \n  third.bin  \n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	expected := []string{"first.bin", "second.bin", "third.bin"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}
	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, path)
		}
	}
}

func TestReadManifest_Deduplicates(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "samples.txt")
	if err := os.WriteFile(manifest, []byte("same.bin\nsame.bin\n"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}

	if len(paths) != 1 {
		t.Errorf("expected 1 path after deduplication, got %d", len(paths))
	}
}

func TestReadManifest_NonExistent(t *testing.T) {
	if _, err := ReadManifest("non_existent_file.txt"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}
