package worker

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BatchProcessor scans many files concurrently through one shared
// ScanFunc.
type BatchProcessor struct {
	scan        ScanFunc
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(scan ScanFunc, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		scan:        scan,
		concurrency: concurrency,
	}
}

// ProcessPaths scans the given files concurrently and returns one result
// per path, sorted by path.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []FileResult {
	if len(paths) == 0 {
		return nil
	}

	pool := NewPool(ctx, b.concurrency, b.scan)
	pool.Start()

	go func() {
		for _, path := range paths {
			pool.Submit(path)
		}
		pool.Close()
	}()

	results := pool.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results
}

// ProcessTarget scans whatever target names: a directory is walked for
// regular files, anything else is read as a manifest listing one path
// per line.
func (b *BatchProcessor) ProcessTarget(ctx context.Context, target string) ([]FileResult, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat target: %w", err)
	}

	var paths []string
	if info.IsDir() {
		paths, err = CollectFiles(target)
	} else {
		paths, err = ReadManifest(target)
	}
	if err != nil {
		return nil, err
	}

	return b.ProcessPaths(ctx, paths), nil
}

// CollectFiles walks dir and returns every regular file under it, sorted
func CollectFiles(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadManifest reads file paths from a manifest, one per line. Blank
// lines and # comments are skipped, duplicates collapse to the first
// occurrence.
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return paths, nil
}
