package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/readcoil/strictstrings/internal/cache"
	"github.com/readcoil/strictstrings/internal/dedupe"
	"github.com/readcoil/strictstrings/internal/detect"
	"github.com/readcoil/strictstrings/internal/filter"
	"github.com/readcoil/strictstrings/internal/model"
	"github.com/readcoil/strictstrings/internal/scan"
)

// ErrNoStrings reports that no string survived up to some stage of the
// pipeline. The report returned alongside it still carries the counts
// for the stages that did run.
var ErrNoStrings = errors.New("no strings found")

// Pipeline orchestrates the complete triage: byte scan, whitespace
// density, language plausibility, letter pairs, similarity dedup.
type Pipeline struct {
	scanner    *scan.Scanner
	whitespace *filter.Whitespace
	language   *detect.Filter
	ngram      *filter.Ngram
	deduper    *dedupe.Deduper
	progress   *Progress
	config     *model.Config
}

// NewPipeline creates a pipeline with all stages configured
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	detectCfg, err := detect.ConfigFromModel(cfg.Detect)
	if err != nil {
		return nil, err
	}

	detector, err := detect.NewDetector(detectCfg)
	if err != nil {
		return nil, fmt.Errorf("build detector: %w", err)
	}

	if cfg.Cache.Enabled {
		scores := cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
		detector = detect.NewCached(detector, scores, cfg.Cache.TTL)
	}

	language, err := detect.NewFilter(detector, detectCfg.Target, cfg.Detect.Threshold)
	if err != nil {
		return nil, err
	}

	scanner := scan.NewScanner(cfg.Scan.MinLength, cfg.Scan.MaxLength)
	scanner.BufferSize = cfg.Scan.BufferSize
	scanner.CaptureRejects = cfg.Output.LogDir != ""

	return &Pipeline{
		scanner:    scanner,
		whitespace: filter.NewWhitespace(cfg.Filter.WhitespaceLength),
		language:   language,
		ngram:      filter.NewNgram(),
		deduper:    dedupe.NewDeduper(cfg.Dedupe.Threshold, nil),
		progress:   NewProgress(cfg.Output.Quiet),
		config:     cfg,
	}, nil
}

// ScanFile runs the complete pipeline over the file at path. When a
// stage leaves nothing behind, the partial report is returned together
// with ErrNoStrings.
func (p *Pipeline) ScanFile(ctx context.Context, path string) (*model.Report, error) {
	started := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	report := &model.Report{
		Input:     path,
		SizeBytes: info.Size(),
		ScannedAt: started.UTC(),
	}
	defer func() { report.Duration = time.Since(started) }()

	// 1. Extract printable candidates
	reader, doneReading := p.progress.FileReader(file, info.Size())
	scanned, err := p.scanner.Scan(ctx, reader)
	if err != nil {
		return nil, err
	}
	doneReading()
	report.Candidates = len(scanned.Strings)
	report.Rejects.Length = scanned.Rejected
	log.Debug().
		Str("path", path).
		Int64("bytes", scanned.BytesRead).
		Int("candidates", report.Candidates).
		Msg("Byte scan complete")
	if report.Candidates == 0 {
		return report, ErrNoStrings
	}

	// 2. Whitespace density
	afterWhitespace, noWhitespace := p.whitespace.Partition(scanned.Strings)
	report.AfterWhitespace = len(afterWhitespace)
	report.Rejects.Whitespace = noWhitespace
	log.Debug().
		Int("kept", report.AfterWhitespace).
		Int("dropped", len(noWhitespace)).
		Msg("Whitespace filter complete")

	// 3. Language plausibility
	tick, done := p.progress.StageBar("Scoring languages", report.AfterWhitespace)
	afterLanguage, implausible, err := p.language.Partition(ctx, afterWhitespace, tick)
	done()
	if err != nil {
		return nil, fmt.Errorf("language filter: %w", err)
	}
	report.AfterLanguage = len(afterLanguage)
	report.Rejects.Language = implausible
	log.Debug().
		Int("kept", report.AfterLanguage).
		Int("dropped", len(implausible)).
		Msg("Language filter complete")
	if report.AfterLanguage == 0 {
		return report, ErrNoStrings
	}

	// 4. Impossible letter pairs
	tick, done = p.progress.StageBar("Checking letter pairs", report.AfterLanguage)
	afterNgram, badPairs := p.ngram.Partition(afterLanguage, tick)
	done()
	report.AfterNgram = len(afterNgram)
	report.Rejects.Ngram = badPairs
	log.Debug().
		Int("kept", report.AfterNgram).
		Int("dropped", len(badPairs)).
		Msg("Letter-pair filter complete")
	if report.AfterNgram == 0 {
		return report, ErrNoStrings
	}

	// 5. Similarity dedup
	tick, done = p.progress.StageBar("Deduplicating", report.AfterNgram)
	final, nearDuplicates := p.deduper.Reduce(afterNgram, tick)
	done()
	report.Final = final
	report.Rejects.Leven = nearDuplicates
	log.Debug().
		Int("final", len(final)).
		Int("dropped", len(nearDuplicates)).
		Msg("Deduplication complete")

	return report, nil
}
