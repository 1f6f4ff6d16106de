package plan

import (
	"errors"

	"go.uber.org/zap"

	"specsplit/internal/config"
	"specsplit/internal/discovery"
	"specsplit/internal/domain"
	"specsplit/internal/packing"
	"specsplit/internal/timing"
	"specsplit/internal/weight"
)

// ErrNoSpecFiles is returned when discovery finds nothing to distribute.
var ErrNoSpecFiles = errors.New("no spec files found")

// ProgressFunc is invoked after each file is weighed.
type ProgressFunc func(done, total int)

// Result is a fully packed distribution.
type Result struct {
	Chunks []domain.Chunk
	// StaticCount is how many files fell back to static weight estimation.
	StaticCount int
	// TotalWeight is the sum of all chunk weights.
	TotalWeight float64
}

// Mean returns the mean chunk weight, 0 when there are no chunks.
func (r *Result) Mean() float64 {
	if len(r.Chunks) == 0 {
		return 0
	}
	return r.TotalWeight / float64(len(r.Chunks))
}

// Builder runs the pipeline: load timings, discover spec files, weigh them,
// and pack them into chunks.
type Builder struct {
	cfg      *config.Config
	loader   *timing.Loader
	scanner  *discovery.Scanner
	packer   packing.Packer
	logger   *zap.Logger
	progress ProgressFunc
}

// NewBuilder wires the pipeline from configuration.
func NewBuilder(cfg *config.Config, logger *zap.Logger) *Builder {
	return &Builder{
		cfg:     cfg,
		loader:  timing.NewLoader(cfg.TimingsKey),
		scanner: discovery.NewScanner(cfg.SpecDir, cfg.SpecSuffix),
		packer:  packing.NewLPTPacker(),
		logger:  logger,
	}
}

// SetProgress installs a progress callback for the weighing pass.
func (b *Builder) SetProgress(progress ProgressFunc) {
	b.progress = progress
}

// Discover returns the sorted spec file list for the configured project root.
func (b *Builder) Discover() ([]string, error) {
	return b.scanner.Scan(b.cfg.ProjectRoot)
}

// Weigh discovers all spec files and assigns each a weight: the measured
// duration when the timing table has a usable entry, the static estimate
// otherwise. A missing or corrupt timing file is recoverable; every file is
// then weighed statically. Zero discovered files is ErrNoSpecFiles.
func (b *Builder) Weigh(timingPath string) ([]domain.SpecItem, int, error) {
	table := timing.Table{}
	if timingPath != "" {
		var err error
		table, err = b.loader.Load(timingPath)
		if err != nil {
			b.logger.Warn("no usable timing data, falling back to static weights", zap.Error(err))
		}
	}

	files, err := b.scanner.Scan(b.cfg.ProjectRoot)
	if err != nil {
		return nil, 0, err
	}
	if len(files) == 0 {
		return nil, 0, ErrNoSpecFiles
	}
	b.logger.Debug("discovered spec files",
		zap.Int("count", len(files)),
		zap.String("root", b.cfg.ProjectRoot),
	)

	estimator := weight.NewEstimator(
		b.cfg.ProjectRoot,
		b.cfg.DefaultWeight,
		b.cfg.BlockBonus,
		b.cfg.BlockKeywords,
		b.logger,
	)

	items := make([]domain.SpecItem, 0, len(files))
	staticCount := 0
	for i, file := range files {
		if duration, ok := table.Lookup(file); ok {
			items = append(items, domain.SpecItem{Path: file, Weight: duration})
		} else {
			items = append(items, domain.SpecItem{
				Path:   file,
				Weight: estimator.Estimate(file),
				Static: true,
			})
			staticCount++
		}
		if b.progress != nil {
			b.progress(i+1, len(files))
		}
	}

	return items, staticCount, nil
}

// Build produces the chunk distribution for the given timing file and chunk
// count.
func (b *Builder) Build(timingPath string, chunkCount int) (*Result, error) {
	items, staticCount, err := b.Weigh(timingPath)
	if err != nil {
		return nil, err
	}

	chunks, err := b.packer.Pack(items, chunkCount)
	if err != nil {
		return nil, err
	}

	result := &Result{Chunks: chunks, StaticCount: staticCount}
	for _, chunk := range chunks {
		result.TotalWeight += chunk.Weight
	}
	return result, nil
}
