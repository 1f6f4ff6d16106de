package weight

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Estimator computes static weights for spec files that have no timing data.
// The weight is the file's line count plus a fixed bonus per test block, where
// a test block is a line whose trimmed content starts with one of the
// configured block keywords followed by a space.
type Estimator struct {
	root          string
	defaultWeight float64
	blockBonus    float64
	keywords      []string
	logger        *zap.Logger
}

// NewEstimator creates an Estimator resolving relative paths against root.
func NewEstimator(root string, defaultWeight, blockBonus float64, keywords []string, logger *zap.Logger) *Estimator {
	return &Estimator{
		root:          root,
		defaultWeight: defaultWeight,
		blockBonus:    blockBonus,
		keywords:      keywords,
		logger:        logger,
	}
}

// Estimate returns the static weight for a root-relative spec path. A file
// that does not exist gets the default weight; a read failure also degrades
// to the default weight with a warning. Estimation never fails the run.
func (e *Estimator) Estimate(relPath string) float64 {
	path := filepath.Join(e.root, filepath.FromSlash(relPath))

	if _, err := os.Stat(path); err != nil {
		return e.defaultWeight
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn("failed to calculate static weight",
			zap.String("spec", relPath),
			zap.Error(err),
		)
		return e.defaultWeight
	}

	lines := splitLines(string(data))
	blocks := 0
	for _, line := range lines {
		if e.isBlockLine(line) {
			blocks++
		}
	}

	return float64(len(lines)) + float64(blocks)*e.blockBonus
}

func (e *Estimator) isBlockLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, keyword := range e.keywords {
		if strings.HasPrefix(trimmed, keyword+" ") {
			return true
		}
	}
	return false
}

// splitLines splits file content into lines without counting a trailing
// newline as an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
