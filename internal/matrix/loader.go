package matrix

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// Loader reads a matrix from a named source.
type Loader interface {
	// Load reads and parses the matrix at path (or key, for remote
	// sources). A missing source fails with ErrSourceNotFound.
	Load(ctx context.Context, path string) (*Matrix, error)
}

// Writer persists a matrix to a named destination.
type Writer interface {
	// Save writes the matrix in the text format. Failures wrap
	// ErrWriteFailure.
	Save(ctx context.Context, path string, m *Matrix) error
}

// fileLoader implements Loader for local matrix files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a loader reading matrix files from the local
// file system.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "matrix-loader").Logger(),
	}
}

// Load reads and parses a local matrix file.
func (l *fileLoader) Load(ctx context.Context, path string) (*Matrix, error) {
	l.logger.Info().Str("file", path).Msg("loading matrix file")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Error().Str("file", path).Msg("matrix file does not exist")
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read matrix file")
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	m, err := Parse(string(data))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse matrix file")
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Int("entries", m.Len()).
		Msg("matrix file loaded successfully")

	return m, nil
}

// fileWriter implements Writer for local matrix files.
type fileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a writer saving matrices to the local file
// system.
func NewFileWriter(logger zerolog.Logger) Writer {
	return &fileWriter{
		logger: logger.With().Str("component", "matrix-writer").Logger(),
	}
}

// Save writes the matrix to path in the text format.
func (w *fileWriter) Save(ctx context.Context, path string, m *Matrix) error {
	if err := os.WriteFile(path, []byte(m.String()), 0o644); err != nil {
		w.logger.Error().Err(err).Str("file", path).Msg("failed to write matrix file")
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}

	w.logger.Info().
		Str("file", path).
		Int("entries", m.Len()).
		Msg("matrix file written")

	return nil
}
