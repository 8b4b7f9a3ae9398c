package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gofrs/flock"

	"imdblist/internal/catalog"
	"imdblist/internal/fileutil"
	"imdblist/internal/logging"
)

var (
	// ErrOutputLocked is returned when another export holds the output lock.
	ErrOutputLocked = errors.New("output is locked by another export")
	// ErrUnknownFormat is returned for an output format other than tsv or sqlite.
	ErrUnknownFormat = errors.New("unknown export format")
)

// ctxCheckRows is how many records pass between cancellation checks.
const ctxCheckRows = 4096

// Result summarizes a finished export.
type Result struct {
	Path    string
	Format  Format
	Rows    int
	Columns []string
	// GenreColumns lists the genre indicator columns, empty when the genre
	// key is not exported.
	GenreColumns []string
	Elapsed      time.Duration
}

// Exporter writes registry snapshots to disk.
type Exporter struct {
	opts   Options
	logger *slog.Logger
}

// New validates opts and returns an exporter.
func New(opts Options, logger *slog.Logger) (*Exporter, error) {
	if opts.Format == "" {
		opts.Format = FormatTSV
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Exporter{opts: opts, logger: logging.NewComponentLogger(logger, "export")}, nil
}

// Write renders reg into path. The previous file at path is replaced only
// when the export succeeds.
func (e *Exporter) Write(ctx context.Context, reg *catalog.Registry, tally *catalog.Tally, path string) (Result, error) {
	started := time.Now()
	table := NewTable(tally, e.opts)
	result := Result{Path: path, Format: e.opts.Format, Columns: table.Header()}
	if slices.Contains(table.keys, catalog.KeyGenre) {
		result.GenreColumns = table.GenreColumns()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return result, fmt.Errorf("create output directory: %w", err)
	}
	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return result, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return result, fmt.Errorf("%w: %s", ErrOutputLocked, lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			e.logger.Warn("failed to release output lock", slog.String("lock", lockPath), logging.Error(err))
		}
	}()

	switch e.opts.Format {
	case FormatSQLite:
		result.Rows, err = e.writeSQLite(ctx, reg, table, path)
	default:
		result.Rows, err = e.writeTSV(ctx, reg, table, path)
	}
	result.Elapsed = time.Since(started)
	if err != nil {
		return result, err
	}
	e.logger.Info("export complete",
		slog.String("path", path),
		slog.String("format", string(e.opts.Format)),
		slog.Int("rows", result.Rows),
		slog.Int("columns", len(result.Columns)),
		slog.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func (e *Exporter) writeTSV(ctx context.Context, reg *catalog.Registry, table *Table, path string) (int, error) {
	enc, err := lookupEncoding(e.opts.Encoding)
	if err != nil {
		return 0, err
	}
	var rows int
	err = fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		sink := newTSVSink(w, enc)
		if err := sink.writeRow(table.Header()); err != nil {
			return err
		}
		n, err := emitRows(ctx, reg, table, sink.writeRow)
		rows = n
		if err != nil {
			return err
		}
		return sink.close()
	})
	if err != nil {
		return 0, err
	}
	return rows, nil
}

func (e *Exporter) writeSQLite(ctx context.Context, reg *catalog.Registry, table *Table, path string) (int, error) {
	tmpPath := path + ".tmp"
	sink, err := openSQLiteSink(ctx, tmpPath, table.Header())
	if err != nil {
		return 0, err
	}
	rows, err := emitRows(ctx, reg, table, sink.writeRow)
	if err != nil {
		sink.abort()
		_ = os.Remove(tmpPath)
		return 0, err
	}
	if err := sink.commit(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("rename database: %w", err)
	}
	return rows, nil
}

// emitRows feeds every retained record to write in registry order.
func emitRows(ctx context.Context, reg *catalog.Registry, table *Table, write func([]string) error) (int, error) {
	var (
		rows    int
		visited int
		err     error
	)
	reg.Each(func(title string, rec *catalog.Record) bool {
		visited++
		if visited%ctxCheckRows == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		row, keep := table.Row(title, rec)
		if !keep {
			return true
		}
		if err = write(row); err != nil {
			return false
		}
		rows++
		return true
	})
	return rows, err
}
