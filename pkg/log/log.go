// Package log provides the zerolog logger used by saes and an optional
// journal that stores every JSON log line in an SQLite database.
package log

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"saes-go/pkg/appdir"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

var (
	writeSinceStart        atomic.Int64
	pkgLogger              = zerolog.Nop()
	console                io.Writer
	journal                *sqliteWriter
	dbHandle               *sql.DB
	mu                     sync.RWMutex // guards everything above except writeSinceStart
	zerologTimeFieldFormat = time.RFC3339Nano

	ErrNotInitialized = errors.New("log: journal not initialized, call log.Init() first")
)

type sqliteWriter struct {
	db   *sql.DB
	stmt *sql.Stmt
	mu   sync.Mutex
}

func newSQLiteWriter(dbPath string) (*sqliteWriter, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db %s: %w", dbPath, err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			inserted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
			log_data TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_logs_json_time ON logs (json_extract(log_data, '$.time'));`,
		`CREATE INDEX IF NOT EXISTS idx_logs_json_op ON logs (json_extract(log_data, '$.op'));`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare journal schema: %w", err)
		}
	}

	stmt, err := db.Prepare(`INSERT INTO logs (log_data) VALUES (?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	return &sqliteWriter{db: db, stmt: stmt}, nil
}

func (w *sqliteWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.stmt.Exec(string(p)); err != nil {
		return 0, err
	}
	writeSinceStart.Add(1)
	return len(p), nil
}

func (w *sqliteWriter) close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	var errs []error
	if w.stmt != nil {
		if err := w.stmt.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing statement: %w", err))
		}
		w.stmt = nil
	}
	if w.db != nil {
		if err := w.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing db: %w", err))
		}
		w.db = nil
	}
	return errors.Join(errs...)
}

// rebuild must be called with mu held.
func rebuild() {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}
	if journal != nil {
		writers = append(writers, journal)
	}
	switch len(writers) {
	case 0:
		pkgLogger = zerolog.Nop()
		return
	case 1:
		pkgLogger = zerolog.New(writers[0])
	default:
		pkgLogger = zerolog.New(zerolog.MultiLevelWriter(writers...))
	}
	pkgLogger = pkgLogger.With().Timestamp().Logger()
}

// SetStd sends human-readable output to stderr.
func SetStd() {
	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// SetOutput replaces the console sink. nil disables it.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
	rebuild()
}

// SetDebug switches between debug and info level.
func SetDebug(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Init opens the journal. Relative names are placed in the application
// directory.
func Init(dbFile string) error {
	if dbFile == "" {
		return fmt.Errorf("log: journal needs an explicit file name")
	}
	path, err := appdir.Resolve(dbFile)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if journal != nil {
		return fmt.Errorf("log: journal already initialized")
	}

	w, err := newSQLiteWriter(path)
	if err != nil {
		return fmt.Errorf("log: failed to create SQLite writer: %w", err)
	}
	journal = w
	dbHandle = w.db
	writeSinceStart.Store(0)

	zerolog.TimeFieldFormat = zerologTimeFieldFormat
	rebuild()
	pkgLogger.Debug().Str("path", path).Msg("journal opened")
	return nil
}

// Initialized reports whether the journal is open.
func Initialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return journal != nil
}

// Close flushes and closes the journal. Console output is kept.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if journal == nil {
		return nil
	}
	w := journal
	journal = nil
	dbHandle = nil
	rebuild()

	if err := w.close(); err != nil {
		return fmt.Errorf("log: error closing journal: %w", err)
	}
	return nil
}

func logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := pkgLogger
	return &l
}

func Debug() *zerolog.Event { return logger().Debug() }
func Info() *zerolog.Event  { return logger().Info() }
func Warn() *zerolog.Event  { return logger().Warn() }
func Error() *zerolog.Event { return logger().Error() }

// Printf sends a log event using info level and no extra field.
func Printf(format string, v ...any) {
	logger().Info().CallerSkipFrame(1).Msgf(format, v...)
}
