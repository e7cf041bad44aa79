package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/awalczak/corpusq/bloom"
	"github.com/awalczak/corpusq/fs"
	"github.com/awalczak/corpusq/goldmark"
	corpslog "github.com/awalczak/corpusq/slog"
	"github.com/awalczak/corpusq/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by snapshot persistence, opened on demand.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// A .env file may supply CORPUS_ROOT / CORPUSQ_DB.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("corpusq"),
		kong.Description("Query a local corpus of Markdown advisory documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'corpusq --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire core services into dependencies
	deps.Loader = fs.NewLoader()
	sectioner := goldmark.NewSectioner()
	deps.Sectioner = sectioner
	deps.Outliner = sectioner
	deps.Index = bloom.NewIndex()
	deps.Queries = deps.Index

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Queries = corpslog.NewLoggingQueryService(deps.Index, logger)
	}

	// Open the database only for commands that persist or read snapshots.
	dbPath := ""
	switch strings.Fields(kongCtx.Command())[0] {
	case "index":
		dbPath = cli.Index.DB
	case "snapshots":
		dbPath = cli.Snapshots.DB
		if dbPath == "" {
			dbPath = defaultDBPath()
		}
	}
	if dbPath != "" {
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CORPUSQ_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		deps.Snapshots = sqlite.NewSnapshotService(m.DB)
		deps.Documents = sqlite.NewDocumentService(m.DB)
		deps.Sections = sqlite.NewSectionService(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CORPUSQ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "corpusq.db"
	}
	dir := filepath.Join(home, ".corpusq")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "corpusq.db")
}

// displayCategory renders an empty category for documents that live
// directly under the corpus root.
func displayCategory(category string) string {
	if category == "" {
		return "(none)"
	}
	return category
}

// indentFor indents outline entries by nesting depth.
func indentFor(level int) string {
	if level <= 1 {
		return ""
	}
	return strings.Repeat("  ", level-1)
}
