package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/console"
	"github.com/mrlokans/library/internal/entrypoint"
)

// ConsoleCommand runs the interactive library menu.
type ConsoleCommand struct {
	Backend string
	DSN     string

	cfg *config.Config
	in  io.Reader
	out io.Writer
}

func NewConsoleCommand(cfg *config.Config) *ConsoleCommand {
	return &ConsoleCommand{cfg: cfg, in: os.Stdin, out: os.Stdout}
}

func (cmd *ConsoleCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)

	fs.StringVar(&cmd.Backend, "backend", string(cmd.cfg.Catalog.Backend), "Catalog backend: memory or sqlite")
	fs.StringVar(&cmd.DSN, "dsn", cmd.cfg.Database.DSN, "SQLite DSN for the sqlite backend")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s console [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Run the interactive library menu on stdin/stdout.\n")
		fmt.Fprintf(os.Stderr, "The catalog lives in memory and is lost on exit.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	switch config.Backend(cmd.Backend) {
	case config.BackendMemory, config.BackendSQLite:
	default:
		return fmt.Errorf("invalid -backend %q (want memory or sqlite)", cmd.Backend)
	}

	cmd.cfg.Catalog.Backend = config.Backend(cmd.Backend)
	cmd.cfg.Database.DSN = cmd.DSN
	return nil
}

func (cmd *ConsoleCommand) Run() error {
	store, db, err := entrypoint.OpenCatalog(cmd.cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	return console.New(store, cmd.in, cmd.out).Run()
}
