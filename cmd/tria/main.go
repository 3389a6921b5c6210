package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/tria"
	"github.com/smileynet/tria/internal/config"
	"github.com/smileynet/tria/internal/contact"
	"github.com/smileynet/tria/internal/logging"
	"github.com/smileynet/tria/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for tria.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Open    OpenCmd          `cmd:"" default:"withargs" help:"Open the interactive contact manager (default)."`
	List    ListCmd          `cmd:"" help:"Print the contact list as plain text."`
}

// OpenCmd opens the contact manager.
type OpenCmd struct {
	Search string `help:"Initial search query." short:"s"`
	Desc   bool   `help:"Sort names descending." default:"false"`
	NoTUI  bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
	Seed   string `help:"YAML file with the initial contacts." type:"path"`
	Config string `help:"Config file to use instead of the user and project layers." type:"existingfile" short:"c"`
}

// ListCmd prints the filtered, sorted contact list once.
type ListCmd struct {
	Query  string `arg:"" optional:"" help:"Name or phone substring to filter by."`
	Desc   bool   `help:"Sort names descending." default:"false"`
	Seed   string `help:"YAML file with the initial contacts." type:"path"`
	Config string `help:"Config file to use instead of the user and project layers." type:"existingfile" short:"c"`
}

// setupError marks failures that happen before any contact is shown.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// session holds the resolved configuration and the seeded store.
type session struct {
	cfg    *config.Config
	store  *contact.Store
	logger *zap.Logger
	close  func()
}

// loadConfig loads .env, then either the single file at path or the
// layered user and project configs, then env overrides.
func loadConfig(path string) (*config.Config, error) {
	if err := config.LoadDotenv(".env"); err != nil {
		return nil, err
	}
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadLayered(
			os.ExpandEnv("$HOME/.config/tria/config.yaml"),
			".tria/config.yaml",
		)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSeed reads the initial contacts. An explicit path must exist;
// otherwise .tria/contacts.yaml overrides the embedded default.
func loadSeed(path string) ([]contact.Contact, string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, path, fmt.Errorf("opening seed: %w", err)
		}
		defer func() { _ = f.Close() }()
		contacts, err := contact.DecodeSeed(f)
		return contacts, path, err
	}

	contacts, err := contact.LoadSeed(tria.OverlayFS(".tria", tria.Seed), tria.SeedFile)
	return contacts, tria.SeedFile, err
}

// setup resolves config, applies flag overrides, opens the log and seeds
// the store. Every error it returns is a setupError.
func setup(configFlag, seedFlag string, desc bool) (*session, error) {
	cfg, err := loadConfig(configFlag)
	if err != nil {
		return nil, &setupError{err}
	}
	if seedFlag != "" {
		cfg.Seed.File = seedFlag
	}
	if desc {
		cfg.UI.Sort = contact.Descending.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &setupError{err}
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, &setupError{err}
	}

	seed, source, err := loadSeed(cfg.Seed.File)
	if err != nil {
		closeLog()
		return nil, &setupError{fmt.Errorf("seed %s: %w", source, err)}
	}
	store := contact.NewStore(contact.WithLogger(logger))
	if err := store.Seed(seed); err != nil {
		closeLog()
		return nil, &setupError{fmt.Errorf("seed %s: %w", source, err)}
	}

	logger.Info("tria started",
		zap.String("version", version),
		zap.String("seed", source),
		zap.Int("contacts", store.Len()),
		zap.Stringer("sort", cfg.Direction()),
	)
	return &session{cfg: cfg, store: store, logger: logger, close: closeLog}, nil
}

// Run opens the manager on the terminal, or prints the list when stdout is
// not a terminal or --no-tui is set.
func (o *OpenCmd) Run() error {
	s, err := setup(o.Config, o.Seed, o.Desc)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer s.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	display := tui.NewDisplay(tui.DisplayOptions{
		Writer:     os.Stdout,
		ForcePlain: o.NoTUI,
		Store:      s.store,
		Title:      s.cfg.UI.Title,
		Query:      o.Search,
		Direction:  s.cfg.Direction(),
		AltScreen:  s.cfg.UI.AltScreen,
		Logger:     s.logger,
	})
	return o.run(ctx, display, s.logger)
}

// run executes the display, enabling testable wiring.
func (o *OpenCmd) run(ctx context.Context, display tui.Display, logger *zap.Logger) error {
	err := display.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	logger.Info("tria exited")
	return nil
}

// Run prints the list to stdout.
func (l *ListCmd) Run() error {
	s, err := setup(l.Config, l.Seed, l.Desc)
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	defer s.close()
	return l.run(context.Background(), os.Stdout, s)
}

func (l *ListCmd) run(ctx context.Context, w io.Writer, s *session) error {
	display := tui.NewDisplay(tui.DisplayOptions{
		Writer:     w,
		ForcePlain: true,
		Store:      s.store,
		Title:      s.cfg.UI.Title,
		Query:      l.Query,
		Direction:  s.cfg.Direction(),
		Logger:     s.logger,
	})
	if err := display.Run(ctx); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tria"),
		kong.Description("A terminal contact list with search, sort, inline edit and a bin."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
