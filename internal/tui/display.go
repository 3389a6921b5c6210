// Package tui chooses how the contact list is presented: the interactive
// manager on a terminal, or a plain text listing otherwise.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/tria/internal/contact"
	"github.com/smileynet/tria/internal/manager"
)

// emptyState is printed when no contact matches.
const emptyState = "No contacts found."

// Display presents the contact list until the user is done.
type Display interface {
	Run(ctx context.Context) error
}

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer         // Output destination (default: os.Stdout).
	Input      io.Reader         // TUI input (default: os.Stdin).
	ForcePlain bool              // Force plain text even if TTY.
	Store      *contact.Store    // Contacts to present.
	Title      string            // Header text.
	Query      string            // Initial search query.
	Direction  contact.Direction // Initial sort direction.
	AltScreen  bool              // Run the TUI in the alternate screen buffer.
	Logger     *zap.Logger       // Optional; defaults to a no-op logger.
}

// NewDisplay returns a TUI display when the writer is a TTY, or a plain text
// display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Title == "" {
		opts.Title = manager.DefaultTitle
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return &PlainDisplay{opts: opts}
	}
	return &TUIDisplay{opts: opts}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay prints the filtered, sorted list once as text lines.
type PlainDisplay struct {
	opts DisplayOptions
}

// Run writes the title, one line per visible contact and a count footer.
func (d *PlainDisplay) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w := d.opts.Writer
	visible := d.opts.Store.View(d.opts.Query, d.opts.Direction)

	lines := make([]string, 0, len(visible)+3)
	lines = append(lines, d.opts.Title)
	if len(visible) == 0 {
		lines = append(lines, emptyState)
	}
	for _, c := range visible {
		lines = append(lines, formatLine(c))
	}
	lines = append(lines, fmt.Sprintf("%d contact(s), bin %d", len(visible), d.opts.Store.BinCount()))

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("tui: writing listing: %w", err)
		}
	}
	return nil
}

// formatLine renders a contact as "[AK] Aisha Kapoor  9876543210  aisha@example.com".
func formatLine(c contact.Contact) string {
	line := fmt.Sprintf("[%s] %s  %s", contact.Initials(c.Name), c.Name, c.Phone)
	if c.Email != "" {
		line += "  " + c.Email
	}
	return line
}

// TUIDisplay runs the interactive contact manager.
// Falls back to PlainDisplay if the TUI program fails.
type TUIDisplay struct {
	opts DisplayOptions
}

// Run starts the Bubble Tea program bound to ctx and blocks until the user
// quits or ctx is cancelled.
func (d *TUIDisplay) Run(ctx context.Context) error {
	model := manager.NewModel(d.opts.Store,
		manager.WithTitle(d.opts.Title),
		manager.WithDirection(d.opts.Direction),
		manager.WithQuery(d.opts.Query),
		manager.WithLogger(d.opts.Logger),
	)

	progOpts := []tea.ProgramOption{tea.WithOutput(d.opts.Writer), tea.WithContext(ctx)}
	if d.opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(d.opts.Input))
	}
	if d.opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		d.opts.Logger.Warn("tui failed, falling back to plain output", zap.Error(err))
		plain := &PlainDisplay{opts: d.opts}
		return plain.Run(ctx)
	}
	return nil
}
