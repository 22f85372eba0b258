// Package engine runs a playthrough: it parses player input, moves the
// player through the house, drives the per-item dialogues and decides the
// ending. All output goes through a Presenter.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
	"github.com/tatianab/humanity/internal/puzzle"
)

// ErrSessionOver is returned by Handle once the player has quit or reached
// an ending.
var ErrSessionOver = errors.New("session is over")

// Status tells the caller whether the session continues.
type Status int

const (
	StatusPlaying Status = iota
	StatusQuit
	StatusGoodEnding
	StatusBadEnding
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusQuit:
		return "quit"
	case StatusGoodEnding:
		return "good-ending"
	case StatusBadEnding:
		return "bad-ending"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String. The empty string is read as
// StatusPlaying so snapshots of unfinished runs need not name a status.
func ParseStatus(name string) (Status, error) {
	if name == "" {
		return StatusPlaying, nil
	}
	for _, s := range []Status{StatusPlaying, StatusQuit, StatusGoodEnding, StatusBadEnding} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown session status %q", name)
}

// Over reports whether the session has ended.
func (s Status) Over() bool {
	return s != StatusPlaying
}

// session holds the progress of the item dialogues.
type session struct {
	mode Mode

	whiteboard     puzzle.Attempts
	whiteboardHint bool

	logPage   int
	diaryPage int
}

// Engine owns the state of one playthrough. It is not safe for concurrent
// use: Start and Handle must be called from one goroutine at a time.
type Engine struct {
	state   *models.GameState
	content Content
	out     Presenter
	rng     Source
	logger  *zap.Logger

	session session
	status  Status
}

// New creates an engine for a fresh playthrough.
func New(c Content, out Presenter, rng Source, logger *zap.Logger) (*Engine, error) {
	return NewWithState(models.NewGameState(), c, out, rng, logger)
}

// NewWithState creates an engine that continues from the given state.
func NewWithState(state *models.GameState, c Content, out Presenter, rng Source, logger *zap.Logger) (*Engine, error) {
	if state == nil || c == nil || out == nil || rng == nil {
		return nil, errors.New("engine: state, content, presenter and source are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := checkItems(c); err != nil {
		return nil, err
	}
	return &Engine{
		state:   state,
		content: c,
		out:     out,
		rng:     rng,
		logger:  logger,
		session: session{logPage: 1, diaryPage: 1},
	}, nil
}

// Resume creates an engine that continues a saved run. A run that had
// already ended stays ended: Handle returns ErrSessionOver.
func Resume(snap models.Snapshot, c Content, out Presenter, rng Source, logger *zap.Logger) (*Engine, error) {
	status, err := ParseStatus(snap.Status)
	if err != nil {
		return nil, err
	}
	state, err := snap.Restore()
	if err != nil {
		return nil, fmt.Errorf("restoring state: %w", err)
	}
	e, err := NewWithState(state, c, out, rng, logger)
	if err != nil {
		return nil, err
	}
	e.status = status
	return e, nil
}

// State exposes the game state for display and tests.
func (e *Engine) State() *models.GameState {
	return e.state
}

// Snapshot captures the state together with the session status, ready to
// be saved and passed back to Resume.
func (e *Engine) Snapshot() models.Snapshot {
	snap := models.SnapshotOf(e.state)
	if e.status.Over() {
		snap.Status = e.status.String()
	}
	return snap
}

// Mode returns the active interaction.
func (e *Engine) Mode() Mode {
	return e.session.mode
}

// Status returns whether the session is still running.
func (e *Engine) Status() Status {
	return e.status
}

// Start plays the prologue if it has not been seen yet, then shows the
// command list and the current room.
func (e *Engine) Start(ctx context.Context) error {
	e.out.ClearDisplay()
	e.out.SetRoomImage(e.state.Room)
	e.out.SetSanityIndicator(e.state.Sanity)

	if !e.state.IntroPlayed {
		if err := e.sequence(ctx, e.content.Lines(content.Prologue)); err != nil {
			return err
		}
		e.state.IntroPlayed = true
		e.out.ClearDisplay()
	}

	e.out.ShowLines(e.content.Lines(content.Help))
	e.out.ShowLine("")
	e.look()
	return nil
}

// Handle processes one line of player input. Mistakes are reported to the
// player through the Presenter; the returned error is only non-nil when the
// session is over or ctx was cancelled during an acknowledgment.
func (e *Engine) Handle(ctx context.Context, input string) (Status, error) {
	if e.status.Over() {
		return e.status, ErrSessionOver
	}

	raw := strings.TrimSpace(input)
	line := strings.ToLower(raw)
	e.logger.Debug("input",
		zap.Stringer("mode", e.session.mode),
		zap.Stringer("room", e.state.Room),
		zap.String("input", line),
	)

	var err error
	if e.session.mode == ModeNone {
		err = e.command(ctx, line)
	} else {
		err = e.interact(ctx, raw, line)
	}
	return e.status, err
}

func (e *Engine) setMode(m Mode) {
	if m == e.session.mode {
		return
	}
	e.logger.Debug("mode change",
		zap.Stringer("from", e.session.mode),
		zap.Stringer("to", m),
	)
	e.session.mode = m
}

// look renders the room, but only once the player has looked at it.
func (e *Engine) look() {
	if !e.state.HasVisited(e.state.Room) {
		return
	}
	e.out.ShowLine("")
	e.out.ShowLines(e.content.LookText(e.state.Room))
	e.out.ShowLine("")
}

// leave ends the current interaction and returns to the room.
func (e *Engine) leave() {
	e.setMode(ModeNone)
	e.out.ClearDisplay()
	e.out.SetRoomImage(e.state.Room)
	e.look()
}

// finish waits for the player to read the screen, then leaves.
func (e *Engine) finish(ctx context.Context) error {
	if err := e.out.AwaitAcknowledge(ctx); err != nil {
		return fmt.Errorf("awaiting acknowledgment: %w", err)
	}
	e.leave()
	return nil
}

// sequence shows lines one at a time, each waiting for an acknowledgment.
func (e *Engine) sequence(ctx context.Context, lines []string) error {
	for _, line := range lines {
		e.out.ShowLine(line)
		if err := e.out.AwaitAcknowledge(ctx); err != nil {
			return fmt.Errorf("awaiting acknowledgment: %w", err)
		}
	}
	return nil
}

func (e *Engine) showStatus() {
	e.out.ShowLines(e.statusLines())
	if e.state.AllFragments() {
		e.out.ShowLine("")
		e.out.ShowLines(e.content.Lines(content.StatusAll))
	}
}

func (e *Engine) statusLines() []string {
	lines := []string{
		"=== PATIENT STATUS ===",
		"SUBJECT 07",
		fmt.Sprintf("SANITY: %d%%", e.state.Sanity),
	}
	for _, f := range []models.Fragment{models.FragmentReason, models.FragmentEmotion, models.FragmentMorality} {
		state := "MISSING"
		if e.state.HasFragment(f) {
			state = "RESTORED"
		}
		lines = append(lines, fmt.Sprintf("%-9s %s", f.String()+":", state))
	}
	return lines
}

// grantFragment records a fragment, shows the status screen and leaves once
// the player acknowledges it.
func (e *Engine) grantFragment(ctx context.Context, f models.Fragment, extra []string) error {
	e.state.GrantFragment(f)
	e.logger.Info("fragment found",
		zap.Stringer("fragment", f),
		zap.Bool("all", e.state.AllFragments()),
	)

	e.out.ClearDisplay()
	e.out.ShowLine(fmt.Sprintf("Correct! %s fragment obtained!", f))
	if len(extra) > 0 {
		e.out.ShowLines(extra)
	}
	e.out.ShowLine("")
	e.showStatus()
	return e.finish(ctx)
}
