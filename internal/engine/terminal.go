package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/content"
)

func (e *Engine) openTerminal(text []string) {
	e.out.ShowLines(text)
	e.out.ShowLine("")
	e.terminalPrompt()
	e.setMode(ModeTerminal)
}

// terminalPrompt lists the menu. The restore option only exists once every
// fragment has been recovered.
func (e *Engine) terminalPrompt() {
	e.out.ShowLine("=== TERMINAL MENU ===")
	e.out.ShowLine("1. CHECK CURRENT PATIENT STATUS")
	e.out.ShowLine("2. OPEN TEST LOGS")
	if e.state.AllFragments() {
		e.out.ShowLine("3. RESTORE HUMANITY")
	}
	e.out.ShowLine("4. QUIT TERMINAL")
	e.out.ShowLine("")
	e.out.ShowLine("Choose an option:")
}

func (e *Engine) terminalMenu(line string) {
	switch line {
	case "1":
		e.out.ClearDisplay()
		e.showStatus()
		e.out.ShowLine("")
		e.terminalPrompt()
	case "2":
		if e.state.DeviceActivated {
			e.out.ClearDisplay()
			e.out.ShowLine("DATA CORRUPTED.")
			e.out.ShowLine("")
			e.terminalPrompt()
			return
		}
		e.session.logPage = 1
		e.setMode(ModeTerminalLogs)
		e.showLogPage()
	case "3":
		if !e.state.AllFragments() {
			e.out.ShowLine("Invalid option.")
			return
		}
		e.out.ClearDisplay()
		e.out.ShowLine("WARNING: RESTORING HUMANITY CANNOT BE UNDONE.")
		e.out.ShowLine("Everything you chose to forget will come back.")
		e.out.ShowLine("")
		e.out.ShowLine("Type 'yes' to proceed or 'no' to cancel.")
		e.setMode(ModeTerminalEnding)
	case "4", "back", "quit", "exit":
		e.leave()
	default:
		e.out.ShowLine("Invalid option.")
	}
}

func (e *Engine) showLogPage() {
	e.out.ClearDisplay()
	e.out.ShowLines(e.content.LogPage(e.session.logPage))
	e.out.ShowLine("")
	e.out.ShowLine(fmt.Sprintf("Page %d/%d | Commands: 'next page', 'prev page', 'back'",
		e.session.logPage, content.Pages))
}

func (e *Engine) terminalLogs(line string) {
	if page, ok := turnPage(line, e.session.logPage); ok {
		e.session.logPage = page
		e.showLogPage()
		return
	}
	if line == "back" {
		e.setMode(ModeTerminal)
		e.out.ClearDisplay()
		e.showStatus()
		e.out.ShowLine("")
		e.terminalPrompt()
		return
	}
	e.out.ShowLine("Commands: 'next page', 'prev page', 'back'")
}

func (e *Engine) terminalEnding(ctx context.Context, line string) error {
	switch line {
	case "yes":
		return e.ending(ctx, StatusGoodEnding, content.EpilogueGood)
	case "no":
		return e.ending(ctx, StatusBadEnding, content.EpilogueBad)
	default:
		e.out.ShowLine("Type 'yes' to proceed or 'no' to cancel.")
		return nil
	}
}

// ending plays the epilogue and closes the session. The status is set even
// if the acknowledgments are cut short.
func (e *Engine) ending(ctx context.Context, status Status, epilogue content.Key) error {
	e.status = status
	e.setMode(ModeNone)
	e.logger.Info("ending reached",
		zap.Stringer("status", status),
		zap.Int("sanity", e.state.Sanity),
	)

	e.out.ClearDisplay()
	if err := e.sequence(ctx, e.content.Lines(epilogue)); err != nil {
		return err
	}
	e.out.ShowLine("")
	e.out.ShowLines(e.content.Lines(content.Goodbye))
	if err := e.out.AwaitAcknowledge(ctx); err != nil {
		return fmt.Errorf("awaiting acknowledgment: %w", err)
	}
	return nil
}
