package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
)

const goToPrefix = "go to"

// Command is a parsed top-level command.
type Command struct {
	Verb string
	Arg  string
}

// ParseCommand splits normalised input into a verb and its argument.
// "go to <room>" is recognised as a whole; anything else splits on the first
// space.
func ParseCommand(line string) Command {
	line = strings.ToLower(strings.TrimSpace(line))
	if line == goToPrefix || strings.HasPrefix(line, goToPrefix+" ") {
		return Command{Verb: goToPrefix, Arg: strings.TrimSpace(line[len(goToPrefix):])}
	}
	verb, arg, _ := strings.Cut(line, " ")
	return Command{Verb: verb, Arg: strings.TrimSpace(arg)}
}

func (e *Engine) command(ctx context.Context, line string) error {
	cmd := ParseCommand(line)
	switch cmd.Verb {
	case goToPrefix:
		if cmd.Arg == "" {
			e.out.ShowLine("Error: GO TO command requires a room name.")
			return nil
		}
		e.goTo(cmd.Arg)
	case "help":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.Help))
	case "look":
		if cmd.Arg != "" {
			e.out.ShowLine("LOOK command does not take arguments.")
			return nil
		}
		e.state.MarkVisited(e.state.Room)
		e.look()
	case "check":
		return e.check(ctx, cmd.Arg)
	case "use":
		e.use(cmd.Arg)
	case "exit", "quit":
		e.logger.Info("player quit", zap.Stringer("room", e.state.Room))
		e.out.ShowLines(e.content.Lines(content.Goodbye))
		e.status = StatusQuit
	default:
		e.out.ShowLine("Unknown command. Type HELP for a list of commands.")
	}
	return nil
}

func (e *Engine) use(arg string) {
	if arg != "device" || e.state.Room != models.Laboratory || !e.state.HasDevice {
		e.out.ShowLine("You can't use that here.")
		return
	}
	e.openDevice()
}

// interact routes input to the active item dialogue. raw keeps the player's
// casing for the safe.
func (e *Engine) interact(ctx context.Context, raw, line string) error {
	switch e.session.mode {
	case ModeTerminal:
		e.terminalMenu(line)
	case ModeTerminalLogs:
		e.terminalLogs(line)
	case ModeTerminalEnding:
		return e.terminalEnding(ctx, line)
	case ModeWhiteboard:
		e.whiteboardMenu(line)
	case ModeWhiteboardSolve:
		return e.whiteboardSolve(ctx, line)
	case ModeBookshelf:
		e.bookshelf(line)
	case ModeBookshelfPoem:
		return e.bookshelfPoem(ctx, line)
	case ModeBookshelfPoemAnswer:
		return e.poemAnswer(ctx, line)
	case ModePiano:
		return e.piano(ctx, line)
	case ModePhotoSafePrompt:
		e.photoSafePrompt(line)
	case ModeSafe:
		return e.safe(ctx, raw, line)
	case ModeMirror:
		return e.mirror(ctx, line)
	case ModeCabinet:
		return e.cabinet(ctx, line)
	case ModeMusicBox:
		return e.musicBox(ctx, line)
	case ModeDiary:
		e.diary(line)
	case ModeDiaryAnswer:
		return e.diaryAnswer(ctx, line)
	case ModeDesk:
		e.desk(line)
	case ModeDeviceDestroy:
		e.deviceDestroy(line)
	case ModeDeviceCode:
		e.deviceCode(line)
	case ModeDeviceFinal:
		return e.deviceFinal(ctx, line)
	default:
		e.logger.Warn("input in unknown mode", zap.Stringer("mode", e.session.mode))
		e.leave()
	}
	return nil
}
