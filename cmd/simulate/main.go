// Command simulate lets a Gemini model play the game and records the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/tatianab/humanity/internal/config"
	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/engine"
	"github.com/tatianab/humanity/internal/models"
	"github.com/tatianab/humanity/internal/observability"
	"github.com/tatianab/humanity/internal/transcript"
)

// historyWindow is how many past turns the player model sees.
const historyWindow = 8

var (
	colorTurn   = color.Style{color.FgGray, color.OpBold}
	colorAction = color.Style{color.FgMagenta, color.OpBold}
	colorStatus = color.Style{color.FgGray}
	colorEnding = color.Style{color.FgGreen, color.OpBold}
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: ./humanity.yaml if present)")
	resume := flag.String("resume", "", "id of a saved run to continue")
	turns := flag.Int("turns", 0, "override simulate.max_turns")
	logOutput := flag.String("log", "stderr", "log output path")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *turns > 0 {
		cfg.Simulate.MaxTurns = *turns
	}
	cfg.Logging.Output = *logOutput

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	store, err := loadContent(cfg.Game)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}

	// Initialize the game, fresh or from a saved run
	rec := transcript.NewRecorder()
	rng := engine.NewSource(cfg.Game.Seed)
	run := &models.Run{ID: uuid.NewString()}
	var eng *engine.Engine
	if *resume != "" {
		run, err = models.LoadRun(cfg.Simulate.SaveDir, *resume)
		if err != nil {
			logger.Fatal("loading run", zap.String("run", *resume), zap.Error(err))
		}
		eng, err = engine.Resume(run.State, store, rec, rng, logger)
		if err != nil {
			logger.Fatal("restoring run", zap.String("run", *resume), zap.Error(err))
		}
		if eng.Status().Over() {
			logger.Fatal("run already finished",
				zap.String("run", run.ID),
				zap.Stringer("status", eng.Status()),
			)
		}
	} else {
		eng, err = engine.New(store, rec, rng, logger)
		if err != nil {
			logger.Fatal("creating engine", zap.Error(err))
		}
	}

	// Initialize the Player LLM
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		logger.Fatal("creating gemini client", zap.Error(err))
	}
	defer client.Close()
	player := client.GenerativeModel(cfg.Gemini.Model)

	logger.Info("simulation started",
		zap.String("run", run.ID),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("max_turns", cfg.Simulate.MaxTurns),
	)

	if err := eng.Start(ctx); err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}
	fmt.Println(strings.Join(rec.Drain(), "\n"))

	// Play the game
	first := len(run.History) + 1
	for turn := first; turn < first+cfg.Simulate.MaxTurns; turn++ {
		colorTurn.Printf("--- Turn %d ---\n", turn)

		action := playerAction(ctx, logger, player, rec.Screen(), eng, run.History)
		colorAction.Printf("Player Action: %s\n", action)

		status, err := eng.Handle(ctx, action)
		output := rec.Drain()
		run.History = append(run.History, models.HistoryEntry{
			Turn:   turn,
			Input:  action,
			Output: output,
			Status: status.String(),
		})
		if err != nil {
			logger.Error("turn failed", zap.Int("turn", turn), zap.Error(err))
			break
		}
		fmt.Println(strings.Join(output, "\n"))
		colorStatus.Printf("Sanity: %d  Mode: %s  Status: %s\n\n", eng.State().Sanity, eng.Mode(), status)

		if status.Over() {
			colorEnding.Printf("Game Ended: %s\n", status)
			break
		}
	}

	run.State = eng.Snapshot()
	if err := run.Save(cfg.Simulate.SaveDir); err != nil {
		logger.Fatal("saving run", zap.Error(err))
	}
	runs, err := models.ListRuns(cfg.Simulate.SaveDir)
	if err != nil {
		logger.Warn("listing runs", zap.Error(err))
	}
	logger.Info("simulation finished",
		zap.String("run", run.ID),
		zap.Stringer("status", eng.Status()),
		zap.Int("turns", len(run.History)),
		zap.Int("saved_runs", len(runs)),
	)
	fmt.Printf("Run saved as %s\n", run.ID)
}

func playerAction(ctx context.Context, logger *zap.Logger, model *genai.GenerativeModel, screen []string, eng *engine.Engine, history []models.HistoryEntry) string {
	var historyText strings.Builder
	for _, entry := range history[max(0, len(history)-historyWindow):] {
		fmt.Fprintf(&historyText, "Action: %s\nOutcome: %s\n", entry.Input, strings.Join(entry.Output, " / "))
	}

	snap := models.SnapshotOf(eng.State())
	prompt := fmt.Sprintf(`You are playing HUMANITY, a text adventure set in an abandoned house.
Top-level commands: HELP, LOOK, CHECK <item>, GO TO <room>, USE <item>.
While examining an item, follow the instructions on screen (for example 'back', 'solve', 'next page').
Find the three fragments REASON, EMOTION and MORALITY, then restore humanity at the laboratory terminal.
Never type QUIT or EXIT.

Current screen:
%s

Room: %s
Sanity: %d
Inventory: %+v
Fragments: %+v
Currently interacting with: %s

Recent history:
%s

What do you type next? Return ONLY the input line, no extra commentary.`,
		strings.Join(screen, "\n"),
		snap.Room,
		snap.Sanity,
		snap.Inventory,
		snap.Fragments,
		eng.Mode(),
		historyText.String(),
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	return actionFrom(resp, err, logger)
}

// actionFrom extracts the input line from the model's reply. A failed call
// falls back to "look" and an empty reply to "help".
func actionFrom(resp *genai.GenerateContentResponse, err error, logger *zap.Logger) string {
	if err != nil {
		logger.Warn("player model failed, falling back to look", zap.Error(err))
		return "look"
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		logger.Warn("player model returned no candidates")
		return "help"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.LoadConfig()
}

func loadContent(cfg config.GameConfig) (*content.Store, error) {
	if cfg.ContentPath != "" {
		return content.LoadFile(cfg.ContentPath)
	}
	return content.Load()
}
