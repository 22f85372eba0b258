package engine

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
	"github.com/tatianab/humanity/internal/transcript"
)

const restoreOption = "3. RESTORE HUMANITY"

func allFragments() *models.GameState {
	s := models.NewGameState()
	s.Reason, s.Emotion, s.Morality = true, true, true
	return s
}

func TestTerminal_Menu(t *testing.T) {
	e, rec := newTestEngine(t, nil, calm)

	play(t, e, "check monitors")
	assert.Equal(t, ModeTerminal, e.Mode())
	assert.Equal(t, "terminal", rec.Item)
	assert.NotContains(t, rec.Screen(), restoreOption)

	rec.Drain()
	play(t, e, "3")
	assert.Equal(t, []string{"Invalid option."}, rec.Drain())
	play(t, e, "9")
	assert.Equal(t, []string{"Invalid option."}, rec.Drain())

	play(t, e, "1")
	assert.Contains(t, rec.Screen(), "SANITY: 100%")
	assert.Contains(t, rec.Screen(), "MORALITY: MISSING")
	assert.Equal(t, ModeTerminal, e.Mode())

	play(t, e, "4")
	assert.Equal(t, ModeNone, e.Mode())
}

func TestTerminal_Logs(t *testing.T) {
	e, rec := newTestEngine(t, nil, calm)
	c := loadContent(t)

	play(t, e, "check terminal", "2")
	assert.Equal(t, ModeTerminalLogs, e.Mode())
	assert.Equal(t, c.LogPage(1), rec.Screen()[:len(c.LogPage(1))])

	play(t, e, "prev page")
	assert.Contains(t, rec.Screen(), "Page 1/5 | Commands: 'next page', 'prev page', 'back'")

	play(t, e, "next page", "next page", "next page", "next page", "next page")
	assert.Contains(t, rec.Screen(), "Page 5/5 | Commands: 'next page', 'prev page', 'back'")
	assert.Equal(t, c.LogPage(5), rec.Screen()[:len(c.LogPage(5))])

	play(t, e, "back")
	assert.Equal(t, ModeTerminal, e.Mode())
	assert.Contains(t, rec.Screen(), "=== PATIENT STATUS ===")
	assert.Contains(t, rec.Screen(), "=== TERMINAL MENU ===")
}

func TestTerminal_LogsCorruptedAfterErasure(t *testing.T) {
	s := models.NewGameState()
	s.DeviceActivated = true
	e, rec := newTestEngine(t, s, calm)

	play(t, e, "check terminal", "2")
	assert.Equal(t, ModeTerminal, e.Mode())
	assert.Contains(t, rec.Screen(), "DATA CORRUPTED.")
}

func TestTerminal_RestoreOptionNeedsAllFragments(t *testing.T) {
	c := loadContent(t)
	rapid.Check(t, func(t *rapid.T) {
		s := models.NewGameState()
		s.Reason = rapid.Bool().Draw(t, "reason")
		s.Emotion = rapid.Bool().Draw(t, "emotion")
		s.Morality = rapid.Bool().Draw(t, "morality")
		all := s.AllFragments()

		rec := transcript.NewRecorder()
		e, err := NewWithState(s, c, rec, calm, nil)
		if err != nil {
			t.Fatal(err)
		}
		play(t, e, "check terminal")
		if shown := slices.Contains(rec.Screen(), restoreOption); shown != all {
			t.Fatalf("restore option shown=%v with all fragments=%v", shown, all)
		}
		play(t, e, "3")
		if (e.Mode() == ModeTerminalEnding) != all {
			t.Fatalf("ending prompt reached=%v with all fragments=%v", e.Mode() == ModeTerminalEnding, all)
		}
	})
}

func TestTerminal_Endings(t *testing.T) {
	c := loadContent(t)
	tests := []struct {
		answer   string
		want     Status
		epilogue content.Key
	}{
		{"yes", StatusGoodEnding, content.EpilogueGood},
		{"NO", StatusBadEnding, content.EpilogueBad},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			e, rec := newTestEngine(t, allFragments(), calm)

			play(t, e, "check terminal", "3")
			require.Equal(t, ModeTerminalEnding, e.Mode())
			assert.Contains(t, rec.Screen(), "WARNING: RESTORING HUMANITY CANNOT BE UNDONE.")

			rec.Drain()
			play(t, e, "maybe")
			assert.Equal(t, []string{"Type 'yes' to proceed or 'no' to cancel."}, rec.Drain())
			assert.Equal(t, StatusPlaying, e.Status())

			status, err := e.Handle(context.Background(), tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, len(c.Lines(tt.epilogue))+1, rec.Acks)
			assert.Equal(t, c.Lines(tt.epilogue)[0], rec.Screen()[0])
			assert.True(t, rec.Contains("Thank you for playing"))
			assert.Equal(t, ModeNone, e.Mode())

			_, err = e.Handle(context.Background(), "look")
			assert.ErrorIs(t, err, ErrSessionOver)
		})
	}
}

func TestTerminal_EndedRunCannotBeResumed(t *testing.T) {
	for _, answer := range []string{"yes", "no"} {
		t.Run(answer, func(t *testing.T) {
			e, _ := newTestEngine(t, allFragments(), calm)
			play(t, e, "check terminal", "3", answer)
			require.True(t, e.Status().Over())
			assert.Equal(t, e.Status().String(), e.Snapshot().Status)

			resumed, rec := resume(t, e)
			assert.Equal(t, e.Status(), resumed.Status())
			status, err := resumed.Handle(context.Background(), "look")
			assert.ErrorIs(t, err, ErrSessionOver)
			assert.Equal(t, e.Status(), status)
			assert.Empty(t, rec.Drain())
		})
	}
}

func TestStatus_AllFragmentsNotice(t *testing.T) {
	e, rec := newTestEngine(t, allFragments(), calm)
	play(t, e, "check terminal", "1")
	assert.Contains(t, rec.Screen(), loadContent(t).Lines(content.StatusAll)[0])
	assert.Contains(t, rec.Screen(), restoreOption)
}
