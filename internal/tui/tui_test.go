package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/engine"
	"github.com/tatianab/humanity/internal/models"
)

type calmSource struct{}

func (calmSource) IntN(n int) int { return n - 1 }

func newTestModel(t *testing.T) (model, *Display) {
	t.Helper()
	c, err := content.Load()
	require.NoError(t, err)
	d := NewDisplay()
	eng, err := engine.New(c, d, calmSource{}, nil)
	require.NoError(t, err)
	return newModel(context.Background(), eng, d, zap.NewNop()), d
}

func TestSanityColor(t *testing.T) {
	tests := []struct {
		sanity int
		want   lipgloss.Color
	}{
		{100, "#5FD75F"}, {75, "#5FD75F"},
		{74, "#FFD75F"}, {50, "#FFD75F"},
		{49, "#FF8700"}, {25, "#FF8700"},
		{24, "#D70000"}, {0, "#D70000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanityColor(tt.sanity), "sanity %d", tt.sanity)
	}
}

func TestSanityBar(t *testing.T) {
	assert.Contains(t, sanityBar(100), "100%")
	assert.Equal(t, sanityBarWidth, strings.Count(sanityBar(100), "█"))
	assert.Equal(t, sanityBarWidth/2, strings.Count(sanityBar(50), "█"))
	assert.Equal(t, 0, strings.Count(sanityBar(0), "█"))
}

func TestDisplay_AwaitAcknowledge(t *testing.T) {
	d := NewDisplay()
	done := make(chan error, 1)
	go func() { done <- d.AwaitAcknowledge(context.Background()) }()

	assert.Equal(t, awaitMsg{}, <-d.events)
	d.acknowledge()
	d.acknowledge() // dropped, nobody is waiting

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("acknowledgment was not delivered")
	}
}

func TestDisplay_AwaitAcknowledgeCancelled(t *testing.T) {
	d := NewDisplay()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.AwaitAcknowledge(ctx) }()

	<-d.events
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancellation was not observed")
	}
}

func TestModel_Messages(t *testing.T) {
	m, d := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	next, _ = m.Update(lineMsg("hello"))
	m = next.(model)
	require.Len(t, m.lines, 1)
	assert.Contains(t, m.lines[0], "hello")

	next, _ = m.Update(roomMsg(models.Hallway))
	m = next.(model)
	next, _ = m.Update(itemMsg("photo"))
	m = next.(model)
	next, _ = m.Update(sanityMsg(40))
	m = next.(model)
	assert.Equal(t, models.Hallway, m.room)
	assert.Equal(t, "photo", m.item)
	assert.Equal(t, 40, m.sanity)
	assert.Contains(t, m.View(), "HALLWAY")

	next, _ = m.Update(clearMsg{})
	m = next.(model)
	assert.Empty(t, m.lines)

	next, _ = m.Update(awaitMsg{})
	m = next.(model)
	assert.Equal(t, stateWaiting, m.state)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	assert.Equal(t, stateBusy, m.state)
	assert.Len(t, d.acks, 1)

	next, _ = m.Update(turnDoneMsg{status: engine.StatusPlaying})
	m = next.(model)
	assert.Equal(t, statePlaying, m.state)

	next, _ = m.Update(turnDoneMsg{status: engine.StatusQuit})
	m = next.(model)
	assert.Equal(t, stateOver, m.state)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

// TestModel_StartDeliversInOrder runs the engine's Start the way the program
// does and answers every acknowledgment.
func TestModel_StartDeliversInOrder(t *testing.T) {
	m, d := newTestModel(t)
	c, err := content.Load()
	require.NoError(t, err)

	go m.start()()

	var lines []string
	acks := 0
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-d.events:
			switch msg := msg.(type) {
			case lineMsg:
				lines = append(lines, string(msg))
			case awaitMsg:
				acks++
				d.acknowledge()
			case turnDoneMsg:
				require.NoError(t, msg.err)
				assert.Equal(t, engine.StatusPlaying, msg.status)
				assert.True(t, msg.snapshot.Intro)
				assert.Equal(t, len(c.Lines(content.Prologue)), acks)
				assert.Equal(t, c.Lines(content.Prologue), lines[:acks])
				return
			}
		case <-timeout:
			t.Fatal("engine did not finish starting")
		}
	}
}
