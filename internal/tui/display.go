package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/humanity/internal/models"
)

type clearMsg struct{}

type lineMsg string

type roomMsg models.Room

type itemMsg string

type sanityMsg int

// awaitMsg asks the player to press Enter before the engine continues.
type awaitMsg struct{}

// Display implements engine.Presenter for the bubbletea program. The engine
// runs in a command goroutine and every call becomes a message, so output
// reaches the model in the order it was produced.
type Display struct {
	events chan tea.Msg
	acks   chan struct{}
}

// NewDisplay returns a display ready to be handed to the engine.
func NewDisplay() *Display {
	return &Display{
		events: make(chan tea.Msg, 256),
		acks:   make(chan struct{}, 1),
	}
}

func (d *Display) ClearDisplay() {
	d.events <- clearMsg{}
}

func (d *Display) ShowLine(text string) {
	d.events <- lineMsg(text)
}

func (d *Display) ShowLines(lines []string) {
	for _, l := range lines {
		d.ShowLine(l)
	}
}

func (d *Display) SetRoomImage(room models.Room) {
	d.events <- roomMsg(room)
}

func (d *Display) SetItemImage(item string) {
	d.events <- itemMsg(item)
}

func (d *Display) SetSanityIndicator(value int) {
	d.events <- sanityMsg(value)
}

func (d *Display) AwaitAcknowledge(ctx context.Context) error {
	select {
	case d.events <- awaitMsg{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-d.acks:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// acknowledge releases a pending AwaitAcknowledge. Extra presses are dropped.
func (d *Display) acknowledge() {
	select {
	case d.acks <- struct{}{}:
	default:
	}
}

// send queues a message produced outside the Presenter calls.
func (d *Display) send(msg tea.Msg) {
	d.events <- msg
}

// next waits for the next message from the engine.
func (d *Display) next() tea.Cmd {
	return func() tea.Msg {
		return <-d.events
	}
}
