// Package transcript records everything the engine presents. It is the
// display used by tests and by the simulator, where nobody is around to
// press a key.
package transcript

import (
	"context"
	"slices"
	"strings"

	"github.com/tatianab/humanity/internal/models"
)

// Recorder implements engine.Presenter by keeping the output in memory.
// Acknowledgments return immediately unless the context is already done.
type Recorder struct {
	screen  []string
	pending []string

	Room   models.Room
	Item   string
	Sanity int
	Acks   int
	Clears int
}

// NewRecorder returns an empty recorder showing full sanity.
func NewRecorder() *Recorder {
	return &Recorder{Sanity: models.MaxSanity}
}

func (r *Recorder) ClearDisplay() {
	r.Clears++
	r.screen = r.screen[:0]
}

func (r *Recorder) ShowLine(text string) {
	r.screen = append(r.screen, text)
	r.pending = append(r.pending, text)
}

func (r *Recorder) ShowLines(lines []string) {
	for _, l := range lines {
		r.ShowLine(l)
	}
}

func (r *Recorder) SetRoomImage(room models.Room) {
	r.Room = room
	r.Item = ""
}

func (r *Recorder) SetItemImage(item string) {
	r.Item = item
}

func (r *Recorder) SetSanityIndicator(value int) {
	r.Sanity = value
}

func (r *Recorder) AwaitAcknowledge(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Acks++
	return nil
}

// Screen returns the lines shown since the last ClearDisplay.
func (r *Recorder) Screen() []string {
	return slices.Clone(r.screen)
}

// Drain returns every line shown since the previous Drain, regardless of
// clears, and forgets them.
func (r *Recorder) Drain() []string {
	out := r.pending
	r.pending = nil
	return out
}

// Contains reports whether any line since the last Drain contains substr.
func (r *Recorder) Contains(substr string) bool {
	return slices.ContainsFunc(r.pending, func(l string) bool {
		return strings.Contains(l, substr)
	})
}
