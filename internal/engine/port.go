package engine

import (
	"context"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
)

// Presenter is the display the engine writes to. Implementations decide how
// lines and images are rendered.
type Presenter interface {
	ClearDisplay()
	ShowLine(text string)
	ShowLines(lines []string)
	SetRoomImage(room models.Room)
	SetItemImage(item string)
	SetSanityIndicator(value int)
	// AwaitAcknowledge blocks until the player acknowledges the current
	// screen or ctx is done.
	AwaitAcknowledge(ctx context.Context) error
}

// Content is the narrative text the engine reads. Lookups have no side
// effects. *content.Store implements it.
type Content interface {
	RoomName(room models.Room) string
	LookText(room models.Room) []string
	ItemText(room models.Room, item string) []string
	LogPage(n int) []string
	DiaryPage(n int) []string
	Lines(key content.Key) []string
	Ghosts() []string
	SafePassword() string
}
