package transcript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/humanity/internal/models"
)

func TestRecorder_ScreenAndDrain(t *testing.T) {
	r := NewRecorder()
	r.ShowLine("one")
	r.ClearDisplay()
	r.ShowLines([]string{"two", "three"})

	assert.Equal(t, []string{"two", "three"}, r.Screen())
	assert.True(t, r.Contains("one"))
	assert.Equal(t, []string{"one", "two", "three"}, r.Drain())
	assert.Empty(t, r.Drain())
	assert.False(t, r.Contains("two"))
	assert.Equal(t, 1, r.Clears)
}

func TestRecorder_Images(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, models.MaxSanity, r.Sanity)

	r.SetItemImage("piano")
	assert.Equal(t, "piano", r.Item)
	r.SetRoomImage(models.LivingRoom)
	assert.Equal(t, models.LivingRoom, r.Room)
	assert.Empty(t, r.Item)

	r.SetSanityIndicator(40)
	assert.Equal(t, 40, r.Sanity)
}

func TestRecorder_AwaitAcknowledge(t *testing.T) {
	r := NewRecorder()
	require.NoError(t, r.AwaitAcknowledge(context.Background()))
	assert.Equal(t, 1, r.Acks)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.AwaitAcknowledge(ctx), context.Canceled)
	assert.Equal(t, 1, r.Acks)
}
