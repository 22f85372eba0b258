package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestWhiteboard(t *testing.T) {
	assert.True(t, Whiteboard("1"))
	assert.True(t, Whiteboard(" 1 "))
	assert.False(t, Whiteboard("5"))
	assert.False(t, Whiteboard("one"))
}

func TestPoemAndDiary_CaseInsensitive(t *testing.T) {
	assert.True(t, Poem("REASON"))
	assert.True(t, Poem("Reason"))
	assert.False(t, Poem("reasons"))
	assert.True(t, Diary("Emotion"))
	assert.False(t, Diary("emotions"))
	assert.True(t, DeviceFinal("MoRaLiTy"))
	assert.False(t, DeviceFinal("moral"))
}

func TestPianoSequence(t *testing.T) {
	for _, in := range []string{"dafa", "D A F A", "d-a-f-a", "D-A F-a", " DAFA "} {
		assert.True(t, PianoSequence(in), in)
	}
	for _, in := range []string{"dafb", "daf", "back", "", "d.a.f.a"} {
		assert.False(t, PianoSequence(in), in)
	}
}

func TestPianoSequence_IgnoresSeparators(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seps := rapid.SliceOfN(rapid.SampledFrom([]string{"", " ", "-", "  ", "- "}), 5, 5).Draw(t, "seps")
		upper := rapid.SliceOfN(rapid.Bool(), 4, 4).Draw(t, "upper")
		var b strings.Builder
		for i, r := range "dafa" {
			b.WriteString(seps[i])
			note := string(r)
			if upper[i] {
				note = strings.ToUpper(note)
			}
			b.WriteString(note)
		}
		b.WriteString(seps[4])
		if !PianoSequence(b.String()) {
			t.Fatalf("sequence %q should match", b.String())
		}
	})
}

func TestSafePassword_CaseSensitive(t *testing.T) {
	assert.True(t, SafePassword("AnImA", "AnImA"))
	assert.False(t, SafePassword("anima", "AnImA"))
	assert.False(t, SafePassword("ANIMA", "AnImA"))
	assert.False(t, SafePassword("", ""))
}

func TestDeviceCode(t *testing.T) {
	assert.True(t, DeviceCode("1967"))
	assert.False(t, DeviceCode("1968"))
	assert.False(t, DeviceCode("19 67"))
}

func TestBookshelf(t *testing.T) {
	assert.Equal(t, ShelfPoem, Bookshelf("9 5"))
	assert.Equal(t, ShelfPoem, Bookshelf("  9   5 "))
	assert.Equal(t, ShelfNote, Bookshelf("4 20"))
	assert.Equal(t, ShelfMiss, Bookshelf("5 9"))
	assert.Equal(t, ShelfInvalid, Bookshelf("nine five"))
	assert.Equal(t, ShelfInvalid, Bookshelf("9"))
	assert.Equal(t, ShelfInvalid, Bookshelf("9 5 1"))
}

func TestAttempts(t *testing.T) {
	var a Attempts
	for i := 0; i < HintThreshold-1; i++ {
		a.Miss()
		assert.False(t, a.HintAvailable())
	}
	a.Miss()
	assert.True(t, a.HintAvailable())
}
