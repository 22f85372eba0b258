// Package content provides the narrative text of the game: room
// descriptions, item descriptions, paged documents and fixed passages.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/humanity/internal/models"
)

//go:embed content.yaml
var embedded []byte

// Key names a fixed passage.
type Key string

const (
	Help         Key = "help"
	Prologue     Key = "prologue"
	EpilogueGood Key = "epilogue_good"
	EpilogueBad  Key = "epilogue_bad"
	Goodbye      Key = "goodbye"
	Wrong        Key = "wrong"
	StatusAll    Key = "status_all"

	WhiteboardPuzzle        Key = "whiteboard.puzzle"
	WhiteboardHint          Key = "whiteboard.hint"
	WhiteboardQuestion      Key = "whiteboard.question"
	WhiteboardHintAvailable Key = "whiteboard.hint_available"
	WhiteboardSolved        Key = "whiteboard.solved"
	WhiteboardSuccess       Key = "whiteboard.success"

	BookshelfPrompt     Key = "bookshelf.prompt"
	BookshelfPoemAccess Key = "bookshelf.poem_access"
	BookshelfSideNote   Key = "bookshelf.side_note"
	BookshelfMiss       Key = "bookshelf.miss"
	Poem                Key = "poem"
	PoemReplay          Key = "poem.replay"

	PianoNote   Key = "piano.note"
	PianoOpen   Key = "piano.open"
	PianoReward Key = "piano.reward"

	PhotoSafe  Key = "photo.safe"
	SafePrompt Key = "safe.prompt"

	MirrorNote Key = "mirror.note"

	CabinetFound    Key = "cabinet.found"
	CabinetSearched Key = "cabinet.searched"

	MusicBoxLocked Key = "musicbox.locked"
	MusicBoxRing   Key = "musicbox.ring"
	MusicBoxTaken  Key = "musicbox.taken"

	DiaryLocked Key = "diary.locked"
	DiaryReplay Key = "diary.replay"
	DiaryAnswer Key = "diary.answer"

	CipherDesk   Key = "cipher.desk"
	CipherDrawer Key = "cipher.drawer"

	DeviceIntro     Key = "device.intro"
	DeviceUsed      Key = "device.used"
	DeviceCode      Key = "device.code"
	DeviceCodeWrong Key = "device.code_wrong"
	DeviceFinal     Key = "device.final"
	DeviceSuccess   Key = "device.success"
)

var requiredKeys = []Key{
	Help, Prologue, EpilogueGood, EpilogueBad, Goodbye, Wrong, StatusAll,
	WhiteboardPuzzle, WhiteboardHint, WhiteboardQuestion, WhiteboardHintAvailable,
	WhiteboardSolved, WhiteboardSuccess,
	BookshelfPrompt, BookshelfPoemAccess, BookshelfSideNote, BookshelfMiss, Poem, PoemReplay,
	PianoNote, PianoOpen, PianoReward,
	PhotoSafe, SafePrompt, MirrorNote, CabinetFound, CabinetSearched,
	MusicBoxLocked, MusicBoxRing, MusicBoxTaken,
	DiaryLocked, DiaryReplay, DiaryAnswer, CipherDesk, CipherDrawer,
	DeviceIntro, DeviceUsed, DeviceCode, DeviceCodeWrong, DeviceFinal, DeviceSuccess,
}

// Pages is the number of pages in the test logs and in the diary.
const Pages = 5

// SafePasswordLength is the length of the safe combination.
const SafePasswordLength = 5

// yamlFile is the top-level YAML structure of a content file.
type yamlFile struct {
	SafePassword string              `yaml:"safe_password"`
	Rooms        []yamlRoom          `yaml:"rooms"`
	Texts        map[string][]string `yaml:"texts"`
	Logs         [][]string          `yaml:"logs"`
	Diary        [][]string          `yaml:"diary"`
	Ghosts       []string            `yaml:"ghosts"`
}

type yamlRoom struct {
	Name  string              `yaml:"name"`
	Title string              `yaml:"title"`
	Look  []string            `yaml:"look"`
	Items map[string][]string `yaml:"items"`
}

type room struct {
	title string
	look  []string
	items map[string][]string
}

// Store holds validated narrative content. Lookups are read-only.
type Store struct {
	rooms        [models.RoomCount]room
	texts        map[Key][]string
	logs         [][]string
	diary        [][]string
	ghosts       []string
	safePassword string
}

// Load returns the content embedded in the binary.
func Load() (*Store, error) {
	return LoadFromBytes(embedded)
}

// LoadFile reads and validates a content file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates content from YAML bytes.
func LoadFromBytes(data []byte) (*Store, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing content YAML: %w", err)
	}
	s, err := convert(file)
	if err != nil {
		return nil, fmt.Errorf("validating content: %w", err)
	}
	return s, nil
}

func convert(f yamlFile) (*Store, error) {
	if len(f.Rooms) != models.RoomCount {
		return nil, fmt.Errorf("expected %d rooms, got %d", models.RoomCount, len(f.Rooms))
	}
	s := &Store{
		texts:        make(map[Key][]string, len(f.Texts)),
		logs:         f.Logs,
		diary:        f.Diary,
		ghosts:       f.Ghosts,
		safePassword: f.SafePassword,
	}
	for i, yr := range f.Rooms {
		want := models.Room(i)
		if yr.Name != want.String() {
			return nil, fmt.Errorf("room %d: expected %q, got %q", i, want, yr.Name)
		}
		if yr.Title == "" {
			return nil, fmt.Errorf("room %q: title must not be empty", yr.Name)
		}
		if len(yr.Look) == 0 {
			return nil, fmt.Errorf("room %q: look must not be empty", yr.Name)
		}
		for name, lines := range yr.Items {
			if len(lines) == 0 {
				return nil, fmt.Errorf("room %q: item %q has no text", yr.Name, name)
			}
		}
		s.rooms[i] = room{title: yr.Title, look: yr.Look, items: yr.Items}
	}
	for k, v := range f.Texts {
		s.texts[Key(k)] = v
	}
	for _, k := range requiredKeys {
		if len(s.texts[k]) == 0 {
			return nil, fmt.Errorf("text %q is missing", k)
		}
	}
	if len(s.logs) != Pages {
		return nil, fmt.Errorf("expected %d log pages, got %d", Pages, len(s.logs))
	}
	if len(s.diary) != Pages {
		return nil, fmt.Errorf("expected %d diary pages, got %d", Pages, len(s.diary))
	}
	if len(s.ghosts) == 0 {
		return nil, fmt.Errorf("ghost pool must not be empty")
	}
	if len(s.safePassword) != SafePasswordLength {
		return nil, fmt.Errorf("safe_password must be %d characters", SafePasswordLength)
	}
	return s, nil
}

// RoomName returns the display title of the room.
func (s *Store) RoomName(r models.Room) string {
	if !r.Valid() {
		return ""
	}
	return s.rooms[r].title
}

// LookText returns the description of the room.
func (s *Store) LookText(r models.Room) []string {
	if !r.Valid() {
		return nil
	}
	return s.rooms[r].look
}

// ItemText returns the description of an item in the room. An empty result
// means the item is not in the room.
func (s *Store) ItemText(r models.Room, item string) []string {
	if !r.Valid() {
		return nil
	}
	return s.rooms[r].items[item]
}

// HasItem reports whether the room contains the item.
func (s *Store) HasItem(r models.Room, item string) bool {
	return len(s.ItemText(r, item)) > 0
}

// LogPage returns page n (1-based) of the test logs.
func (s *Store) LogPage(n int) []string {
	return page(s.logs, n)
}

// DiaryPage returns page n (1-based) of the diary.
func (s *Store) DiaryPage(n int) []string {
	return page(s.diary, n)
}

func page(pages [][]string, n int) []string {
	if n < 1 || n > len(pages) {
		return nil
	}
	return pages[n-1]
}

// Lines returns a fixed passage.
func (s *Store) Lines(k Key) []string {
	return s.texts[k]
}

// Ghosts returns the pool of ghost event lines.
func (s *Store) Ghosts() []string {
	return s.ghosts
}

// SafePassword returns the combination of the hallway safe.
func (s *Store) SafePassword() string {
	return s.safePassword
}
