package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Snapshot is the serialisable view of a GameState.
type Snapshot struct {
	Room      string    `yaml:"room"`
	Visited   []string  `yaml:"visited"`
	Sanity    int       `yaml:"sanity"`
	Inventory Inventory `yaml:"inventory"`
	Fragments Fragments `yaml:"fragments"`
	Knowledge Knowledge `yaml:"knowledge"`
	Puzzles   Puzzles   `yaml:"puzzles"`
	Intro     bool      `yaml:"intro_played"`

	// Status is the session status as the engine names it. Empty means
	// the run is still in progress.
	Status string `yaml:"status,omitempty"`
}

type Inventory struct {
	Key         bool `yaml:"key"`
	DiaryKey    bool `yaml:"diary_key"`
	MusicBoxKey bool `yaml:"music_box_key"`
	Ring        bool `yaml:"ring"`
	Device      bool `yaml:"device"`
}

type Fragments struct {
	Reason   bool `yaml:"reason"`
	Emotion  bool `yaml:"emotion"`
	Morality bool `yaml:"morality"`
}

type Knowledge struct {
	SafeLocation    bool `yaml:"safe_location"`
	SafeOpened      bool `yaml:"safe_opened"`
	DeviceActivated bool `yaml:"device_activated"`
	KeyUsed         bool `yaml:"key_used"`
}

// Puzzles records the solved puzzles whose dialogues only replay once done.
type Puzzles struct {
	Whiteboard bool `yaml:"whiteboard"`
	Poem       bool `yaml:"poem"`
	Diary      bool `yaml:"diary"`
}

// HistoryEntry represents a single turn of a run.
type HistoryEntry struct {
	Turn   int      `yaml:"turn"`
	Input  string   `yaml:"input"`
	Output []string `yaml:"output,omitempty"`
	Status string   `yaml:"status"`
}

// Run aggregates the artifacts of one recorded playthrough.
type Run struct {
	ID      string         `yaml:"id"`
	State   Snapshot       `yaml:"state"`
	History []HistoryEntry `yaml:"history"`
}

// SnapshotOf captures the current state.
func SnapshotOf(s *GameState) Snapshot {
	snap := Snapshot{
		Room:   s.Room.String(),
		Sanity: s.Sanity,
		Inventory: Inventory{
			Key:         s.HasKey,
			DiaryKey:    s.HasDiaryKey,
			MusicBoxKey: s.HasMusicBoxKey,
			Ring:        s.HasRing,
			Device:      s.HasDevice,
		},
		Fragments: Fragments{
			Reason:   s.Reason,
			Emotion:  s.Emotion,
			Morality: s.Morality,
		},
		Knowledge: Knowledge{
			SafeLocation:    s.KnowsSafeLocation,
			SafeOpened:      s.SafeOpened,
			DeviceActivated: s.DeviceActivated,
			KeyUsed:         s.KeyUsed,
		},
		Puzzles: Puzzles{
			Whiteboard: s.WhiteboardSolved,
			Poem:       s.PoemSolved,
			Diary:      s.DiarySolved,
		},
		Intro: s.IntroPlayed,
	}
	for _, r := range AllRooms() {
		if s.HasVisited(r) {
			snap.Visited = append(snap.Visited, r.String())
		}
	}
	return snap
}

// RoomByName returns the room with the given canonical name.
func RoomByName(name string) (Room, bool) {
	for i, n := range roomNames {
		if n == name {
			return Room(i), true
		}
	}
	return 0, false
}

// Restore rebuilds a GameState from the snapshot.
func (snap Snapshot) Restore() (*GameState, error) {
	room, ok := RoomByName(snap.Room)
	if !ok {
		return nil, fmt.Errorf("unknown room %q", snap.Room)
	}
	if snap.Sanity < 0 || snap.Sanity > MaxSanity {
		return nil, fmt.Errorf("sanity %d out of range", snap.Sanity)
	}
	s := NewGameState()
	s.Room = room
	s.Sanity = snap.Sanity
	for _, name := range snap.Visited {
		r, ok := RoomByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown visited room %q", name)
		}
		s.MarkVisited(r)
	}
	s.HasKey = snap.Inventory.Key
	s.HasDiaryKey = snap.Inventory.DiaryKey
	s.HasMusicBoxKey = snap.Inventory.MusicBoxKey
	s.HasRing = snap.Inventory.Ring
	s.HasDevice = snap.Inventory.Device
	s.Reason = snap.Fragments.Reason
	s.Emotion = snap.Fragments.Emotion
	s.Morality = snap.Fragments.Morality
	s.KnowsSafeLocation = snap.Knowledge.SafeLocation
	s.SafeOpened = snap.Knowledge.SafeOpened
	s.DeviceActivated = snap.Knowledge.DeviceActivated
	s.KeyUsed = snap.Knowledge.KeyUsed
	s.WhiteboardSolved = snap.Puzzles.Whiteboard
	s.PoemSolved = snap.Puzzles.Poem
	s.DiarySolved = snap.Puzzles.Diary
	s.IntroPlayed = snap.Intro
	return s, nil
}

const (
	stateFile   = "state.yaml"
	historyFile = "history.yaml"
)

// Save writes the run into dir/<id>: the final state and the turn history
// as separate files.
func (r *Run) Save(dir string) error {
	if r.ID == "" {
		return fmt.Errorf("run has no id")
	}
	runDir := filepath.Join(dir, r.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("creating run dir: %w", err)
	}
	if err := writeYAML(filepath.Join(runDir, historyFile), r.History); err != nil {
		return err
	}
	// written last; ListRuns treats its presence as a complete run
	return writeYAML(filepath.Join(runDir, stateFile), r.State)
}

// LoadRun reads a run saved by Save.
func LoadRun(dir, id string) (*Run, error) {
	runDir := filepath.Join(dir, id)
	run := &Run{ID: id}
	if err := readYAML(filepath.Join(runDir, stateFile), &run.State); err != nil {
		return nil, err
	}
	if err := readYAML(filepath.Join(runDir, historyFile), &run.History); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the ids of the complete runs in dir. A missing dir has
// no runs.
func ListRuns(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	runs := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), stateFile)); err == nil {
			runs = append(runs, entry.Name())
		}
	}
	return runs, nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
