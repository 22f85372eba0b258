package models

import (
	"github.com/zyedidia/generic/mapset"
)

// MaxSanity is the sanity every playthrough starts with.
const MaxSanity = 100

// Room identifies one of the nine rooms of the house.
type Room int

const (
	Laboratory Room = iota
	Stairs
	LivingRoom
	Library
	Kitchen
	Hallway
	Bathroom
	Bedroom
	Office
)

// RoomCount is the number of rooms in the house.
const RoomCount = 9

var roomNames = [RoomCount]string{
	"laboratory",
	"stairs",
	"living room",
	"library",
	"kitchen",
	"hallway",
	"bathroom",
	"bedroom",
	"office",
}

// String returns the canonical lowercase name of the room.
func (r Room) String() string {
	if !r.Valid() {
		return "unknown"
	}
	return roomNames[r]
}

// Valid reports whether r is one of the nine rooms.
func (r Room) Valid() bool {
	return r >= 0 && r < RoomCount
}

// AllRooms returns every room in index order.
func AllRooms() []Room {
	rooms := make([]Room, RoomCount)
	for i := range rooms {
		rooms[i] = Room(i)
	}
	return rooms
}

// GameState represents the progress of a single playthrough.
//
// Flags are one-way: the methods below only ever set them. Sanity only
// changes through DrainSanity.
type GameState struct {
	Room    Room
	Visited mapset.Set[Room]
	Sanity  int

	HasKey         bool
	HasDiaryKey    bool
	HasMusicBoxKey bool
	HasRing        bool
	HasDevice      bool

	Reason   bool
	Emotion  bool
	Morality bool

	KnowsSafeLocation bool
	SafeOpened        bool
	DeviceActivated   bool
	KeyUsed           bool

	WhiteboardSolved bool
	PoemSolved       bool
	DiarySolved      bool

	IntroPlayed bool
}

// NewGameState returns the state a playthrough starts from: laboratory,
// full sanity, every flag false.
func NewGameState() *GameState {
	return &GameState{
		Room:    Laboratory,
		Visited: mapset.New[Room](),
		Sanity:  MaxSanity,
	}
}

// DrainSanity lowers sanity by n, never below zero.
func (s *GameState) DrainSanity(n int) {
	if n <= 0 {
		return
	}
	s.Sanity -= n
	if s.Sanity < 0 {
		s.Sanity = 0
	}
}

// MarkVisited records that the room has been looked at.
func (s *GameState) MarkVisited(r Room) {
	s.Visited.Put(r)
}

// HasVisited reports whether the room has been looked at.
func (s *GameState) HasVisited(r Room) bool {
	return s.Visited.Has(r)
}

// Fragment names one of the three pieces needed for the ending.
type Fragment int

const (
	FragmentReason Fragment = iota
	FragmentEmotion
	FragmentMorality
)

func (f Fragment) String() string {
	switch f {
	case FragmentReason:
		return "REASON"
	case FragmentEmotion:
		return "EMOTION"
	case FragmentMorality:
		return "MORALITY"
	default:
		return "UNKNOWN"
	}
}

// GrantFragment sets the fragment flag. It reports whether the flag was
// newly set.
func (s *GameState) GrantFragment(f Fragment) bool {
	var flag *bool
	switch f {
	case FragmentReason:
		flag = &s.Reason
	case FragmentEmotion:
		flag = &s.Emotion
	case FragmentMorality:
		flag = &s.Morality
	default:
		return false
	}
	if *flag {
		return false
	}
	*flag = true
	return true
}

// HasFragment reports whether the fragment has been found.
func (s *GameState) HasFragment(f Fragment) bool {
	switch f {
	case FragmentReason:
		return s.Reason
	case FragmentEmotion:
		return s.Emotion
	case FragmentMorality:
		return s.Morality
	}
	return false
}

// AllFragments reports whether the ending choice is unlocked.
func (s *GameState) AllFragments() bool {
	return s.Reason && s.Emotion && s.Morality
}
