package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/humanity/internal/models"
)

// adjacency lists the doors of the house. Every door works both ways.
var adjacency = map[models.Room][]models.Room{
	models.Laboratory: {models.Stairs},
	models.Stairs:     {models.Laboratory, models.LivingRoom, models.Hallway},
	models.LivingRoom: {models.Stairs, models.Library, models.Kitchen, models.Hallway},
	models.Library:    {models.LivingRoom},
	models.Kitchen:    {models.LivingRoom},
	models.Hallway:    {models.Stairs, models.LivingRoom, models.Bathroom, models.Bedroom, models.Office},
	models.Bathroom:   {models.Hallway, models.Bedroom},
	models.Bedroom:    {models.Hallway, models.Bathroom},
	models.Office:     {models.Hallway},
}

type edge struct {
	from, to models.Room
}

// gates are doors that only open under a condition. The reverse direction
// stays free.
var gates = map[edge]func(*models.GameState) bool{
	{models.Hallway, models.Office}: func(s *models.GameState) bool { return s.HasKey },
}

var roomAliases = map[string]models.Room{
	"lab":        models.Laboratory,
	"livingroom": models.LivingRoom,
}

// ResolveRoom maps a player-typed room name to a room.
func ResolveRoom(name string) (models.Room, bool) {
	if r, ok := models.RoomByName(name); ok {
		return r, true
	}
	r, ok := roomAliases[name]
	return r, ok
}

// Adjacent reports whether a door connects the two rooms, ignoring gates.
func Adjacent(from, to models.Room) bool {
	for _, r := range adjacency[from] {
		if r == to {
			return true
		}
	}
	return false
}

// Gated reports whether the door from -> to needs a condition.
func Gated(from, to models.Room) bool {
	_, ok := gates[edge{from, to}]
	return ok
}

// CanTravel reports whether the player may walk from one room to the other
// given the current state.
func CanTravel(from, to models.Room, s *models.GameState) bool {
	if !Adjacent(from, to) {
		return false
	}
	if open, ok := gates[edge{from, to}]; ok {
		return open(s)
	}
	return true
}

func (e *Engine) goTo(name string) {
	to, ok := ResolveRoom(name)
	if !ok {
		e.out.ShowLine(fmt.Sprintf("Error: Unknown room '%s'. Try again.", name))
		return
	}
	from := e.state.Room
	if !Adjacent(from, to) {
		e.out.ShowLine("You can't go to that room from here.")
		return
	}
	if Gated(from, to) {
		if !CanTravel(from, to, e.state) {
			e.out.ShowLine("The room is locked. You need a key.")
			return
		}
		if !e.state.KeyUsed {
			e.state.KeyUsed = true
			e.out.ShowLine("You used the key.")
		}
	}

	e.state.Room = to
	e.logger.Debug("moved",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	e.out.ShowLine(fmt.Sprintf("You move to the %s.", e.content.RoomName(to)))

	e.randomEvent()

	e.out.SetRoomImage(to)
	e.out.SetSanityIndicator(e.state.Sanity)
	e.look()
}
