package engine

import (
	"context"
	"fmt"

	"github.com/tatianab/humanity/internal/content"
	"github.com/tatianab/humanity/internal/models"
	"github.com/tatianab/humanity/internal/puzzle"
)

// Item is an object with its own behaviour. Objects that only have a
// description are ItemPlain.
type Item int

const (
	ItemPlain Item = iota
	ItemFloor
	ItemTerminal
	ItemWhiteboard
	ItemBookshelf
	ItemTable
	ItemClock
	ItemNewspaper
	ItemPiano
	ItemPhoto
	ItemMirror
	ItemCabinet
	ItemMusicBox
	ItemDiary
	ItemDesk
)

type itemInfo struct {
	name string
	room models.Room
}

var items = map[Item]itemInfo{
	ItemFloor:      {"floor", models.Stairs},
	ItemTerminal:   {"terminal", models.Laboratory},
	ItemWhiteboard: {"whiteboard", models.Laboratory},
	ItemBookshelf:  {"bookshelf", models.Library},
	ItemTable:      {"table", models.Library},
	ItemClock:      {"clock", models.LivingRoom},
	ItemNewspaper:  {"newspaper", models.Kitchen},
	ItemPiano:      {"piano", models.LivingRoom},
	ItemPhoto:      {"photo", models.Hallway},
	ItemMirror:     {"mirror", models.Bathroom},
	ItemCabinet:    {"cabinet", models.Bathroom},
	ItemMusicBox:   {"music box", models.Bedroom},
	ItemDiary:      {"diary", models.Bedroom},
	ItemDesk:       {"desk", models.Office},
}

var itemAliases = map[string]Item{
	"monitor":  ItemTerminal,
	"monitors": ItemTerminal,
}

var itemsByName = func() map[string]Item {
	m := make(map[string]Item, len(items)+len(itemAliases))
	for it, info := range items {
		m[info.name] = it
	}
	for alias, it := range itemAliases {
		m[alias] = it
	}
	return m
}()

// ResolveItem maps a player-typed item name to its kind and the name its
// text is stored under.
func ResolveItem(name string) (Item, string) {
	if it, ok := itemsByName[name]; ok {
		return it, items[it].name
	}
	return ItemPlain, name
}

func (it Item) String() string {
	if info, ok := items[it]; ok {
		return info.name
	}
	return "plain"
}

// checkItems makes sure every item with behaviour is described in its room.
func checkItems(c Content) error {
	for it, info := range items {
		if len(c.ItemText(info.room, info.name)) == 0 {
			return fmt.Errorf("engine: content has no %q in the %s", it, info.room)
		}
	}
	return nil
}

func (e *Engine) check(ctx context.Context, arg string) error {
	if arg == "" {
		e.out.ShowLine("Error: CHECK command requires an item name.")
		return nil
	}
	item, name := ResolveItem(arg)
	text := e.content.ItemText(e.state.Room, name)
	if len(text) == 0 {
		e.out.ShowLine(fmt.Sprintf("Error: There is no item named '%s' in this room.", arg))
		return nil
	}

	e.out.SetItemImage(name)
	e.out.ClearDisplay()

	switch item {
	case ItemTerminal:
		e.openTerminal(text)
	case ItemWhiteboard:
		return e.openWhiteboard(ctx, text)
	case ItemBookshelf:
		e.openBookshelf(text)
	case ItemPiano:
		return e.openPiano(ctx, text)
	case ItemPhoto:
		return e.openPhoto(ctx, text)
	case ItemMirror:
		e.out.ShowLines(text)
		e.out.ShowLine("")
		e.out.ShowLine("Type 'read note' to read it, or 'back' to return.")
		e.setMode(ModeMirror)
	case ItemCabinet:
		return e.openCabinet(ctx, text)
	case ItemMusicBox:
		return e.openMusicBox(ctx, text)
	case ItemDiary:
		return e.openDiary(ctx, text)
	case ItemDesk:
		e.out.ShowLines(text)
		e.deskPrompt()
		e.setMode(ModeDesk)
	case ItemFloor:
		e.out.ShowLines(text)
		if !e.state.HasKey {
			e.state.HasKey = true
			e.out.ShowLine("")
			e.out.ShowLine("You found a KEY!")
		}
		return e.finish(ctx)
	default:
		// table, clock, newspaper and plain objects
		e.out.ShowLines(text)
		return e.finish(ctx)
	}
	return nil
}

// Whiteboard

func (e *Engine) openWhiteboard(ctx context.Context, text []string) error {
	if e.state.WhiteboardSolved {
		e.out.ShowLines(e.content.Lines(content.WhiteboardSolved))
		return e.finish(ctx)
	}
	e.out.ShowLines(text)
	e.out.ShowLine("")
	e.out.ShowLine("Type 'solve' to attempt solving, or 'back' to leave.")
	e.setMode(ModeWhiteboard)
	return nil
}

func (e *Engine) whiteboardMenu(line string) {
	switch line {
	case "solve":
		e.setMode(ModeWhiteboardSolve)
		e.renderWhiteboard()
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'solve' to attempt solving, or 'back' to leave.")
	}
}

func (e *Engine) renderWhiteboard() {
	e.out.ClearDisplay()
	e.out.ShowLines(e.content.Lines(content.WhiteboardPuzzle))
	if e.session.whiteboardHint {
		e.out.ShowLines(e.content.Lines(content.WhiteboardHint))
	}
	e.out.ShowLines(e.content.Lines(content.WhiteboardQuestion))
	if e.session.whiteboard.HintAvailable() {
		e.out.ShowLines(e.content.Lines(content.WhiteboardHintAvailable))
	}
	e.out.ShowLine("")
	e.out.ShowLine("Enter your answer (or type 'hint' if available):")
}

func (e *Engine) whiteboardSolve(ctx context.Context, line string) error {
	switch {
	case line == "back":
		e.leave()
	case line == "hint" && e.session.whiteboard.HintAvailable():
		e.session.whiteboardHint = true
		e.renderWhiteboard()
	case puzzle.Whiteboard(line):
		// Solving the whiteboard opens the way to the poem; the REASON
		// fragment itself is granted by the poem.
		e.state.WhiteboardSolved = true
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.WhiteboardSuccess))
		return e.finish(ctx)
	default:
		e.session.whiteboard.Miss()
		e.renderWhiteboard()
		e.out.ShowLine("Incorrect! Try again.")
	}
	return nil
}

// Bookshelf and poem

const coordinateUsage = "Type coordinates as 'row column' (e.g. '1 1'), or 'back' to leave."

func (e *Engine) openBookshelf(text []string) {
	e.out.ShowLines(text)
	e.out.ShowLines(e.content.Lines(content.BookshelfPrompt))
	e.out.ShowLine("")
	e.out.ShowLine(coordinateUsage)
	e.setMode(ModeBookshelf)
}

func (e *Engine) bookshelf(line string) {
	if line == "back" {
		e.leave()
		return
	}
	switch puzzle.Bookshelf(line) {
	case puzzle.ShelfPoem:
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.BookshelfPoemAccess))
		e.out.ShowLine("")
		e.out.ShowLine("Type 'read' to read the poem, or 'back' to return.")
		e.setMode(ModeBookshelfPoem)
	case puzzle.ShelfNote:
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.BookshelfSideNote))
		e.out.ShowLine("")
		e.out.ShowLine(coordinateUsage)
	case puzzle.ShelfMiss:
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.BookshelfMiss))
		e.out.ShowLine("")
		e.out.ShowLine(coordinateUsage)
	default:
		e.out.ShowLine(coordinateUsage)
	}
}

func (e *Engine) bookshelfPoem(ctx context.Context, line string) error {
	switch line {
	case "read":
		if e.state.PoemSolved {
			e.out.ShowLines(e.content.Lines(content.PoemReplay))
			return e.finish(ctx)
		}
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.Poem))
		e.out.ShowLine("")
		e.out.ShowLine("Type the missing word to obtain the fragment:")
		e.setMode(ModeBookshelfPoemAnswer)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'read' to read the poem, or 'back' to return.")
	}
	return nil
}

func (e *Engine) poemAnswer(ctx context.Context, line string) error {
	if line == "back" {
		e.leave()
		return nil
	}
	if !puzzle.Poem(line) {
		e.out.ShowLines(e.content.Lines(content.Wrong))
		return nil
	}
	e.state.PoemSolved = true
	return e.grantFragment(ctx, models.FragmentReason, nil)
}

// Piano

func (e *Engine) openPiano(ctx context.Context, text []string) error {
	e.out.ShowLines(text)
	if e.state.HasDiaryKey {
		e.out.ShowLines(e.content.Lines(content.PianoOpen))
		return e.finish(ctx)
	}
	e.out.ShowLines(e.content.Lines(content.PianoNote))
	e.out.ShowLine("")
	e.out.ShowLine("Type the sequence (e.g. 'cdec') to try, or 'back' to leave:")
	e.setMode(ModePiano)
	return nil
}

func (e *Engine) piano(ctx context.Context, line string) error {
	switch {
	case puzzle.PianoSequence(line):
		e.state.HasDiaryKey = true
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.PianoReward))
		return e.finish(ctx)
	case line == "back":
		e.leave()
	default:
		e.out.ShowLine("Wrong sequence. Try again.")
	}
	return nil
}

// Photo and safe

func (e *Engine) openPhoto(ctx context.Context, text []string) error {
	e.out.ShowLines(text)
	if !e.state.KnowsSafeLocation || e.state.SafeOpened {
		return e.finish(ctx)
	}
	e.out.ShowLine("")
	e.out.ShowLines(e.content.Lines(content.PhotoSafe))
	e.out.ShowLine("")
	e.out.ShowLine("Type 'open safe' to try opening it, or 'back' to return.")
	e.setMode(ModePhotoSafePrompt)
	return nil
}

func (e *Engine) photoSafePrompt(line string) {
	switch line {
	case "open safe":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.SafePrompt))
		e.out.ShowLine("")
		e.out.ShowLine(fmt.Sprintf("Enter the %d-character password (or type 'back' to cancel):", content.SafePasswordLength))
		e.setMode(ModeSafe)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'open safe' to try opening it, or 'back' to return.")
	}
}

func (e *Engine) safe(ctx context.Context, raw, line string) error {
	if puzzle.SafePassword(raw, e.content.SafePassword()) {
		e.state.SafeOpened = true
		e.state.HasDevice = true
		e.out.ClearDisplay()
		e.out.ShowLine("Safe opened!")
		e.out.ShowLine("You found the DEVICE!")
		e.out.ShowLine("Use it in the LABORATORY with 'use device'.")
		return e.finish(ctx)
	}
	if line == "back" {
		e.leave()
		return nil
	}
	e.out.ShowLine("Wrong password. Try again.")
	return nil
}

// Mirror

func (e *Engine) mirror(ctx context.Context, line string) error {
	switch line {
	case "read note":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.MirrorNote))
		return e.finish(ctx)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'read note' to read it, or 'back' to return.")
	}
	return nil
}

// Cabinet

func (e *Engine) openCabinet(ctx context.Context, text []string) error {
	e.out.ShowLines(text)
	if e.state.HasMusicBoxKey {
		e.out.ShowLines(e.content.Lines(content.CabinetSearched))
		return e.finish(ctx)
	}
	e.out.ShowLine("")
	e.out.ShowLine("Type 'search' to search the cabinet, or 'back' to return.")
	e.setMode(ModeCabinet)
	return nil
}

func (e *Engine) cabinet(ctx context.Context, line string) error {
	switch line {
	case "search":
		e.state.HasMusicBoxKey = true
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.CabinetFound))
		return e.finish(ctx)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'search' to search the cabinet, or 'back' to return.")
	}
	return nil
}

// Music box

func (e *Engine) openMusicBox(ctx context.Context, text []string) error {
	switch {
	case !e.state.HasMusicBoxKey:
		e.out.ShowLines(text)
		e.out.ShowLines(e.content.Lines(content.MusicBoxLocked))
		return e.finish(ctx)
	case e.state.HasRing:
		e.out.ShowLines(e.content.Lines(content.MusicBoxTaken))
		return e.finish(ctx)
	}
	e.out.ShowLines(text)
	e.out.ShowLine("")
	e.out.ShowLine("Type 'open' to open the music box, or 'back' to return.")
	e.setMode(ModeMusicBox)
	return nil
}

func (e *Engine) musicBox(ctx context.Context, line string) error {
	switch line {
	case "open":
		e.state.HasRing = true
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.MusicBoxRing))
		return e.finish(ctx)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Type 'open' to open the music box, or 'back' to return.")
	}
	return nil
}

// Diary

func (e *Engine) openDiary(ctx context.Context, text []string) error {
	if e.state.DiarySolved {
		e.out.ShowLines(e.content.Lines(content.DiaryReplay))
		return e.finish(ctx)
	}
	if !e.state.HasDiaryKey {
		e.out.ShowLines(text)
		e.out.ShowLines(e.content.Lines(content.DiaryLocked))
		return e.finish(ctx)
	}
	e.session.diaryPage = 1
	e.setMode(ModeDiary)
	e.showDiaryPage()
	return nil
}

func (e *Engine) showDiaryPage() {
	e.out.ClearDisplay()
	e.out.ShowLines(e.content.DiaryPage(e.session.diaryPage))
	e.out.ShowLine("")
	e.out.ShowLine(fmt.Sprintf("Page %d/%d | Commands: 'next page', 'prev page', 'answer', 'back'",
		e.session.diaryPage, content.Pages))
}

func (e *Engine) diary(line string) {
	if page, ok := turnPage(line, e.session.diaryPage); ok {
		e.session.diaryPage = page
		e.showDiaryPage()
		return
	}
	switch line {
	case "answer":
		e.out.ShowLine("")
		e.out.ShowLines(e.content.Lines(content.DiaryAnswer))
		e.out.ShowLine("Type the missing word to obtain the fragment, or 'back' to keep reading:")
		e.setMode(ModeDiaryAnswer)
	case "back":
		e.leave()
	default:
		e.out.ShowLine("Commands: 'next page', 'prev page', 'answer', 'back'")
	}
}

func (e *Engine) diaryAnswer(ctx context.Context, line string) error {
	if line == "back" {
		e.setMode(ModeDiary)
		e.showDiaryPage()
		return nil
	}
	if !puzzle.Diary(line) {
		e.out.ShowLines(e.content.Lines(content.Wrong))
		return nil
	}
	e.state.DiarySolved = true
	return e.grantFragment(ctx, models.FragmentEmotion, nil)
}

// turnPage handles "next page" and "prev page", clamping to the document.
func turnPage(line string, page int) (int, bool) {
	switch line {
	case "next page", "next":
		return min(page+1, content.Pages), true
	case "prev page", "previous page", "prev":
		return max(page-1, 1), true
	}
	return page, false
}

// Desk

func (e *Engine) deskPrompt() {
	e.out.ShowLine("")
	e.out.ShowLine("Type 'desk' to check the desk, 'drawer' to check the drawer, or 'back' to return.")
}

func (e *Engine) desk(line string) {
	switch line {
	case "desk":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.CipherDesk))
		e.deskPrompt()
	case "drawer":
		e.out.ClearDisplay()
		e.out.ShowLines(e.content.Lines(content.CipherDrawer))
		if !e.state.KnowsSafeLocation {
			e.state.KnowsSafeLocation = true
			e.out.ShowLine("")
			e.out.ShowLine("You now know where the safe is! Check the PHOTO in the HALLWAY.")
		}
		e.deskPrompt()
	case "back":
		e.leave()
	default:
		e.deskPrompt()
	}
}
