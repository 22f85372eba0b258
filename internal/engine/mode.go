package engine

// Mode is the interaction the player is currently in. ModeNone means
// top-level commands are accepted.
type Mode int

const (
	ModeNone Mode = iota
	ModeWhiteboard
	ModeWhiteboardSolve
	ModeBookshelf
	ModeBookshelfPoem
	ModeBookshelfPoemAnswer
	ModePiano
	ModePhotoSafePrompt
	ModeSafe
	ModeMirror
	ModeCabinet
	ModeMusicBox
	ModeDiary
	ModeDiaryAnswer
	ModeDesk
	ModeTerminal
	ModeTerminalLogs
	ModeTerminalEnding
	ModeDeviceDestroy
	ModeDeviceCode
	ModeDeviceFinal
)

var modeNames = [...]string{
	ModeNone:                "none",
	ModeWhiteboard:          "whiteboard",
	ModeWhiteboardSolve:     "whiteboard-solve",
	ModeBookshelf:           "bookshelf",
	ModeBookshelfPoem:       "bookshelf-poem",
	ModeBookshelfPoemAnswer: "bookshelf-poem-answer",
	ModePiano:               "piano",
	ModePhotoSafePrompt:     "photo-safe-prompt",
	ModeSafe:                "safe",
	ModeMirror:              "mirror",
	ModeCabinet:             "cabinet",
	ModeMusicBox:            "music-box",
	ModeDiary:               "diary",
	ModeDiaryAnswer:         "diary-answer",
	ModeDesk:                "desk",
	ModeTerminal:            "terminal",
	ModeTerminalLogs:        "terminal-logs",
	ModeTerminalEnding:      "terminal-ending",
	ModeDeviceDestroy:       "device-destroy",
	ModeDeviceCode:          "device-code",
	ModeDeviceFinal:         "device-final",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}
