package enums

// Level is declared across two files.
type Level uint8

const (
	LevelLow  Level = 1  // strenum:"low"
	LevelHigh Level = 10 // strenum: ("high")
)

const LevelMid Level = 5 // strenum:"mid"
