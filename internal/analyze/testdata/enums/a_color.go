package enums

// Color is annotated with every supported annotation form.
type Color int

const (
	Red   Color = iota // strenum:"red"
	Green              // strenum:`green`
	Blue               // strenum:42
	Cyan
	// strenum:"yellow"
	Yellow
	Crimson = Red // strenum:"crimson"
	_
)

// Unrelated is untyped and must be ignored.
const Unrelated = 3

// Name is not an integer type.
type Name string

const LevelZero Level = 0
