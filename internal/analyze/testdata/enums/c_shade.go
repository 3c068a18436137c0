package enums

// Shade is declared with ungrouped constants.
type Shade int

// strenum:"light"
const Light Shade = 0

// Dark is the darkest shade.
// strenum:"dark"
const Dark Shade = 1

// strenum:"ignored"
const Mid Shade = 2 // strenum:"mid"

// DefaultShade uses a conversion from the generated file.
var DefaultShade, _ = ParseShade("light")
