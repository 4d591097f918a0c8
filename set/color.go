package set

import "errors"

// Color is the color of a tree node. The zero value is Black so that the
// sentinel and any cleared slot read as black.
type Color uint8

const (
	Black Color = iota
	Red
)

var ErrInvalidColor = errors.New("invalid color")

var colorByName = map[string]Color{
	"black": Black,
	"red":   Red,
}

var colorNames = map[Color]string{
	Black: "black",
	Red:   "red",
}

func (i Color) String() string {
	return colorNames[i]
}

func (i *Color) Set(s string) error {
	if t, ok := colorByName[s]; ok {
		*i = t
		return nil
	}
	return ErrInvalidColor
}

func StringToColor(s string) Color {
	if t, ok := colorByName[s]; ok {
		return t
	}
	return 0
}

func IsColor(s string) bool {
	_, ok := colorByName[s]
	return ok
}

func ColorList() []Color {
	return []Color{
		Black,
		Red,
	}
}
