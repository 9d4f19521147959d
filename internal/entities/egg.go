package entities

// Color is one of the fixed result colors an egg may request
type Color string

const (
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
)

// DefaultColor is used when no egg overrides the color
const DefaultColor = ColorBlack

// Colors lists the recognized color tokens in their documented order
var Colors = []string{
	string(ColorBlack),
	string(ColorWhite),
	string(ColorRed),
	string(ColorGreen),
	string(ColorBlue),
	string(ColorYellow),
	string(ColorPurple),
}

var colorHex = map[Color]string{
	ColorBlack:  "#000000",
	ColorWhite:  "#FFFFFF",
	ColorRed:    "#FF0000",
	ColorGreen:  "#008000",
	ColorBlue:   "#0000FF",
	ColorYellow: "#FFFF00",
	ColorPurple: "#800080",
}

// ParseColor validates a color token
func ParseColor(s string) (Color, bool) {
	c := Color(s)
	_, ok := colorHex[c]
	return c, ok
}

// Hex returns the RGB hex code for the color, black for unknown values
func (c Color) Hex() string {
	if hex, ok := colorHex[c]; ok {
		return hex
	}
	return colorHex[DefaultColor]
}

// EggCase is a per-entry presentation override
type EggCase struct {
	// Name is the roster identifier this case applies to
	Name string `json:"name" yaml:"name"`

	// NewName replaces the identifier on screen
	NewName string `json:"new_name,omitempty" yaml:"new_name,omitempty"`

	// Color is one of Colors; empty keeps the default
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Image and Voice are file paths checked when the case is resolved
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Voice string `json:"voice,omitempty" yaml:"voice,omitempty"`

	// SpeakText replaces the text sent to speech synthesis
	SpeakText string `json:"s_read_str,omitempty" yaml:"s_read_str,omitempty"`

	// Force applies the case even when eggs are globally disabled
	Force bool `json:"force,omitempty" yaml:"force,omitempty"`
}

// Presentation describes how a drawn entry is shown and announced
type Presentation struct {
	Entry       string
	Kind        Kind
	DisplayText string
	Color       Color
	ImagePath   string
	AudioPath   string
	SpokenText  string

	// EggApplied is set when an egg case matched and was applied
	EggApplied bool
}
