package notice

import (
	"errors"
)

// Notice levels
const (
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Color presets for notice highlights.
const (
	ColorOrange = "orange" // #F9B232, default
	ColorRed    = "red"    // #e74c3c
	ColorGreen  = "green"  // #27ae60
	ColorBlue   = "blue"   // #2980b9
)

// ColorHex maps preset names to hex values.
var ColorHex = map[string]string{
	ColorOrange: "#F9B232",
	ColorRed:    "#e74c3c",
	ColorGreen:  "#27ae60",
	ColorBlue:   "#2980b9",
}

// Domain errors
var (
	ErrEmptyContent = errors.New("notice content cannot be empty")
	ErrInvalidLevel = errors.New("notice level must be one of: warning, info")
	ErrInvalidColor = errors.New("notice color must be one of: orange, red, green, blue")
)

// Notice is a static announcement on the notice board.
// Content supports Markdown formatting.
type Notice struct {
	Level   string
	Title   string // optional heading
	Content string
	Color   string
}

// Validate checks if the Notice has valid data.
// PRE: Notice struct is populated
// POST: Returns nil if valid, error otherwise
func (n *Notice) Validate() error {
	if n.Content == "" {
		return ErrEmptyContent
	}
	if n.Level != LevelWarning && n.Level != LevelInfo {
		return ErrInvalidLevel
	}
	if n.Color != "" {
		if _, ok := ColorHex[n.Color]; !ok {
			return ErrInvalidColor
		}
	}
	return nil
}

// EffectiveColor returns the color hex value, defaulting to orange.
func (n *Notice) EffectiveColor() string {
	if hex, ok := ColorHex[n.Color]; ok {
		return hex
	}
	return ColorHex[ColorOrange]
}

// IsWarning reports whether the notice is rendered as a warning banner.
func (n *Notice) IsWarning() bool {
	return n.Level == LevelWarning
}

// Board is the council's notice board, in display order.
var Board = []Notice{
	{
		Level:   LevelWarning,
		Content: "⚠️ No running in the hallways! Safety comes first.",
		Color:   ColorOrange,
	},
	{
		Level:   LevelInfo,
		Title:   "🏫 This week's goals",
		Content: "* **Use kind words**\n* **Finish your lunch**",
		Color:   ColorGreen,
	},
}
