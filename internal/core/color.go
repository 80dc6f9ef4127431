package core

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex
// string so simulations can blend palettes freely. The empty string means
// the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = ""

// Fixed HUD colors shared by the platform and the games.
const (
	ColorRed    Color = "#ff4040"
	ColorGreen  Color = "#40e070"
	ColorYellow Color = "#f0d040"
	ColorCyan   Color = "#40d0f0"
	ColorWhite  Color = "#ffffff"
	ColorOrange Color = "#ff9a2e"
	ColorGray   Color = "#8a8a8a"
)
