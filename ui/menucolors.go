package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MenuColors defines the Nord-inspired color palette for menus and panels.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	Title       tcell.Color // Bright white for titles
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
	Win         tcell.Color // Result line after a human win
	Loss        tcell.Color // Result line after an opponent win
	Draw        tcell.Color
}{
	Border:      tcell.PaletteColor(60),
	Title:       tcell.PaletteColor(255),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
	Win:         tcell.PaletteColor(114),
	Loss:        tcell.PaletteColor(174),
	Draw:        tcell.PaletteColor(222),
}

// colorTag renders c as a tview color tag.
func colorTag(c tcell.Color) string {
	return fmt.Sprintf("[#%06x]", c.Hex())
}
