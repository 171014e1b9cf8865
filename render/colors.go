package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/paddleball/core"
)

// TcellColor converts an RGB triple into a truecolor tcell color
func TcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// halfBlockStyle paints the upper pixel as foreground and the lower as background of '▀'
func halfBlockStyle(top, bottom core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(TcellColor(top)).Background(TcellColor(bottom))
}
