package tui

import "strconv"

type rgb struct {
	r int
	g int
	b int
}

const ansiReset = "\x1b[0m"

func ansiFgRGB(c rgb) string {
	return "\x1b[38;2;" + strconv.Itoa(c.r) + ";" + strconv.Itoa(c.g) + ";" + strconv.Itoa(c.b) + "m"
}

type tuiTheme struct {
	Name           string
	BorderActiveFG rgb
	BorderDimFG    rgb
	ShortcutFG     rgb
	TitleDimFG     rgb
	BadgeFG        rgb
	PinFG          rgb
	PausedFG       rgb
}

var tuiThemes = map[string]tuiTheme{
	"standard": {
		Name:           "standard",
		BorderActiveFG: rgb{r: 229, g: 229, b: 229},
		BorderDimFG:    rgb{r: 104, g: 104, b: 104},
		ShortcutFG:     rgb{r: 104, g: 104, b: 104},
		TitleDimFG:     rgb{r: 104, g: 104, b: 104},
		BadgeFG:        rgb{r: 0, g: 175, b: 175},
		PinFG:          rgb{r: 229, g: 229, b: 16},
		PausedFG:       rgb{r: 180, g: 180, b: 180},
	},
	"outrun": {
		Name:           "outrun",
		BorderActiveFG: rgb{r: 0, g: 229, b: 255},
		BorderDimFG:    rgb{r: 60, g: 79, b: 184},
		ShortcutFG:     rgb{r: 110, g: 136, b: 255},
		TitleDimFG:     rgb{r: 154, g: 163, b: 178},
		BadgeFG:        rgb{r: 255, g: 91, b: 189},
		PinFG:          rgb{r: 112, g: 214, b: 255},
		PausedFG:       rgb{r: 154, g: 163, b: 178},
	},
}

func themeForName(name string) tuiTheme {
	if theme, ok := tuiThemes[name]; ok {
		return theme
	}
	return tuiThemes["standard"]
}
