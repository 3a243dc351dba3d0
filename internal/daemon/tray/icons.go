package tray

import (
	"embed"
	"runtime"
)

//go:embed icons
var iconFS embed.FS

// IconVariant is one of the four indicator icons.
type IconVariant int

// Icon variants: glyph colour (black on light themes, white on dark) by size.
const (
	IconWhite16 IconVariant = iota
	IconWhite32
	IconBlack16
	IconBlack32
)

// scaleBreakpoint is the display scale at which the 32 px icons are used.
const scaleBreakpoint = 1.5

var iconNames = map[IconVariant]string{
	IconWhite16: "disk-white-16",
	IconWhite32: "disk-white-32",
	IconBlack16: "disk-black-16",
	IconBlack32: "disk-black-32",
}

// SelectIcon picks the icon for the current theme and display scale.
func SelectIcon(light bool, scale float64) IconVariant {
	large := scale >= scaleBreakpoint
	switch {
	case light && large:
		return IconBlack32
	case light:
		return IconBlack16
	case large:
		return IconWhite32
	default:
		return IconWhite16
	}
}

func (v IconVariant) String() string {
	return iconNames[v]
}

// Bytes returns the encoded icon for the current platform.
func (v IconVariant) Bytes() []byte {
	return mustIcon(iconNames[v])
}

func blankIcon() []byte {
	return mustIcon("blank")
}

// mustIcon loads an embedded icon. Windows needs ICO, everything else takes PNG.
func mustIcon(name string) []byte {
	ext := ".png"
	if runtime.GOOS == "windows" {
		ext = ".ico"
	}
	data, err := iconFS.ReadFile("icons/" + name + ext)
	if err != nil {
		panic("missing embedded icon " + name + ext)
	}
	return data
}
