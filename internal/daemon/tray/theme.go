package tray

// Theme describes the ambient desktop appearance.
type Theme struct {
	Light bool
	Scale float64
}

// ThemeFunc reports the current theme. It is called on every redraw so theme
// switches are picked up without a restart.
type ThemeFunc func() Theme

// SystemTheme queries the platform for the current theme.
func SystemTheme() Theme {
	return Theme{Light: systemUsesLightTheme(), Scale: scaleFactor()}
}
