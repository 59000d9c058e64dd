// Package theme provides color schemes and styling for the TUI.
//
// This package defines visual themes for the terminal user interface, including
// color palettes and styling functions. Themes ensure consistent visual appearance
// across all UI components (tables, progress bars, status text, etc.).
//
// Built-in Themes:
//
//   - default: Clean light/dark theme suitable for most terminals
//   - dracula: Popular dark theme with vibrant colors
//   - monokai: Dark theme inspired by Monokai color scheme
//
// Example usage:
//
//	// Get a theme by name
//	theme := theme.GetTheme("dracula")
//
//	// Use theme colors in lipgloss styles
//	headerStyle := lipgloss.NewStyle().
//	    Foreground(theme.Primary).
//	    Background(theme.Background).
//	    Bold(true)
//
//	// Render styled text
//	fmt.Println(headerStyle.Render("Port Scanner"))
//
// Theme Structure:
//
// Each theme defines semantic colors:
//   - Primary: Main brand color, highlights
//   - Secondary: Supporting color, secondary highlights
//   - Success: Success states (open ports)
//   - Warning: Warning states (filtered ports)
//   - Danger: Error states (closed ports, errors)
//   - Info: Informational highlights
//   - Background: Background color
//   - Foreground: Default text color
//   - Muted: Subdued text (help text, timestamps)
//
// Custom Themes:
//
// Theme is a plain struct, so a custom value can be built and its style
// methods used directly. There is no registry: GetTheme only knows the
// three built-in names.
//
//	customTheme := theme.Theme{
//	    Name:       "custom",
//	    Primary:    lipgloss.Color("#FF6188"),
//	    Secondary:  lipgloss.Color("#FC9867"),
//	    Success:    lipgloss.Color("#A9DC76"),
//	    Warning:    lipgloss.Color("#FFD866"),
//	    Danger:     lipgloss.Color("#FF6188"),
//	    Info:       lipgloss.Color("#78DCE8"),
//	    Background: lipgloss.Color("#2D2A2E"),
//	    Foreground: lipgloss.Color("#FCFCFA"),
//	    Muted:      lipgloss.Color("#727072"),
//	}
//	fmt.Println(customTheme.HeaderStyle().Render("Port Scanner"))
//
// Color Format:
//
// Colors use lipgloss.Color which supports:
//   - Hex colors: "#FF6188"
//   - Named colors: "red", "blue"
//   - ANSI colors: "1", "2", etc.
//
// The theme system automatically adapts to terminal capabilities.
package theme
