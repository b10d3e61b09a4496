package widgets

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MergeClasses merges ordered class fragments into one class string. Empty
// fragments are skipped, exact duplicates keep their first position, and a
// later class in the same utility group replaces the earlier one. Fragments
// may contain multiple space-separated classes.
func MergeClasses(fragments ...string) string {
	out := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		for _, cls := range strings.Fields(frag) {
			if slices.Contains(out, cls) {
				continue
			}
			if g := classGroup(cls); g != "" {
				out = slices.DeleteFunc(out, func(prev string) bool {
					return prev != cls && classGroup(prev) == g
				})
			}
			out = append(out, cls)
		}
	}
	return strings.Join(out, " ")
}

// classGroup returns the utility group of a class: the prefix before the
// first hyphen. Bare classes have no group and only conflict with themselves.
func classGroup(cls string) string {
	if i := strings.IndexByte(cls, '-'); i > 0 {
		return cls[:i]
	}
	return ""
}

// ClassSet resolves class names to lipgloss styles.
type ClassSet map[string]lipgloss.Style

// Style composes the styles of every known class in the given class string.
// Later classes win where properties overlap; unknown classes are ignored so
// callers can pass arbitrary extra classes through untouched.
func (cs ClassSet) Style(classes string) lipgloss.Style {
	acc := lipgloss.NewStyle()
	for _, cls := range strings.Fields(classes) {
		if s, ok := cs[cls]; ok {
			acc = s.Inherit(acc)
		}
	}
	return acc
}

// Catppuccin Mocha values, matching the application theme.
const (
	classText    = lipgloss.Color("#cdd6f4")
	classMuted   = lipgloss.Color("#a6adc8")
	classFaint   = lipgloss.Color("#7f849c")
	classAccent  = lipgloss.Color("#89b4fa")
	classFocus   = lipgloss.Color("#a6e3a1")
	classWarning = lipgloss.Color("#f9e2af")
	classError   = lipgloss.Color("#f38ba8")
	classPeach   = lipgloss.Color("#fab387")
	classMantle  = lipgloss.Color("#181825")
	classSurface = lipgloss.Color("#313244")
	classBorder  = lipgloss.Color("#6c7086")
)

// DefaultClasses is the class vocabulary shared by all widgets in this
// package. Widgets resolve their Class field against it.
var DefaultClasses = ClassSet{
	"fg-text":    lipgloss.NewStyle().Foreground(classText),
	"fg-muted":   lipgloss.NewStyle().Foreground(classMuted),
	"fg-faint":   lipgloss.NewStyle().Foreground(classFaint),
	"fg-accent":  lipgloss.NewStyle().Foreground(classAccent),
	"fg-focus":   lipgloss.NewStyle().Foreground(classFocus),
	"fg-warning": lipgloss.NewStyle().Foreground(classWarning),
	"fg-error":   lipgloss.NewStyle().Foreground(classError),
	"fg-peach":   lipgloss.NewStyle().Foreground(classPeach),
	"fg-border":  lipgloss.NewStyle().Foreground(classBorder),
	"bg-mantle":  lipgloss.NewStyle().Background(classMantle),
	"bg-surface": lipgloss.NewStyle().Background(classSurface),
	"bold":       lipgloss.NewStyle().Bold(true),
	"italic":     lipgloss.NewStyle().Italic(true),
	"underline":  lipgloss.NewStyle().Underline(true),
}

func classStyle(classes string) lipgloss.Style {
	return DefaultClasses.Style(classes)
}
