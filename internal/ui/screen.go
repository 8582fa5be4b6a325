package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Preferences controls runtime UI settings.
type Preferences struct {
	NoColor bool
	Dense   bool
}

// CurrentPreferences holds the active UI preferences.
var CurrentPreferences = Preferences{}

// ApplyPreferences updates the active UI preferences.
func ApplyPreferences(p Preferences) {
	CurrentPreferences = p
}

// StartScreen clears the terminal and prints a screen header. It does
// nothing useful when stdout is not an interactive terminal, so report
// output stays clean when piped.
func StartScreen(title string, subtitle string) {
	if !IsInteractiveTerminal() {
		return
	}
	ClearScreen()
	fmt.Println(Header(title))
	if subtitle != "" {
		fmt.Println(Subtitle.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		fmt.Println()
	}
}

func ClearScreen() {
	if !IsInteractiveTerminal() {
		return
	}
	fmt.Print("\033[2J\033[H")
}

func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return false
	}
	if os.Getenv("TERM") == "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// ColorEnabled reports whether styled output should be produced.
func ColorEnabled() bool {
	if CurrentPreferences.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsInteractiveTerminal()
}
