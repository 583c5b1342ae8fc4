package ui

import (
	"fmt"
	"strings"
)

var quietMode bool

// SetQuiet suppresses decorative output. Errors still print.
func SetQuiet(quiet bool) {
	quietMode = quiet
}

// Println prints an empty line.
func Println() {
	if quietMode {
		return
	}
	fmt.Println()
}

// PrintTitle prints a heading.
func PrintTitle(format string, args ...any) {
	if quietMode {
		return
	}
	fmt.Println(TitleStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...any) {
	if quietMode {
		return
	}
	fmt.Println(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message. Not silenced by quiet mode.
func PrintError(format string, args ...any) {
	fmt.Println(ErrorStyle.Render("✗ " + fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...any) {
	if quietMode {
		return
	}
	fmt.Println(WarningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...any) {
	if quietMode {
		return
	}
	fmt.Println(InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...any) {
	if quietMode {
		return
	}
	fmt.Println(DimStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintKeyValue prints an aligned label and value pair.
func PrintKeyValue(key, value string) {
	if quietMode {
		return
	}
	fmt.Printf("%s %s\n", DimStyle.Render(key+":"), value)
}

// PrintRule prints a horizontal separator.
func PrintRule() {
	if quietMode {
		return
	}
	fmt.Println(DimStyle.Render(strings.Repeat("─", 60)))
}
