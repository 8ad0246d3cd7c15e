package cmd

import (
	"errors"
	"strings"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
)

// FormatError renders an error for the terminal externally: the message
// first, then any recovery suggestions as bullets.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString("Error: ")

	var wz *wzerrors.WorkZenError
	if !errors.As(err, &wz) {
		b.WriteString(err.Error())
		return b.String()
	}

	b.WriteString(wz.Message)
	if len(wz.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, s := range wz.Suggestions {
			b.WriteString("\n  • ")
			b.WriteString(s)
		}
	}
	if wz.Cause != nil {
		b.WriteString("\n\nDetails: ")
		b.WriteString(wz.Cause.Error())
	}
	return b.String()
}
