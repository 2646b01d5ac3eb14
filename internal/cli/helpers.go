package cli

import (
	"fmt"
	"log/slog"
	"strconv"
)

// ParseSlot parses a zero-based slot argument
func ParseSlot(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, arg)
	}
	return n, nil
}

// Fail reports err through formatter and returns it carrying code
func Fail(formatter *OutputFormatter, code int, errCode string, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(errCode, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return Exit(code, err)
}
