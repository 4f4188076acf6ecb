package watchlist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure modes every invocation can surface. All of
// them are terminal for the current invocation: the CLI notifies the user and
// exits non-zero.
var (
	ErrNotFound        = errors.New("item no longer exists")
	ErrInvalidPath     = errors.New("invalid path")
	ErrRestoreConflict = errors.New("restore conflict")
	ErrNotFoundInTrash = errors.New("not found in trash")
	ErrExternalTool    = errors.New("external tool error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided sentinel for errors.Is classification.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "watchlist failure"
	}
	return strings.Join(parts, ": ")
}
