package msg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Name is the short display form of a player id.
func Name(id uuid.UUID) string {
	return id.String()[:8]
}
