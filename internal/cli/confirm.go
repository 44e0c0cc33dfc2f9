package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks the user a yes/no question and returns their answer.
// Destructive operations (deletes, restore) go through this before touching
// any state. Anything other than "y"/"yes" counts as no.
func Confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(w, "%s [y/N]: ", WarningStyle.Render(prompt)); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
