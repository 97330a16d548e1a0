package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm asks for interactive confirmation on stdin. An empty answer or a
// read failure yields the default.
func Confirm(message string, defaultYes bool) bool {
	return confirmFrom(os.Stdin, message, defaultYes)
}

func confirmFrom(in io.Reader, message string, defaultYes bool) bool {
	prompt := message
	if defaultYes {
		prompt += " (Y/n): "
	} else {
		prompt += " (y/N): "
	}

	fmt.Print(prompt)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return defaultYes
	}

	response := strings.TrimSpace(strings.ToLower(scanner.Text()))
	if response == "" {
		return defaultYes
	}

	return response == "y" || response == "yes"
}
