package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

// Prompt asks for a single line, pre-filled with suggestion. On a terminal
// it uses a huh input; otherwise it reads a line from Stdin, where an empty
// answer accepts the suggestion.
func Prompt(title, suggestion string) (string, error) {
	if !IsInteractive() {
		return PromptReader(title, suggestion, Stdin)
	}
	value := suggestion
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// PromptReader prompts using the provided reader (useful for tests).
func PromptReader(title, suggestion string, r io.Reader) (string, error) {
	if suggestion != "" {
		fmt.Fprintf(Stdout, "%s [%s]: ", title, suggestion)
	} else {
		fmt.Fprintf(Stdout, "%s: ", title)
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return suggestion, nil
	}
	return line, nil
}
