package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question and defaults to no. Without a terminal it
// reads y/yes from Stdin; EOF counts as no.
func Confirm(msg string) bool {
	if !IsInteractive() {
		return ConfirmReader(msg, Stdin)
	}
	var ok bool
	err := huh.NewConfirm().
		Title(msg).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false
	}
	return ok
}

// ConfirmReader is Confirm reading from r.
func ConfirmReader(msg string, r io.Reader) bool {
	fmt.Fprintf(Stdout, "%s [y/N]: ", msg)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	resp := strings.TrimSpace(strings.ToLower(line))
	return resp == "y" || resp == "yes"
}
