// Package menu drives the external gum menu collaborator and maps its
// selections onto closed action enumerations.
package menu

import (
	"os"
	"os/exec"
	"strings"
)

// Gum implements Provider by shelling out to the gum binary.
type Gum struct{}

// Available reports whether the gum binary can be executed.
func Available() bool {
	return exec.Command("gum", "--version").Run() == nil
}

// Choose renders a selection menu. A cancelled menu (gum exits
// nonzero) yields an empty selection, not an error.
func (Gum) Choose(header string, options []string) (string, error) {
	args := []string{
		"choose",
		"--item.foreground", "240",
		"--selected.foreground", "255",
		"--cursor.foreground", "#07CE41",
		"--header", header,
	}
	args = append(args, options...)
	cmd := exec.Command("gum", args...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// Input prompts for a line of text with a prefilled value.
func (Gum) Input(header, placeholder, value string) (string, error) {
	cmd := exec.Command("gum", "input",
		"--header", header,
		"--placeholder", placeholder,
		"--value", value,
	)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(string(out)), nil
}

// Confirm asks a yes/no question; a declined or failed prompt is no.
func (Gum) Confirm(prompt string) bool {
	cmd := exec.Command("gum", "confirm", prompt)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run() == nil
}

// Style prints text in a bordered box.
func (Gum) Style(text string) error {
	cmd := exec.Command("gum", "style",
		"--border", "double",
		"--margin", "1 1",
		"--padding", "1 2",
		"--border-foreground", "212",
		text,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
