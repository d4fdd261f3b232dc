package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const clearCmd = "clear"

// Renderer is the display sink the driver writes frames to
type Renderer interface {
	// Render replaces whatever was shown before with frame
	Render(frame string)
	// Finish shows the completion message
	Finish(message string)
}

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer bound to stdout
func NewTerminalRenderer(clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ClearScreen: clearScreen}
}

// Render clears the terminal and prints the frame
func (r *TerminalRenderer) Render(frame string) {
	if r.ClearScreen {
		r.Clear()
	}
	fmt.Fprintln(r.Out, frame)
}

// Finish prints the completion message
func (r *TerminalRenderer) Finish(message string) {
	fmt.Fprintln(r.Out, message)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
