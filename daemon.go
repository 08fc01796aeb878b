package vibeeq

import (
	"bytes"
	"context"
	"os/exec"
)

// Daemon is the external audio-effects program that consumes presets
type Daemon interface {
	// Load asks the daemon to load a preset by name and waits for it
	Load(ctx context.Context, name string) error
	// Show brings the daemon's window up without waiting on it
	Show() error
}

// EasyEffects drives the easyeffects command line
type EasyEffects struct {
	Command string
}

// NewEasyEffects returns a Daemon backed by the given executable
func NewEasyEffects(command string) *EasyEffects {
	if command == "" {
		command = DefaultDaemon
	}
	return &EasyEffects{Command: command}
}

func (e *EasyEffects) Load(ctx context.Context, name string) error {
	args := []string{e.Command, "-l", name}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &ToolError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return nil
}

func (e *EasyEffects) Show() error {
	cmd := exec.Command(e.Command)
	if err := cmd.Start(); err != nil {
		return &ToolError{Args: []string{e.Command}, Err: err}
	}
	// reap the child whenever it exits
	go cmd.Wait()
	return nil
}
