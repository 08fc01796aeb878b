package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Songmu/vibeeq"
	"github.com/charmbracelet/huh"
)

// pickFile asks for a source preset file. Without a terminal, or when the
// user backs out, it returns vibeeq.ErrNoFileSelected.
var pickFile = func(ctx context.Context) (string, error) {
	if !vibeeq.Interactive() {
		return "", vibeeq.ErrNoFileSelected
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	var path string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Select an equalizer preset to import").
				CurrentDirectory(cwd).
				AllowedTypes([]string{".json"}).
				FileAllowed(true).
				DirAllowed(false).
				Picking(true).
				Value(&path),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", vibeeq.ErrNoFileSelected
		}
		return "", fmt.Errorf("failed to pick a file: %w", err)
	}
	if path == "" {
		return "", vibeeq.ErrNoFileSelected
	}
	return path, nil
}

// pickPreset asks which installed preset to load. An empty name means
// nothing was chosen.
var pickPreset = func(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 || !vibeeq.Interactive() {
		return "", nil
	}
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Installed presets").
				Options(huh.NewOptions(names...)...).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", fmt.Errorf("failed to pick a preset: %w", err)
	}
	return name, nil
}
