package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Kunalsharma76/github-copilot-exercise/internal/domain"
	"github.com/Kunalsharma76/github-copilot-exercise/internal/my_errors"
)

//go:embed seed/activities.json
var defaultSeed []byte

// LoadSeed reads the directory seed from path, or the embedded default when path is empty.
func LoadSeed(path string) (domain.Directory, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = raw
	}

	dir, err := ParseSeed(data)
	if err != nil {
		return nil, err
	}

	slog.Info("activity seed loaded", "activities", len(dir), "file", path)

	return dir, nil
}

func ParseSeed(data []byte) (domain.Directory, error) {
	var dir domain.Directory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("%w: %v", my_errors.ErrInvalidSeed, err)
	}

	for name, activity := range dir {
		if name == "" {
			return nil, fmt.Errorf("activity name: %w", my_errors.ErrInvalidSeed)
		}
		activity.Name = name
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		dir[name] = activity
	}

	return dir, nil
}

// DefaultSeed returns a fresh copy of the embedded seed.
func DefaultSeed() domain.Directory {
	dir, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(err)
	}
	return dir
}
