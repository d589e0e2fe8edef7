// pkg/seed/loader.go
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and validates a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return &f, nil
}

// Save validates f and writes it as indented JSON, creating the
// parent directory when needed.
func Save(f *File, path string) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create seed directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}

// Validate checks the registry invariants the seed must already satisfy:
// non-empty names, positive capacity, non-empty unique participant emails.
func (f *File) Validate() error {
	if len(f.Activities) == 0 {
		return fmt.Errorf("no activities defined")
	}
	for name, a := range f.Activities {
		if name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if a.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		seen := make(map[string]bool, len(a.Participants))
		for _, email := range a.Participants {
			if email == "" {
				return fmt.Errorf("activity %q: empty participant email", name)
			}
			if seen[email] {
				return fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = true
		}
	}
	return nil
}
