package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeSeedFile(t, `{
		"version": "1",
		"activities": {
			"Chess Club": {
				"description": "Learn strategies and compete in chess tournaments",
				"schedule": "Fridays, 3:30 PM - 5:00 PM",
				"max_participants": 12,
				"participants": ["michael@mergington.edu"]
			}
		}
	}`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Contains(t, f.Activities, "Chess Club")
	assert.Equal(t, 12, f.Activities["Chess Club"].MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu"}, f.Activities["Chess Club"].Participants)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed json",
			content: `{"activities": `,
		},
		{
			name:    "no activities",
			content: `{"version": "1", "activities": {}}`,
		},
		{
			name: "non-positive capacity",
			content: `{"activities": {"Chess Club": {
				"description": "d", "schedule": "s",
				"max_participants": 0, "participants": []
			}}}`,
		},
		{
			name: "duplicate participant",
			content: `{"activities": {"Chess Club": {
				"description": "d", "schedule": "s", "max_participants": 5,
				"participants": ["a@x.edu", "a@x.edu"]
			}}}`,
		},
		{
			name: "empty participant email",
			content: `{"activities": {"Chess Club": {
				"description": "d", "schedule": "s", "max_participants": 5,
				"participants": [""]
			}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeSeedFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}
