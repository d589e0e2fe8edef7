// pkg/seed/schema.go
package seed

// File is the on-disk seed document that can replace the built-in
// activity seed at startup.
type File struct {
	Version     string              `json:"version"`
	LastUpdated string              `json:"lastUpdated"`
	Activities  map[string]Activity `json:"activities"`
}

// Activity mirrors the registry's activity record in seed-file form.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
