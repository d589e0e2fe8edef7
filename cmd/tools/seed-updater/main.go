// cmd/tools/seed-updater/main.go
//
// seed-updater maintains activity seed files for the activities server:
// add a new activity, export the built-in seed as a starting point, or
// validate a file before deploying it.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/registry"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/pkg/seed"
)

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	pathAdd := addCmd.String("path", "configs/activities.json", "Path to seed file")
	name := addCmd.String("name", "", "Activity name (e.g., Robotics Club)")
	description := addCmd.String("description", "", "Description")
	schedule := addCmd.String("schedule", "", "Meeting schedule (e.g., Fridays, 4:00 PM - 6:00 PM)")
	maxParticipants := addCmd.Int("max", 0, "Maximum participants")

	// Export command flags
	pathExport := exportCmd.String("path", "configs/activities.json", "Path to write the built-in seed to")

	// Validate command flags
	pathValidate := validateCmd.String("path", "configs/activities.json", "Path to seed file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *name == "" || *description == "" || *schedule == "" || *maxParticipants <= 0 {
			fmt.Println("Error: name, description, schedule, and a positive max are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		if err := addActivity(*pathAdd, *name, *description, *schedule, *maxParticipants); err != nil {
			fmt.Printf("Error adding activity: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added activity: %s\n", *name)

	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportBuiltinSeed(*pathExport); err != nil {
			fmt.Printf("Error exporting seed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported built-in seed to %s\n", *pathExport)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		f, err := seed.Load(*pathValidate)
		if err != nil {
			fmt.Printf("Seed validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Seed validation passed. Found %d activities.\n", len(f.Activities))

	case "help":
		fallthrough
	default:
		help()
	}
}

func addActivity(path, name, description, schedule string, maxParticipants int) error {
	f, err := seed.Load(path)
	if err != nil {
		// If file doesn't exist, start a new seed
		if os.IsNotExist(err) {
			f = &seed.File{
				Version:    "1.0.0",
				Activities: map[string]seed.Activity{},
			}
		} else {
			return fmt.Errorf("failed to load seed: %w", err)
		}
	}

	if _, exists := f.Activities[name]; exists {
		return fmt.Errorf("activity %q already exists", name)
	}

	f.Activities[name] = seed.Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
	f.LastUpdated = time.Now().Format(time.RFC3339)

	return seed.Save(f, path)
}

// exportBuiltinSeed writes the server's built-in activities as a seed file,
// the usual starting point for a customized seed.
func exportBuiltinSeed(path string) error {
	reg := registry.New(logger.NewNoOpLogger())

	f := &seed.File{
		Version:     "1.0.0",
		LastUpdated: time.Now().Format(time.RFC3339),
		Activities:  map[string]seed.Activity{},
	}
	for name, a := range reg.List() {
		f.Activities[name] = seed.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}

	return seed.Save(f, path)
}

func help() {
	fmt.Print(`
Usage: seed-updater <command> [flags]

Commands:
  add      Add a new activity to a seed file
  export   Write the built-in activity seed to a file
  validate Validate a seed file
  help     Show this help message

Examples:
  seed-updater add -path configs/activities.json -name "Robotics Club" -description "Build and program robots" -schedule "Fridays, 4:00 PM - 6:00 PM" -max 8
  seed-updater export -path configs/activities.json
  seed-updater validate -path configs/activities.json

Use 'seed-updater <command> -h' for more information about a command.
`)
}
