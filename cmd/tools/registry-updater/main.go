// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"tryon-workers/pkg/registry"
)

var registryPath string

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	removeCmd := flag.NewFlagSet("remove", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	categoryAdd := addCmd.String("category", "", "Garment category (e.g., tops)")
	text := addCmd.String("text", "", "Tip text")
	label := addCmd.String("label", "", "Display label for the category (e.g., Tops)")
	addCmd.StringVar(&registryPath, "path", "configs/styling-tips.json", "Path to registry file")

	// Remove command flags
	categoryRemove := removeCmd.String("category", "", "Garment category to remove")
	removeCmd.StringVar(&registryPath, "path", "configs/styling-tips.json", "Path to registry file")

	// Validate command flags
	validateCmd.StringVar(&registryPath, "path", "configs/styling-tips.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *categoryAdd == "" || *text == "" {
			fmt.Println("Error: category and text are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		if err := addTip(*categoryAdd, *text, *label); err != nil {
			fmt.Printf("Error adding tip: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added tip to category: %s\n", *categoryAdd)

	case "remove":
		removeCmd.Parse(os.Args[2:])
		if *categoryRemove == "" {
			fmt.Println("Error: category is required for remove.")
			removeCmd.Usage()
			os.Exit(1)
		}
		if err := removeCategory(*categoryRemove); err != nil {
			fmt.Printf("Error removing category: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed category: %s\n", *categoryRemove)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Registry validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

func addTip(category, text, label string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		// If file doesn't exist, create new registry
		if os.IsNotExist(err) {
			reg = &registry.TipsRegistry{
				Version: "1.0.0",
				Tips:    map[string][]registry.Tip{},
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}
	if reg.Tips == nil {
		reg.Tips = map[string][]registry.Tip{}
	}

	for _, existing := range reg.Tips[category] {
		if existing.Text == text {
			return fmt.Errorf("tip already exists in category %s", category)
		}
	}

	reg.Tips[category] = append(reg.Tips[category], registry.Tip{
		Text:          text,
		CategoryLabel: label,
	})
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	return registry.SaveRegistry(reg, registryPath)
}

func removeCategory(category string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if _, ok := reg.Tips[category]; !ok {
		return fmt.Errorf("category %s not found", category)
	}

	delete(reg.Tips, category)
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	return registry.SaveRegistry(reg, registryPath)
}

func validateRegistry() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if err := registry.Validate(reg); err != nil {
		return err
	}

	fmt.Printf("Registry validation passed. Found %d categories.\n", len(reg.Tips))
	return nil
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a styling tip to a category
  remove   Remove a category and all its tips
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -category tops -text "Tuck slim-fit tops into high-waisted bottoms." -label Tops
  registry-updater remove -category tops
  registry-updater validate -path configs/styling-tips.json

Use 'registry-updater <command> -h' for more information about a command.

`)
}
