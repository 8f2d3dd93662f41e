package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/talmon-lab/ristab/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new ristab repository",
	Long: `Initialize a new ristab repository in the current directory.

Creates:
  .ristab/
  ├── rows.jsonl      # Empty file
  ├── config.yaml     # Default config
  └── cache/          # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getStartingDirectory()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a ristab repository")
	}

	if err := os.MkdirAll(config.RistabPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .ristab directory: %v", err)
	}

	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	rowsFile, err := os.Create(config.RowsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating rows.jsonl: %v", err)
	}
	rowsFile.Close()

	if err := config.Default().Save(root); err != nil {
		exitWithError(ExitError, "creating config.yaml: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized ristab repository in %s\n", root)
	} else {
		outputJSON(StatusResponse{
			Status: "initialized",
			Path:   root,
		})
	}

	return nil
}
