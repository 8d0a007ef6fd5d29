package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/df07/go-raykernel/pkg/scene"
)

func scenesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List available scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listScenes(cmd.OutOrStdout(), dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", scenesDir, "directory searched for YAML scenes")

	return cmd
}

// listScenes prints the built-in scenes followed by YAML scenes found in dir
func listScenes(out io.Writer, dir string) error {
	fmt.Fprintln(out, "Built-in scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Fprintf(out, "  %-10s %s\n", info.ID, info.Description)
	}

	files, err := discoverYAMLScenes(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\nYAML scenes in %s:\n", dir)
	for _, name := range files {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

// discoverYAMLScenes returns the scene names (file names without extension)
// in dir, sorted. A missing directory yields no scenes.
func discoverYAMLScenes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scenes directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isYAMLPath(entry.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names, nil
}
