package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write writes the generated file into outputDir, creating the directory
// if it doesn't exist. An empty outputDir means the current directory.
// Any write error is fatal to the run and propagates to the caller.
func Write(file GeneratedFile, outputDir string) error {
	if outputDir == "" {
		outputDir = "."
	}

	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, file.Filename)

	err = os.WriteFile(outputPath, file.Content, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}
