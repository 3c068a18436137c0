package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrStale is returned by Check when the file on disk differs from the
// generated content.
var ErrStale = errors.New("generated file is out of date")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Check compares generated files with the files in outputDir. It returns an
// error wrapping ErrStale naming the first file that is missing or differs.
func Check(files []GeneratedFile, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		existing, err := os.ReadFile(outputPath)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w (missing)", outputPath, ErrStale)
		}

		if err != nil {
			return fmt.Errorf("reading %s: %w", outputPath, err)
		}

		if !bytes.Equal(existing, file.Content) {
			return fmt.Errorf("%s: %w", outputPath, ErrStale)
		}
	}

	return nil
}
