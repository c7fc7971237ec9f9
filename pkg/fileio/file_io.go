package fileio

import (
	"fmt"
	"io"
	"os"
)

const (
	// ExecutablePerms are Linux permissions (rwxr-xr-x) for executable files.
	// The emitted recipe file is consumed as an executable artifact, so it carries these.
	ExecutablePerms os.FileMode = 0o755
	// NonExecutablePerms are Linux permissions (rw-r--r--) for non-executable files (configs, unit files, etc.)
	NonExecutablePerms os.FileMode = 0o644
)

func WriteFile(filename string, contents []byte, perms os.FileMode) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err = file.Chmod(perms); err != nil {
		return fmt.Errorf("applying permissions: %w", err)
	}

	if _, err = file.Write(contents); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

func CopyFile(src string, dest string, perms os.FileMode) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer func() {
		_ = sourceFile.Close()
	}()

	destFile, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer func() {
		_ = destFile.Close()
	}()

	if err = destFile.Chmod(perms); err != nil {
		return fmt.Errorf("adjusting permissions: %w", err)
	}

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
