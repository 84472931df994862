package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ReadFile reads the whole file into an owned byte slice. When the role is
// configured with a read cap, files over the cap fail with ErrFileTooLarge
// instead of being truncated silently.
func (r *FSRole) ReadFile(path string) ([]byte, error) {
	if r.config.MaxReadBytes > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.Size() > r.config.MaxReadBytes {
			return nil, fmt.Errorf("%w: %s is %d bytes, cap is %d",
				ErrFileTooLarge, path, info.Size(), r.config.MaxReadBytes)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ReadString reads the whole file into a string.
func (r *FSRole) ReadString(path string) (string, error) {
	data, err := r.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes data to path, creating the file with the configured mode
// if it does not exist and truncating it otherwise.
func (r *FSRole) WriteFile(path string, data []byte) error {
	mode, err := r.writeMode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// AppendFile appends data to path, creating the file with the configured
// mode if it does not exist.
func (r *FSRole) AppendFile(path string, data []byte) error {
	mode, err := r.writeMode()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// Exists reports whether path exists. It does not distinguish files from
// directories; broken symlinks count as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Glob lists paths matching a shell pattern, returning an owned slice.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

func (r *FSRole) writeMode() (os.FileMode, error) {
	if r.config.WriteMode == "" {
		return 0o644, nil
	}
	mode, err := strconv.ParseUint(r.config.WriteMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWriteMode, r.config.WriteMode)
	}
	return os.FileMode(mode), nil
}
