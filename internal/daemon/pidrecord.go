package daemon

import (
	"os"
	"strconv"
	"strings"

	"codeberg.org/varkas/amptop/internal/errors"
)

const pidFilePerm = 0o600

// writePIDRecord persists pid as plain integer text.
func writePIDRecord(path string, pid int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), pidFilePerm); err != nil {
		return errors.New().Wrap(errors.ErrIOFailed, err)
	}

	return nil
}

// readPIDRecord parses the recorded process id.
func readPIDRecord(path string) (int, error) {
	errFactory := errors.New()

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrIOFailed, err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errFactory.Wrap(errors.ErrInvalidPIDRecord, err)
	}

	return pid, nil
}

// removePIDRecord deletes the record; a missing record is not an error.
func removePIDRecord(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(errors.ErrIOFailed, err)
	}

	return nil
}
