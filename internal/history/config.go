package history

import "codeberg.org/varkas/amptop/internal/errors"

const defaultDirPerm = 0o755

type Config struct {
	DBPath string
}

func (c Config) Validate() error {
	errFactory := errors.New()
	if c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}

	return nil
}
