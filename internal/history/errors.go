package history

import "codeberg.org/varkas/amptop/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrorCode("history_invalid_config")
	ErrInvalidDBPath = errors.ErrorCode("history_invalid_db_path")

	// Storage Errors
	ErrStorageInit   = errors.ErrorCode("history_storage_init_failed")
	ErrStorageAccess = errors.ErrorCode("history_storage_access_failed")
	ErrStorageQuery  = errors.ErrorCode("history_storage_query_failed")
	ErrStorageClose  = errors.ErrorCode("history_storage_close_failed")
)
