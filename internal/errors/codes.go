package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrIOFailed        ErrorCode = "io_failed"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrInvalidInterval ErrorCode = "invalid_interval"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Daemon lifecycle errors
	ErrDaemonAlreadyRunning ErrorCode = "daemon_already_running"
	ErrDaemonNotRunning     ErrorCode = "daemon_not_running"
	ErrDetachFailed         ErrorCode = "detach_failed"
	ErrInvalidPIDRecord     ErrorCode = "invalid_pid_record"
	ErrSignalFailed         ErrorCode = "signal_failed"

	// Collection errors
	ErrProviderRead  ErrorCode = "provider_read_failed"
	ErrCollectorLoop ErrorCode = "collector_loop_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:             "Internal error occurred",
	ErrInvalidArgument:      "Invalid argument provided",
	ErrIOFailed:             "I/O operation failed",
	ErrInvalidConfig:        "Invalid configuration",
	ErrBindFlags:            "Failed to bind flags",
	ErrReadConfig:           "Failed to read configuration",
	ErrInvalidInterval:      "Invalid interval value",
	ErrInvalidLogLevel:      "Invalid log level",
	ErrDaemonAlreadyRunning: "Daemon is already running",
	ErrDaemonNotRunning:     "Daemon is not running",
	ErrDetachFailed:         "Failed to detach background process",
	ErrInvalidPIDRecord:     "Malformed PID record",
	ErrSignalFailed:         "Failed to signal process",
	ErrProviderRead:         "Failed to read power source telemetry",
	ErrCollectorLoop:        "Error in collector loop",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
