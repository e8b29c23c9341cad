package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrStorage            = errors.New("storage operation failed")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrDiskSpaceFull      = errors.New("disk space full")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewStorageError wraps a failed read/write against the project, asset or
// template storage.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	if cause != nil && strings.Contains(cause.Error(), "no space left on device") {
		return &ApiErr{
			StatusCode: http.StatusInsufficientStorage,
			err:        fmt.Errorf("%w: %w", ErrStorage, ErrDiskSpaceFull),
			Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
			Cause:      cause,
			Field:      "storage",
		}
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorage,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
		Field:      "storage",
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "record not found"), strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        fmt.Errorf("%w: %w", ErrStorage, ErrDatabaseConnection),
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%w: %w", ErrStorage, ErrDatabaseQuery),
		Details:    details,
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
