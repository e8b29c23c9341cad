package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Playground core errors
var (
	ErrInvalidArchive  = errors.New("invalid archive")
	ErrEmptyUpload     = errors.New("empty upload")
	ErrGeneration      = errors.New("id generation failed")
	ErrInvalidFilename = errors.New("invalid filename")
)

func NewInvalidArchiveError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidArchive,
		Details:    "Upload is not a readable zip archive",
		Cause:      cause,
		Field:      "zip",
	}
}

func NewEmptyUploadError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrEmptyUpload,
		Details:    fmt.Sprintf("No file provided in %s", field),
		Field:      field,
	}
}

func NewGenerationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrGeneration,
		Details:    "Could not allocate a project id",
		Cause:      cause,
	}
}

func NewInvalidFilenameError(name, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidFilename,
		Details:    fmt.Sprintf("Invalid filename %q: %s", name, reason),
		Field:      "filename",
	}
}

func IsInvalidArchive(err error) bool {
	return errors.Is(err, ErrInvalidArchive)
}

func IsEmptyUpload(err error) bool {
	return errors.Is(err, ErrEmptyUpload)
}

func IsGeneration(err error) bool {
	return errors.Is(err, ErrGeneration)
}

func IsInvalidFilename(err error) bool {
	return errors.Is(err, ErrInvalidFilename)
}
