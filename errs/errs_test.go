package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("project")

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "project not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsStorage(err))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("import: %w", NewInvalidArchiveError(errors.New("zip: not a valid zip file")))

	assert.True(t, IsInvalidArchive(wrapped))
	assert.Equal(t, http.StatusBadRequest, StatusOf(wrapped))
	assert.False(t, IsEmptyUpload(wrapped))
}

func TestNewStorageError(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		err := NewStorageError("write", "asset", errors.New("permission denied"))
		assert.True(t, IsStorage(err))
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Contains(t, err.GetFullError(), "permission denied")
	})

	t.Run("disk full", func(t *testing.T) {
		err := NewStorageError("write", "asset", errors.New("write /data/x: no space left on device"))
		assert.True(t, IsStorage(err))
		assert.True(t, errors.Is(err, ErrDiskSpaceFull))
		assert.Equal(t, http.StatusInsufficientStorage, err.StatusCode)
	})
}

func TestNewDatabaseError(t *testing.T) {
	notFound := NewDatabaseError("find", "project", errors.New("record not found"))
	assert.True(t, IsNotFound(notFound))

	conn := NewDatabaseError("find", "project", errors.New("failed to connect: connection refused"))
	assert.True(t, IsDatabaseConnectionError(conn))
	assert.True(t, IsStorage(conn))
	assert.Equal(t, http.StatusServiceUnavailable, conn.StatusCode)

	generic := NewDatabaseError("save", "project", errors.New("syntax error"))
	assert.True(t, IsStorage(generic))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewEmptyUploadError("zip")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewInvalidFilenameError("../x", "path separators are not allowed")))
}
