package database

import (
	"strings"

	"github.com/rpupo63/playground-backend/config"
	"github.com/rpupo63/playground-backend/errs"
)

// ValidateFilename rejects names that would escape or alias the directory
// they are stored in. Any other name is stored verbatim.
func ValidateFilename(name string) error {
	return validateSegment(name, config.MaxFilenameLength)
}

// ValidateProjectID applies the same rules to a project id, which names a
// record file and an asset directory.
func ValidateProjectID(id string) error {
	return validateSegment(id, config.MaxProjectIDLength)
}

func validateSegment(name string, maxLen int) error {
	switch {
	case name == "":
		return errs.NewInvalidFilenameError(name, "must not be empty")
	case len(name) > maxLen:
		return errs.NewInvalidFilenameError(name, "too long")
	case name == "." || name == "..":
		return errs.NewInvalidFilenameError(name, "reserved name")
	case strings.ContainsAny(name, `/\`):
		return errs.NewInvalidFilenameError(name, "path separators are not allowed")
	case strings.ContainsRune(name, 0):
		return errs.NewInvalidFilenameError(name, "NUL byte is not allowed")
	}
	return nil
}
