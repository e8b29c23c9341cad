package config

const (
	// MaxFilenameLength matches the common filesystem limit for a single
	// path component.
	MaxFilenameLength = 255

	// MaxProjectIDLength bounds ids supplied by clients on update.
	MaxProjectIDLength = 128

	// DefaultMaxJSONBodyBytes is the save/export payload limit.
	DefaultMaxJSONBodyBytes = 5 << 20

	// DefaultMaxUploadBytes bounds multipart asset and zip uploads.
	DefaultMaxUploadBytes = 100 << 20
)
