package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage backends selectable through PROJECT_STORE and ASSET_STORE.
const (
	ProjectStoreFile     = "file"
	ProjectStorePostgres = "postgres"
	AssetStoreDisk       = "disk"
	AssetStoreS3         = "s3"
)

type Settings struct {
	Port         string
	LogLevel     string
	StaticDir    string
	TmpDir       string
	ProjectsDir  string
	AssetsDir    string
	UploadsDir   string
	TemplatesDir string

	ProjectStore string
	DatabaseURL  string

	AssetStore       string
	S3Bucket         string
	S3Prefix         string
	S3Endpoint       string
	S3Region         string
	S3ForcePathStyle bool

	RedisURL        string
	ProjectCacheTTL time.Duration

	AcceptedOrigins  []string
	MaxJSONBodyBytes int64
	MaxUploadBytes   int64

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load builds Settings from an environment map produced by New.
func Load(c map[string]string) Settings {
	dataDir := GetString(c, "DATA_DIR", "./data")

	return Settings{
		Port:         GetString(c, "PORT", "8080"),
		LogLevel:     GetString(c, "LOG_LEVEL", "info"),
		StaticDir:    GetString(c, "STATIC_DIR", "./public"),
		TmpDir:       GetString(c, "TMP_DIR", os.TempDir()),
		ProjectsDir:  GetString(c, "PROJECTS_DIR", filepath.Join(dataDir, "projects")),
		AssetsDir:    GetString(c, "ASSETS_DIR", filepath.Join(dataDir, "assets")),
		UploadsDir:   GetString(c, "UPLOADS_DIR", filepath.Join(dataDir, "uploads")),
		TemplatesDir: GetString(c, "TEMPLATES_DIR", filepath.Join(dataDir, "templates")),

		ProjectStore: GetString(c, "PROJECT_STORE", ProjectStoreFile),
		DatabaseURL:  GetString(c, "DATABASE_URL", ""),

		AssetStore:       GetString(c, "ASSET_STORE", AssetStoreDisk),
		S3Bucket:         GetString(c, "S3_BUCKET", ""),
		S3Prefix:         GetString(c, "S3_PREFIX", "assets"),
		S3Endpoint:       GetString(c, "S3_ENDPOINT", ""),
		S3Region:         GetString(c, "AWS_REGION", "us-east-1"),
		S3ForcePathStyle: GetBool(c, "S3_FORCE_PATH_STYLE", false),

		RedisURL:        GetString(c, "REDIS_URL", ""),
		ProjectCacheTTL: time.Duration(GetInt(c, "PROJECT_CACHE_TTL_SECONDS", 300)) * time.Second,

		AcceptedOrigins:  GetList(c, "ACCEPTED_ORIGINS"),
		MaxJSONBodyBytes: GetInt64(c, "MAX_JSON_BODY_BYTES", DefaultMaxJSONBodyBytes),
		MaxUploadBytes:   GetInt64(c, "MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),

		ReadTimeout:  time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,
	}
}
