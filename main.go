package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	api "github.com/rpupo63/playground-backend/api"
	"github.com/rpupo63/playground-backend/config"
	"github.com/rpupo63/playground-backend/database"
	"github.com/rpupo63/playground-backend/idgen"
	"github.com/rpupo63/playground-backend/models"
	"github.com/rpupo63/playground-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	settings := config.Load(config.New())
	setupLogging(settings.LogLevel)

	ctx := context.Background()

	projects, err := openProjectStore(ctx, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening project store")
	}

	assets, err := openAssetStore(ctx, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening asset store")
	}

	uploads, err := database.NewUploadRepo(settings.UploadsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening upload area")
	}

	currentDB := database.New(projects, assets, uploads, database.NewTemplateRepo(settings.TemplatesDir))
	playground := services.NewPlayground(currentDB, settings.TmpDir, log.Logger)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(settings, playground)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// openProjectStore builds the configured project store, wrapped in the
// Redis cache when REDIS_URL is set.
func openProjectStore(ctx context.Context, settings config.Settings) (database.ProjectStore, error) {
	ids := idgen.New()
	log.Info().Int64("combinations", idgen.Combinations()).Msg("project id vocabulary loaded")

	var store database.ProjectStore
	switch settings.ProjectStore {
	case config.ProjectStoreFile:
		repo, err := database.NewProjectRepo(settings.ProjectsDir, ids)
		if err != nil {
			return nil, err
		}
		store = repo
	case config.ProjectStorePostgres:
		db, err := openPostgres(settings.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = database.NewGormProjectRepo(db, ids)
	default:
		return nil, fmt.Errorf("unsupported PROJECT_STORE %q", settings.ProjectStore)
	}
	log.Info().Str("store", settings.ProjectStore).Msg("project store ready")

	if settings.RedisURL == "" {
		return store, nil
	}

	opts, err := redis.ParseURL(settings.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		// the cache degrades to the wrapped store on every failure
		log.Warn().Err(err).Msg("redis not reachable, project cache will miss")
	}
	return database.NewCachedProjectRepo(store, client, settings.ProjectCacheTTL, log.Logger), nil
}

func openPostgres(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres project store")
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openAssetStore(ctx context.Context, settings config.Settings) (database.AssetStore, error) {
	switch settings.AssetStore {
	case config.AssetStoreDisk:
		repo, err := database.NewAssetRepo(settings.AssetsDir)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.AssetStoreS3:
		if settings.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required for the s3 asset store")
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(settings.S3Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		client := s3.NewFromConfig(cfg, func(o *s3.Options) {
			if settings.S3Endpoint != "" {
				o.BaseEndpoint = aws.String(settings.S3Endpoint)
			}
			o.UsePathStyle = settings.S3ForcePathStyle
		})
		log.Info().Str("bucket", settings.S3Bucket).Str("prefix", settings.S3Prefix).Msg("using s3 asset store")
		return database.NewS3AssetRepo(client, settings.S3Bucket, settings.S3Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported ASSET_STORE %q", settings.AssetStore)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
