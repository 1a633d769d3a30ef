package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	JWTSecret string

	RedisAddr     string
	RedisPassword string

	FFmpegPath  string
	FFprobePath string
	TmpDir      string

	MaxUploadSize   int64
	MaxConcurrent   int
	EncoderTimeout  time.Duration
	FailedGrace     time.Duration
	StatusCacheTTL  time.Duration
	RunMigrationsUp bool
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("MARIADB_MAX_OPEN_CONN", 25)
	viper.SetDefault("MARIADB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("MARIADB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("FFMPEG_PATH", "ffmpeg")
	viper.SetDefault("FFPROBE_PATH", "ffprobe")
	viper.SetDefault("TMP_DIR", os.TempDir())
	viper.SetDefault("MAX_UPLOAD_SIZE", int64(256*1024*1024))
	viper.SetDefault("PIPELINE_MAX_CONCURRENT", 8)
	viper.SetDefault("ENCODER_TIMEOUT", 300)
	viper.SetDefault("FAILED_MEDIA_GRACE", 30)
	viper.SetDefault("STATUS_CACHE_TTL", 10)
	viper.SetDefault("RUN_MIGRATIONS", true)

	if !viper.IsSet("MARIADB_DSN") {
		return nil, fmt.Errorf("MARIADB_DSN is required")
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		FFmpegPath:      viper.GetString("FFMPEG_PATH"),
		FFprobePath:     viper.GetString("FFPROBE_PATH"),
		TmpDir:          viper.GetString("TMP_DIR"),
		MaxUploadSize:   viper.GetInt64("MAX_UPLOAD_SIZE"),
		MaxConcurrent:   viper.GetInt("PIPELINE_MAX_CONCURRENT"),
		EncoderTimeout:  time.Duration(viper.GetInt("ENCODER_TIMEOUT")) * time.Second,
		FailedGrace:     time.Duration(viper.GetInt("FAILED_MEDIA_GRACE")) * time.Second,
		StatusCacheTTL:  time.Duration(viper.GetInt("STATUS_CACHE_TTL")) * time.Second,
		RunMigrationsUp: viper.GetBool("RUN_MIGRATIONS"),
	}, nil
}
