package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	MongoURI  string `mapstructure:"MONGO_URI"`
	MongoDB   string `mapstructure:"MONGO_DB"`
	JWTSecret string `mapstructure:"JWT_SECRET"`

	ImageBackend  string `mapstructure:"IMAGE_BACKEND"`
	ImgBBAPIKey   string `mapstructure:"IMGBB_API_KEY"`
	ImgBBEndpoint string `mapstructure:"IMGBB_ENDPOINT"`

	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET"`
}

// Load reads configuration from the environment. godotenv is expected to
// have populated the environment from .env before this runs.
func Load() *Config {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "FORUM_X_DB")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("IMAGE_BACKEND", "imgbb")
	viper.SetDefault("IMGBB_API_KEY", "")
	viper.SetDefault("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload")
	viper.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	viper.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	viper.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	viper.SetDefault("MINIO_BUCKET", "forumx-images")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	return &cfg
}
