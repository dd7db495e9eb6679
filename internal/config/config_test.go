package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "FORUM_X_DB", cfg.MongoDB)
	assert.Equal(t, "imgbb", cfg.ImageBackend)
	assert.Equal(t, "https://api.imgbb.com/1/upload", cfg.ImgBBEndpoint)
	assert.Equal(t, "forumx-images", cfg.MinioBucket)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("IMAGE_BACKEND", "minio")
	t.Setenv("IMGBB_API_KEY", "abc123")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "minio", cfg.ImageBackend)
	assert.Equal(t, "abc123", cfg.ImgBBAPIKey)
}
