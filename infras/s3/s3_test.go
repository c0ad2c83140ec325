package s3_test

import (
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestS3_GetObjectNameFromURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "https://storage.example.com"
	cfg.External.S3.PublicDomain = "https://cdn.example.com"
	cfg.External.S3.BucketName = "hotel"
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"

	svc, err := s3.New(cfg, mocks.NewOtel())
	assert.NoError(t, err)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.example.com/room_type/a.jpg", want: "room_type/a.jpg"},
		{name: "api endpoint", url: "https://storage.example.com/hotel/room_type/b.png", want: "room_type/b.png"},
		{name: "foreign url", url: "https://images.other.com/c.jpg", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.url))
		})
	}
}
