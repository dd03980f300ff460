// Package objectstore wraps the photo blob store. Buckets are world-readable
// and uploads return the public URL that gets persisted as the photo
// reference; there are no signed or expiring URLs.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bilaad-labs/estate-pulse/pkg/config"
)

type Client interface {
	// Upload stores one blob and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

type client struct {
	mc         *minio.Client
	bucket     string
	publicBase string
}

func NewClient() (Client, error) {
	cfg := config.GetConfig().ObjectStorage
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &client{
		mc:         mc,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

func (c *client) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", c.publicBase, c.bucket, key), nil
}

// PhotoKey builds the storage path for one uploaded photo:
// <projectId>/<unitId or "project">/<timestamp>_<random>.<ext>.
func PhotoKey(projectID uint, unitID *uint, filename string) string {
	scope := "project"
	if unitID != nil {
		scope = fmt.Sprintf("%d", *unitID)
	}
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	name := fmt.Sprintf("%d_%s.%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	return fmt.Sprintf("%d/%s/%s", projectID, scope, name)
}
