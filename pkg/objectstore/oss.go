package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"AutoSync/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// OSS implements Client on top of an Aliyun OSS bucket.
type OSS struct {
	client  *oss.Client
	bucket  string
	baseURL string
}

var _ Client = (*OSS)(nil)

func NewOSS(cfg *config.OssConfig) Client {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}

	return &OSS{
		client:  oss.NewClient(ossCfg),
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *OSS) Upload(ctx context.Context, data []byte, folder, ext string) (*Result, error) {
	key := fmt.Sprintf("%s/%s/%s%s",
		strings.Trim(folder, "/"),
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	var width, height int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width = cfg.Width
		height = cfg.Height
	}

	if _, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
		Body:   bytes.NewReader(data),
	}); err != nil {
		return nil, err
	}

	return &Result{
		ExternalID: key,
		URL:        s.baseURL + "/" + key,
		Width:      width,
		Height:     height,
		ByteSize:   len(data),
	}, nil
}

func (s *OSS) Delete(ctx context.Context, externalID string) error {
	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(externalID),
	})
	return err
}
