package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofrs/uuid/v5"

	"github.com/Qayoomitcourse/Airport-Pass-Management/pkg/config"
)

const photoPrefix = "pass-photos"

// Client stores pass photos in a single S3 bucket (AWS or a MinIO-compatible
// endpoint) and hands back the public object URL persisted on the pass.
type Client struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string
	pathStyle bool
}

func NewClient(ctx context.Context, cfg config.S3) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}

		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Client{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		endpoint:  cfg.Endpoint,
		pathStyle: cfg.PathStyle,
	}, nil
}

// UploadPhoto writes the photo under a random key, keeping the original
// extension, and returns the object URL.
func (c *Client) UploadPhoto(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	key := path.Join(photoPrefix,
		time.Now().UTC().Format("2006/01"),
		uuid.Must(uuid.NewV4()).String()+strings.ToLower(path.Ext(filename)))

	input := &s3.PutObjectInput{
		Bucket: &c.bucket,
		Key:    &key,
		Body:   data,
	}

	if contentType != "" {
		input.ContentType = &contentType
	}

	_, err := c.client.PutObject(ctx, input)
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return c.objectURL(key), nil
}

func (c *Client) objectURL(key string) string {
	if c.endpoint != "" {
		base := strings.TrimSuffix(c.endpoint, "/")
		if c.pathStyle {
			return fmt.Sprintf("%s/%s/%s", base, c.bucket, key)
		}

		u, err := url.Parse(base)
		if err == nil {
			return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, c.bucket, u.Host, key)
		}

		return fmt.Sprintf("%s/%s/%s", base, c.bucket, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
