package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	portsrepo "github.com/invoicecraft/invoice_craft_app/internal/core/ports/repositories"
	"github.com/invoicecraft/invoice_craft_app/internal/platform/config"
)

// BlobStore keeps uploaded logos in an S3 bucket, keyed per user. It also
// works against S3-compatible endpoints (MinIO, R2) via S3_ENDPOINT.
type BlobStore struct {
	client        *awss3.Client
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

// NewBlobStore builds the S3 client from application configuration.
func NewBlobStore(ctx context.Context, cfg *config.Config) (*BlobStore, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 blob store: bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3 blob store: failed to load config: %w", err)
	}

	clientOpts := []func(*awss3.Options){}
	if cfg.S3Endpoint != "" {
		clientOpts = append(clientOpts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		})
	}

	client := awss3.NewFromConfig(awsCfg, clientOpts...)

	publicBase := cfg.S3PublicBaseURL
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &BlobStore{
		client:        client,
		uploader:      manager.NewUploader(client),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/"),
	}, nil
}

var _ portsrepo.BlobStore = (*BlobStore)(nil)

// Upload stores the object under logos/<user>/<random><ext> and returns its
// public URL.
func (s *BlobStore) Upload(ctx context.Context, ownerUserID, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("logos/%s/%s%s", ownerUserID, uuid.NewString(), path.Ext(filename))

	_, err := s.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 blob store: failed to upload %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously uploaded object. URLs outside this store's
// public base are ignored.
func (s *BlobStore) Delete(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, s.publicBaseURL+"/")
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 blob store: failed to delete %s: %w", key, err)
	}
	return nil
}
