package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
)

// PutObjectAPI is the part of the S3 client the publisher needs
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher mirrors frontend files into an S3 bucket
type S3Publisher struct {
	bucket string
	prefix string
	log    *slog.Logger

	// client is created on first use so commands that never publish
	// don't need AWS credentials.
	client PutObjectAPI
}

// NewS3Publisher creates a publisher for the configured bucket, if any
func NewS3Publisher(cfg *config.RuntimeConfig, log *slog.Logger) *S3Publisher {
	return &S3Publisher{
		bucket: cfg.FrontendBucket,
		prefix: strings.Trim(cfg.FrontendPrefix, "/"),
		log:    log.With("component", "S3Publisher"),
	}
}

// NewS3PublisherWithClient creates a publisher around an existing client
func NewS3PublisherWithClient(bucket, prefix string, client PutObjectAPI, log *slog.Logger) *S3Publisher {
	return &S3Publisher{
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		log:    log.With("component", "S3Publisher"),
		client: client,
	}
}

// Enabled reports whether a bucket is configured
func (p *S3Publisher) Enabled() bool {
	return p.bucket != ""
}

// Publish uploads every file and returns the s3:// location they landed in
func (p *S3Publisher) Publish(ctx context.Context, files []models.FrontendFile) (string, error) {
	if !p.Enabled() {
		return "", nil
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	for _, file := range files {
		key := p.key(file.Name)
		_, err := client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(file.Content),
			ContentType: aws.String("application/json"),
			ACL:         types.ObjectCannedACLPrivate,
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload %s to s3://%s/%s: %w", file.Name, p.bucket, key, err)
		}
		p.log.Debug("uploaded frontend file", "bucket", p.bucket, "key", key)
	}

	return p.location(), nil
}

func (p *S3Publisher) key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

func (p *S3Publisher) location() string {
	if p.prefix == "" {
		return "s3://" + p.bucket
	}
	return "s3://" + p.bucket + "/" + p.prefix
}

func (p *S3Publisher) getClient(ctx context.Context) (PutObjectAPI, error) {
	if p.client != nil {
		return p.client, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	p.client = s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		BaseEndpoint: cfg.BaseEndpoint,
		UsePathStyle: true,
	})
	return p.client, nil
}

var _ usecase.FrontendPublisher = (*S3Publisher)(nil)
