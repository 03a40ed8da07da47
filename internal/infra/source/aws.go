// Where: cli/internal/infra/source/aws.go
// What: AWS S3 client factory and SDK adapter for template downloads.
// Why: Encapsulate SDK configuration (region, custom endpoint, credentials).
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/sprout/cli/internal/constants"
)

const defaultAWSRegion = "us-east-1"

// S3API is the subset of S3 used to download a template prefix.
type S3API interface {
	ListObjects(ctx context.Context, bucket, prefix string) ([]string, error)
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

// ClientFactory builds S3 clients.
type ClientFactory interface {
	S3(ctx context.Context) (S3API, error)
}

// NewAWSClientFactory returns the SDK-backed factory.
func NewAWSClientFactory() ClientFactory {
	return awsClientFactory{}
}

type awsClientFactory struct{}

func (awsClientFactory) S3(ctx context.Context) (S3API, error) {
	cfg, err := loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimSpace(os.Getenv(constants.EnvS3Endpoint))
	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})
	return awsS3Client{client: client}, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	region := os.Getenv(constants.EnvAWSRegion)
	if region == "" {
		region = defaultAWSRegion
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	accessKey := os.Getenv(constants.EnvS3AccessKey)
	secretKey := os.Getenv(constants.EnvS3SecretKey)
	if accessKey != "" && secretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

type awsS3Client struct {
	client *s3.Client
}

func (c awsS3Client) ListObjects(ctx context.Context, bucket, prefix string) ([]string, error) {
	if c.client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			keys = append(keys, *obj.Key)
		}
	}
	return keys, nil
}

func (c awsS3Client) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if c.client == nil {
		return nil, fmt.Errorf("s3 client is nil")
	}
	resp, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
