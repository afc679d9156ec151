// ABOUTME: S3 artifact sink uploads the digest JSON as a single object
// ABOUTME: PutObject replaces the object atomically so readers see the old or new artifact, never a mix

package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
)

const defaultCacheControl = "public, max-age=300"

// PutObjectAPI is the subset of the S3 client used by the sink
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config contains the destination of the artifact
type Config struct {
	Bucket string
	Key    string

	// Region overrides the default AWS chain when set
	Region string

	// CacheControl defaults to a five minute public cache
	CacheControl string
}

// Sink uploads artifacts to S3
type Sink struct {
	client PutObjectAPI
	cfg    Config
}

// NewSink creates a sink using the default AWS configuration chain
func NewSink(ctx context.Context, cfg Config) (*Sink, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewSinkWithClient(s3.NewFromConfig(awsCfg), cfg), nil
}

// NewSinkWithClient creates a sink around an existing client
func NewSinkWithClient(client PutObjectAPI, cfg Config) *Sink {
	if cfg.CacheControl == "" {
		cfg.CacheControl = defaultCacheControl
	}
	return &Sink{client: client, cfg: cfg}
}

// Target returns the s3:// URI of the artifact
func (s *Sink) Target() string {
	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, s.cfg.Key)
}

// Write uploads the artifact, replacing the previous object
func (s *Sink) Write(ctx context.Context, artifact *domain.Artifact) error {
	data, err := artifact.Encode()
	if err != nil {
		return &coreerrors.PersistenceError{Target: s.Target(), Cause: fmt.Errorf("encode: %w", err)}
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(s.cfg.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
		CacheControl:  aws.String(s.cfg.CacheControl),
	})
	if err != nil {
		return &coreerrors.PersistenceError{Target: s.Target(), Cause: err}
	}
	return nil
}
