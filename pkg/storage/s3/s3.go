// Package s3 implements the storage.Gateway contract on top of any
// S3-compatible backend (AWS S3, MinIO, LocalStack, R2) via aws-sdk-go-v2.
package s3

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"

	"github.com/rmedeiros/mediastore/pkg/staging"
	"github.com/rmedeiros/mediastore/pkg/storage"
)

// Gateway is the S3 implementation of storage.Gateway. One instance wraps one
// bucket; calls are synchronous and carry no retry policy, transient errors
// surface to the caller immediately.
type Gateway struct {
	client        *s3.Client
	uploader      *manager.Uploader
	presigner     *s3.PresignClient
	bucket        string
	stagingDir    string
	presignExpiry time.Duration
	logger        zerolog.Logger
}

var _ storage.Gateway = (*Gateway)(nil)

// New builds an authenticated gateway for cfg.Bucket. No requests are made
// beyond client setup; connectivity problems show up on the first operation.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Gateway, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
	)
	if err != nil {
		return nil, storage.WrapError("init", cfg.Bucket, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	// Secrets never reach the log: key id is truncated, the secret key is
	// omitted entirely.
	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("bucket", cfg.Bucket).
		Str("access_key_id", redactKeyID(cfg.AccessKeyID)).
		Str("staging_dir", cfg.stagingDir()).
		Msg("gateway initialized")

	return &Gateway{
		client:        client,
		uploader:      manager.NewUploader(client),
		presigner:     s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		stagingDir:    cfg.stagingDir(),
		presignExpiry: cfg.presignExpiry(),
		logger:        logger,
	}, nil
}

// Upload ships each key's staged file to the bucket, then removes the local
// copy. All keys are processed even when some fail.
func (g *Gateway) Upload(ctx context.Context, keys ...string) ([]storage.Result, error) {
	results := make([]storage.Result, 0, len(keys))

	for _, key := range keys {
		start := time.Now()
		err := g.uploadOne(ctx, key)
		results = append(results, storage.Result{
			Key:      key,
			Success:  err == nil,
			Error:    err,
			Duration: time.Since(start),
		})

		if err != nil {
			g.logger.Error().Err(err).Str("key", key).Msg("upload failed")
		} else {
			g.logger.Info().Str("key", key).Str("bucket", g.bucket).Msg("upload succeeded")
		}
	}

	return results, storage.BatchError(storage.ErrUpload, results)
}

func (g *Gateway) uploadOne(ctx context.Context, key string) error {
	source := staging.Path(g.stagingDir, key)

	file, err := os.Open(source)
	if err != nil {
		return storage.WrapError("upload", key, err)
	}

	_, err = g.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	file.Close()
	if err != nil {
		return storage.WrapError("upload", key, err)
	}

	// The object is durable at this point. Cleanup is at-least-once: a
	// leftover staged copy is logged, not failed.
	if err := staging.Remove(g.stagingDir, key); err != nil {
		g.logger.Warn().Err(err).Str("key", key).Msg("staged copy not cleaned up")
	}

	return nil
}

// Delete removes each key's object from the bucket. All keys are processed
// even when some fail.
func (g *Gateway) Delete(ctx context.Context, keys ...string) ([]storage.Result, error) {
	results := make([]storage.Result, 0, len(keys))

	for _, key := range keys {
		start := time.Now()

		_, err := g.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(g.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			err = storage.WrapError("delete", key, err)
			g.logger.Error().Err(err).Str("key", key).Msg("delete failed")
		}

		results = append(results, storage.Result{
			Key:      key,
			Success:  err == nil,
			Error:    err,
			Duration: time.Since(start),
		})
	}

	return results, storage.BatchError(storage.ErrDelete, results)
}

// PresignedURL probes the object and, when present, mints a GET URL valid for
// the configured expiry. A missing object yields "" with no error; any other
// probe failure surfaces.
func (g *Gateway) PresignedURL(ctx context.Context, key string) (string, error) {
	_, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", storage.WrapError("presign probe", key, err)
	}

	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = g.presignExpiry
	})
	if err != nil {
		return "", storage.WrapError("presign", key, err)
	}

	return req.URL, nil
}

// Close is a no-op for S3.
func (g *Gateway) Close() error {
	return nil
}
