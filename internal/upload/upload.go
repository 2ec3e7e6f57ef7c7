package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/easynote/internal/config"
)

var ErrEmptyOwner = errors.New("upload owner is required")

type Uploader interface {
	Upload(ctx context.Context, owner, filePath string) (string, error)
}

// putter is the subset of manager.Uploader used here.
type putter interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3Uploader struct {
	bucket string
	prefix string
	client putter
}

// NewS3Uploader builds an uploader from the upload section of the config.
// Static credentials are used when EASYNOTE_AWS_ACCESS_KEY_ID and
// EASYNOTE_AWS_SECRET_ACCESS_KEY are set, otherwise the default chain applies.
func NewS3Uploader(ctx context.Context, cfg config.UploadConfig) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	id, secret := os.Getenv("EASYNOTE_AWS_ACCESS_KEY_ID"), os.Getenv("EASYNOTE_AWS_SECRET_ACCESS_KEY")
	if id != "" && secret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(id, secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return newS3Uploader(cfg, manager.NewUploader(s3.NewFromConfig(awsCfg))), nil
}

func newS3Uploader(cfg config.UploadConfig, client putter) *S3Uploader {
	return &S3Uploader{
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		client: client,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, owner, filePath string) (string, error) {
	key, err := ObjectKey(u.prefix, owner, filePath)
	if err != nil {
		return "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	out, err := u.client.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filePath, err)
	}

	return out.Location, nil
}

// ObjectKey places the file under prefix/owner/ using its base name.
func ObjectKey(prefix, owner, filePath string) (string, error) {
	owner = strings.Trim(strings.TrimSpace(owner), "/")
	if owner == "" {
		return "", ErrEmptyOwner
	}

	name := filepath.Base(filePath)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid upload path %q", filePath)
	}

	return path.Join(strings.Trim(prefix, "/"), owner, name), nil
}
