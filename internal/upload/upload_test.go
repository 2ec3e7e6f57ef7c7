package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/easynote/internal/config"
)

type fakePutter struct {
	bucket string
	key    string
	body   string
	err    error
}

func (f *fakePutter) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(input.Bucket)
	f.key = aws.ToString(input.Key)
	b, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(b)
	return &manager.UploadOutput{Location: "https://" + f.bucket + "/" + f.key}, nil
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix, owner, path string
		want                string
	}{
		{"", "ryan", "/tmp/a.png", "ryan/a.png"},
		{"notes/", "/ryan/", "b.txt", "notes/ryan/b.txt"},
	}

	for _, tt := range tests {
		got, err := ObjectKey(tt.prefix, tt.owner, tt.path)
		if err != nil {
			t.Fatalf("ObjectKey(%q, %q, %q): %v", tt.prefix, tt.owner, tt.path, err)
		}
		if got != tt.want {
			t.Fatalf("ObjectKey(%q, %q, %q) = %q, want %q", tt.prefix, tt.owner, tt.path, got, tt.want)
		}
	}

	if _, err := ObjectKey("", "  ", "a.png"); !errors.Is(err, ErrEmptyOwner) {
		t.Fatalf("expected ErrEmptyOwner, got %v", err)
	}
}

func TestS3UploaderUpload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakePutter{}
	u := newS3Uploader(config.UploadConfig{Bucket: "bucket", Prefix: "uploads"}, fake)

	url, err := u.Upload(context.Background(), "ryan", file)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://bucket/uploads/ryan/photo.png" {
		t.Fatalf("unexpected url %q", url)
	}
	if fake.body != "data" {
		t.Fatalf("unexpected body %q", fake.body)
	}
}

func TestS3UploaderErrors(t *testing.T) {
	u := newS3Uploader(config.UploadConfig{Bucket: "bucket"}, &fakePutter{err: errors.New("denied")})

	if _, err := u.Upload(context.Background(), "ryan", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	file := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Upload(context.Background(), "ryan", file); err == nil {
		t.Fatalf("expected the client error to be returned")
	}
}
