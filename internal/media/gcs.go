package media

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	storage "google.golang.org/api/storage/v1"
)

const publicBaseURL = "https://storage.googleapis.com"

// GCSUploader stores photos as objects in a Google Cloud Storage bucket
type GCSUploader struct {
	svc    *storage.Service
	bucket string
}

// NewGCSUploader builds an uploader for bucket. credentialsFile may be empty,
// in which case Application Default Credentials are used.
func NewGCSUploader(ctx context.Context, bucket, credentialsFile string) (*GCSUploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	var creds *google.Credentials
	var err error
	if credentialsFile != "" {
		data, readErr := os.ReadFile(credentialsFile)
		if readErr != nil {
			return nil, fmt.Errorf("read credentials: %w", readErr)
		}
		creds, err = google.CredentialsFromJSON(ctx, data, storage.DevstorageReadWriteScope)
	} else {
		creds, err = google.FindDefaultCredentials(ctx, storage.DevstorageReadWriteScope)
	}
	if err != nil {
		return nil, fmt.Errorf("load google credentials: %w", err)
	}

	svc, err := storage.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create storage service: %w", err)
	}
	return &GCSUploader{svc: svc, bucket: bucket}, nil
}

// Upload writes data to <folder>/<uuid> and returns its public URL
func (u *GCSUploader) Upload(ctx context.Context, data []byte, folder string) (string, error) {
	obj := &storage.Object{
		Name:        path.Join(folder, uuid.New().String()),
		ContentType: http.DetectContentType(data),
	}
	res, err := u.svc.Objects.Insert(u.bucket, obj).
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("insert object: %w", err)
	}
	return publicURL(u.bucket, res.Name), nil
}

func publicURL(bucket, name string) string {
	return publicBaseURL + "/" + url.PathEscape(bucket) + "/" + (&url.URL{Path: name}).EscapedPath()
}
