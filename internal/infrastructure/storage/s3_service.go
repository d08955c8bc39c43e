package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/vishalthakur2004/CarRental-sub001/domain"
)

// S3ServiceImpl implements domain.ImageStorage on an S3 bucket.
type S3ServiceImpl struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
}

// NewS3Service creates an S3-backed image store with static credentials.
func NewS3Service(accessKeyID, secretAccessKey, region, bucket string) (domain.ImageStorage, error) {
	if region == "" || bucket == "" {
		return nil, fmt.Errorf("s3 region and bucket are required")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	return &S3ServiceImpl{
		uploader: s3manager.NewUploader(sess),
		bucket:   bucket,
		region:   region,
	}, nil
}

// Upload implements domain.ImageStorage; it returns the public object URL.
func (s *S3ServiceImpl) Upload(ctx context.Context, name string, r io.Reader, contentType string) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}
	return out.Location, nil
}
