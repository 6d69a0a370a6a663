package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageUploader stores user-picked food images in S3 and hands back the
// public URI the catalog keeps as imageRef.
type ImageUploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewImageUploader(ctx context.Context, region, bucket, baseURL string) (*ImageUploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &ImageUploader{client: s3.NewFromConfig(cfg), bucket: bucket, baseURL: baseURL}, nil
}

// UploadBase64Image accepts a "data:<mime>;base64,<data>" payload and
// returns the public URL of the stored object.
func (u *ImageUploader) UploadBase64Image(ctx context.Context, base64Data string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", fmt.Errorf("invalid base64 image header")
	}
	contentType := strings.SplitN(metaParts[1], ";", 2)[0] // e.g. "image/jpeg"

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else if sub := strings.SplitN(contentType, "/", 2); len(sub) == 2 {
			ext = "." + sub[1]
		}
	}

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("food-images/%d%s", time.Now().UnixNano(), ext)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
