package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/kenzychew/pet-app-sub000/internal/config"
)

// Grooming photos are normalized before storage: decoded, capped to
// maxEdge, and re-encoded as webp.
const (
	maxEdge     = 1600
	webpQuality = 85
)

type PhotoStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &PhotoStore{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

func (s *PhotoStore) Upload(ctx context.Context, r io.Reader) (key string, url string, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decode photo: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, shrink(img), &webp.Options{Quality: webpQuality}); err != nil {
		return "", "", fmt.Errorf("encode photo: %w", err)
	}

	key = fmt.Sprintf("appointments/%s.webp", uuid.NewString())

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	}); err != nil {
		return "", "", fmt.Errorf("put photo: %w", err)
	}

	url = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	return key, url, nil
}

func shrink(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
