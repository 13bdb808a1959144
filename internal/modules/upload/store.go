package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dsofts/core/internal/config"
)

// Store persists images in an S3-compatible bucket. The public id of an
// image is its full object key.
type Store struct {
	client       *s3.Client
	uploader     *manager.Uploader
	bucket       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

// NewStore builds the S3 client from static credentials.
func NewStore(ctx context.Context, opts config.S3Options) (*Store, error) {
	cfg, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(opts.Region),
		awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyleAccess
	})

	return &Store{
		client:       client,
		uploader:     manager.NewUploader(client),
		bucket:       opts.Bucket,
		endpoint:     strings.TrimSuffix(opts.Endpoint, "/"),
		customDomain: strings.TrimSuffix(opts.CustomDomain, "/"),
		pathStyle:    opts.PathStyleAccess,
	}, nil
}

// Upload stores one image under folder and returns its public description.
func (s *Store) Upload(ctx context.Context, data []byte, filename, folder string) (*UploadedImage, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := allowedExtensions[ext]
	if !ok {
		return nil, errBadType
	}

	key := buildKey(filename, folder)
	contentType := "image/" + format
	if format == "jpg" {
		contentType = "image/jpeg"
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	width, height := sniffDimensions(data)
	return &UploadedImage{
		URL:      s.publicURL(key),
		PublicID: key,
		Format:   format,
		Width:    width,
		Height:   height,
	}, nil
}

type namedFile struct {
	data     []byte
	filename string
}

// uploadMany stores a batch concurrently. A single failure fails the batch.
func (s *Store) uploadMany(ctx context.Context, files []namedFile, folder string) ([]UploadedImage, error) {
	images := make([]UploadedImage, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			img, err := s.Upload(gctx, f.data, f.filename, folder)
			if err != nil {
				return err
			}
			images[i] = *img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// Delete removes the object behind publicID, reporting a missing object as
// errImageNotFound.
func (s *Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return errImageNotFound
		}
		return fmt.Errorf("stat %s: %w", publicID, err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", publicID, err)
	}
	return nil
}

func (s *Store) publicURL(key string) string {
	if s.customDomain != "" {
		return s.customDomain + "/" + key
	}
	if s.endpoint != "" {
		if s.pathStyle {
			return s.endpoint + "/" + s.bucket + "/" + key
		}
		return strings.Replace(s.endpoint, "://", "://"+s.bucket+".", 1) + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

// buildKey derives a unique object key from the original filename.
func buildKey(filename, folder string) string {
	if strings.TrimSpace(folder) == "" {
		folder = defaultFolder
	}
	folder = strings.Trim(folder, "/")

	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = sanitizeName(base)
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s/%s-%s%s", folder, base, suffix, ext)
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "image"
	}
	return b.String()
}
