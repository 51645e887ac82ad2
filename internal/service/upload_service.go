package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	config "github.com/maheshrc27/sheetcal/configs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UploadService stores post images in Cloudflare R2 and hands back the
// public URL that goes into a post's imageUrl field.
type UploadService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	cfg config.Config
}

func NewUploadService(cfg config.Config) UploadService {
	return &uploadService{cfg: cfg}
}

func (s *uploadService) r2Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.cfg.R2.AccessKey, s.cfg.R2.SecretKey, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.cfg.R2.AccountID))
	}), nil
}

func (s *uploadService) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	allowedTypes := map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
	}

	fileContent, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return "", fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return "", fmt.Errorf("unsupported file type: %w", err)
	}
	if _, ok := allowedTypes[fileType.Extension]; !ok {
		return "", fmt.Errorf("file type %s is not allowed", fileType.Extension)
	}

	key, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return "", err
	}

	client, err := s.r2Client(ctx)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(fileType.MIME.Value),
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("error uploading file: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cfg.R2.PublicURL, "/"), key), nil
}
