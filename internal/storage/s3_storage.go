package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultRegion            = "us-east-1"
	defaultPresignExpiration = 15 * time.Minute
)

var (
	ErrBucketRequired      = errors.New("storage bucket is required")
	ErrCredentialsRequired = errors.New("storage access key and secret key are required")
	ErrEmptyKey            = errors.New("storage key is required")
)

type Config struct {
	Endpoint          string
	Region            string
	Bucket            string
	AccessKey         string
	SecretKey         string
	UsePathStyle      bool
	PresignExpiration time.Duration
}

// S3ObjectStorage хранилище файлов (вложения, изображения товаров, сертификаты) в S3-совместимом бакете.
type S3ObjectStorage struct {
	client            *s3.Client
	presignClient     *s3.PresignClient
	bucket            string
	presignExpiration time.Duration
	l                 *logrus.Entry
}

func NewS3ObjectStorage(ctx context.Context, cfg Config, l *logrus.Logger) (*S3ObjectStorage, error) {
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrCredentialsRequired
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws config: %w", err)
	}

	var endpoint *string
	if cfg.Endpoint != "" {
		if _, parseErr := url.ParseRequestURI(cfg.Endpoint); parseErr != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", parseErr)
		}
		endpoint = aws.String(cfg.Endpoint)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		o.BaseEndpoint = endpoint
	})

	expiration := cfg.PresignExpiration
	if expiration <= 0 {
		expiration = defaultPresignExpiration
	}

	return &S3ObjectStorage{
		client:            client,
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: expiration,
		l:                 l.WithField("component", "storage"),
	}, nil
}

// EnsureBucket создает бакет, если его нет.
func (s *S3ObjectStorage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.l.WithField("bucket", s.bucket).Info("creating storage bucket")
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Put загружает объект под ключом key.
func (s *S3ObjectStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("[storage/put %s] %w", key, err)
	}
	s.l.WithField("key", key).Debug("object uploaded")
	return nil
}

// PresignGet временная ссылка на скачивание объекта.
func (s *S3ObjectStorage) PresignGet(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", fmt.Errorf("[storage/presign %s] %w", key, err)
	}
	return req.URL, nil
}

// ObjectKey строит уникальный ключ объекта в каталоге prefix, сохраняя расширение исходного файла.
func ObjectKey(prefix, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(fileName, `\`, "/"))))
	return path.Join(prefix, time.Now().UTC().Format("2006/01/02"), uuid.NewString()+ext)
}
