package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadOptions : options transmises au service d'hébergement.
type UploadOptions struct {
	UniqueName bool
	Folder     string
	Tags       []string
}

// UploadResult : réponse du service. FileName est l'identifiant attribué
// par le service, à conserver comme clé de suppression.
type UploadResult struct {
	URL      string
	FileName string
}

// MediaStore : contrat du service d'hébergement de médias.
type MediaStore interface {
	Upload(ctx context.Context, media io.Reader, fileName, contentType string, opts UploadOptions) (UploadResult, error)
	Delete(ctx context.Context, fileName string) error
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Client implémente MediaStore sur un bucket S3. Construit une seule fois
// au démarrage puis injecté partout où un MediaStore est attendu.
type S3Client struct {
	api    s3API
	bucket string
	region string
}

func NewS3Client(ctx context.Context, bucket, region, accessKeyID, secretAccessKey string) (*S3Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("chargement config AWS: %w", err)
	}

	return &S3Client{
		api:    s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

func (s *S3Client) Upload(ctx context.Context, media io.Reader, fileName, contentType string, opts UploadOptions) (UploadResult, error) {
	name := fileName
	if opts.UniqueName {
		ext := filepath.Ext(fileName)
		name = fmt.Sprintf("%s_%s%s", strings.TrimSuffix(fileName, ext), uuid.New().String(), ext)
	}

	key := name
	if folder := strings.Trim(opts.Folder, "/"); folder != "" {
		key = folder + "/" + name
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        media,
		ContentType: aws.String(contentType),
	}
	if len(opts.Tags) > 0 {
		tagging := url.Values{}
		for _, tag := range opts.Tags {
			tagging.Add("tag", tag)
		}
		input.Tagging = aws.String(tagging.Encode())
	}

	if _, err := s.api.PutObject(ctx, input); err != nil {
		return UploadResult{}, fmt.Errorf("upload échoué: %w", err)
	}

	return UploadResult{
		URL:      fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key),
		FileName: key,
	}, nil
}

func (s *S3Client) Delete(ctx context.Context, fileName string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return fmt.Errorf("erreur suppression S3 : %w", err)
	}
	return nil
}
