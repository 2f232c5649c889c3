package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"foodbridge-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".webp"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	// ObjectClient is the subset of the S3 client used here.
	ObjectClient interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client ObjectClient
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return NewAwsS3WithClient(nil, bucket, region)
	}
	return NewAwsS3WithClient(s3.NewFromConfig(cfg), bucket, region)
}

func NewAwsS3WithClient(client ObjectClient, bucket, region string) AwsS3 {
	return &awsS3{client: client, bucket: bucket, region: region}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isAllowed(ext, allowed) {
		return "", ErrFileTypeNotAllowed
	}
	objectKey := fmt.Sprintf("%s/%s%s", folder, fileName, ext)
	if err := a.put(objectKey, file); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isAllowed(ext, allowed) {
		return "", ErrFileTypeNotAllowed
	}

	newKey := strings.TrimSuffix(objectKey, filepath.Ext(objectKey)) + ext
	if newKey != objectKey {
		if err := a.DeleteFile(objectKey); err != nil {
			return "", err
		}
	}
	if err := a.put(newKey, file); err != nil {
		return "", err
	}
	return newKey, nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	if a.client == nil {
		return ErrStorageDisabled
	}
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", objectKey, err)
	}
	return nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("%s/%s", a.baseURL(), objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := a.baseURL() + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func (a *awsS3) baseURL() string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", a.bucket, a.region)
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader) error {
	if a.client == nil {
		return ErrStorageDisabled
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return nil
}

func isAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
