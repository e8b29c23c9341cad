package database

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rpupo63/playground-backend/errs"
)

// S3API is the subset of the S3 client the asset store calls.
type S3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3AssetRepo keeps assets at <prefix>/<projectID>/<filename> in a bucket.
type S3AssetRepo struct {
	client S3API
	bucket string
	prefix string
}

func NewS3AssetRepo(client S3API, bucket, prefix string) *S3AssetRepo {
	return &S3AssetRepo{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (r *S3AssetRepo) List(ctx context.Context, projectID string) ([]string, error) {
	if err := ValidateProjectID(projectID); err != nil {
		return nil, err
	}

	scope := r.scope(projectID)
	names := []string{}
	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(scope),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errs.NewStorageError("list", "assets", err)
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), scope)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			names = append(names, name)
		}
	}
	return names, nil
}

func (r *S3AssetRepo) Put(ctx context.Context, projectID, filename string, data []byte) error {
	key, err := r.key(projectID, filename)
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return errs.NewStorageError("write", "asset", err)
	}
	return nil
}

func (r *S3AssetRepo) Delete(ctx context.Context, projectID, filename string) error {
	key, err := r.key(projectID, filename)
	if err != nil {
		return err
	}

	// DeleteObject succeeds for missing keys, so check first.
	_, err = r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if isMissingObject(err) {
		return errs.NewNotFound("asset")
	}
	if err != nil {
		return errs.NewStorageError("stat", "asset", err)
	}

	_, err = r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errs.NewStorageError("delete", "asset", err)
	}
	return nil
}

func (r *S3AssetRepo) Read(ctx context.Context, projectID, filename string) ([]byte, error) {
	key, err := r.key(projectID, filename)
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if isMissingObject(err) {
		return nil, errs.NewNotFound("asset")
	}
	if err != nil {
		return nil, errs.NewStorageError("read", "asset", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errs.NewStorageError("read", "asset", err)
	}
	return data, nil
}

func (r *S3AssetRepo) scope(projectID string) string {
	if r.prefix == "" {
		return projectID + "/"
	}
	return r.prefix + "/" + projectID + "/"
}

func (r *S3AssetRepo) key(projectID, filename string) (string, error) {
	if err := ValidateProjectID(projectID); err != nil {
		return "", err
	}
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}
	return r.scope(projectID) + filename, nil
}

func isMissingObject(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
