package database

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rpupo63/playground-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory bucket. pageSize forces paginated listings.
type fakeS3 struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	pageSize     int
	failWith     error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}, pageSize: 2}
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}

	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, aws.ToString(in.Prefix)) && key > aws.ToString(in.ContinuationToken) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	if len(keys) > f.pageSize {
		keys = keys[:f.pageSize]
		out.IsTruncated = aws.Bool(true)
		out.NextContinuationToken = aws.String(keys[len(keys)-1])
	}
	for _, key := range keys {
		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
	}
	return out, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.contentTypes[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3AssetRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	repo := NewS3AssetRepo(client, "bucket", "/assets/")

	names, err := repo.List(ctx, "p1")
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)

	for _, name := range []string{"a.png", "b.css", "c.js", "d.bin"} {
		require.NoError(t, repo.Put(ctx, "p1", name, []byte(name)))
	}
	require.NoError(t, repo.Put(ctx, "p10", "other.png", []byte("x")))

	assert.Contains(t, client.objects, "assets/p1/a.png")
	assert.Equal(t, "image/png", client.contentTypes["assets/p1/a.png"])
	assert.Equal(t, "application/octet-stream", client.contentTypes["assets/p1/d.bin"])

	names, err = repo.List(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.css", "c.js", "d.bin"}, names)

	data, err := repo.Read(ctx, "p1", "c.js")
	require.NoError(t, err)
	assert.Equal(t, "c.js", string(data))

	require.NoError(t, repo.Delete(ctx, "p1", "a.png"))
	_, err = repo.Read(ctx, "p1", "a.png")
	assert.True(t, errs.IsNotFound(err))
}

func TestS3AssetRepoDeleteMissing(t *testing.T) {
	repo := NewS3AssetRepo(newFakeS3(), "bucket", "")

	err := repo.Delete(context.Background(), "p", "ghost.png")
	assert.True(t, errs.IsNotFound(err))
}

func TestS3AssetRepoEmptyPrefix(t *testing.T) {
	client := newFakeS3()
	repo := NewS3AssetRepo(client, "bucket", "")

	require.NoError(t, repo.Put(context.Background(), "p", "x.txt", []byte("x")))
	assert.Contains(t, client.objects, "p/x.txt")
}

func TestS3AssetRepoStorageFailure(t *testing.T) {
	client := newFakeS3()
	client.failWith = errors.New("connection reset")
	repo := NewS3AssetRepo(client, "bucket", "assets")

	_, err := repo.List(context.Background(), "p")
	assert.True(t, errs.IsStorage(err))

	err = repo.Put(context.Background(), "p", "a.png", nil)
	assert.True(t, errs.IsStorage(err))
}

func TestS3AssetRepoRejectsTraversal(t *testing.T) {
	repo := NewS3AssetRepo(newFakeS3(), "bucket", "assets")

	err := repo.Put(context.Background(), "p", "../other/x.png", nil)
	assert.True(t, errs.IsInvalidFilename(err))
}
