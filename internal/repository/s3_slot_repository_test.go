package repository

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 keeps objects in a map keyed by bucket/key
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	getErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string]string)}
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("not found")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3SlotRepository_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	repo := NewS3SlotRepository(client, "dash", "slots/")

	_, found, err := repo.Get(ctx, "burger_orders")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "burger_orders", `[{"id":"ORD-ABC123"}]`))
	assert.Contains(t, client.objects, "dash/slots/burger_orders.json")

	value, found, err := repo.Get(ctx, "burger_orders")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"ORD-ABC123"}]`, value)

	require.NoError(t, repo.Delete(ctx, "burger_orders"))
	_, found, err = repo.Get(ctx, "burger_orders")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestS3SlotRepository_GetError(t *testing.T) {
	client := newFakeS3()
	client.getErr = errors.New("access denied")
	repo := NewS3SlotRepository(client, "dash", "")

	_, found, err := repo.Get(context.Background(), "burger_cart")

	assert.Error(t, err)
	assert.False(t, found)
}

func TestOpenS3SlotRepository_RequiresBucket(t *testing.T) {
	_, err := OpenS3SlotRepository(context.Background(), S3Config{Region: "us-east-1"})

	assert.Error(t, err)
}
