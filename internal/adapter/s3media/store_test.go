package s3media

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodshare/internal/config/configs"
)

type fakeDeleter struct {
	keys []string
	err  error
}

func (f *fakeDeleter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.keys = append(f.keys, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestStore_AWSURLs(t *testing.T) {
	st, err := NewWithClient(&fakeDeleter{}, configs.S3{Bucket: "media", Region: "ap-south-1"})
	require.NoError(t, err)

	url := st.PublicURL("ads/banner.png")
	assert.Equal(t, "https://media.s3.ap-south-1.amazonaws.com/ads/banner.png", url)

	key, ok := st.ExtractKey(url)
	require.True(t, ok)
	assert.Equal(t, "ads/banner.png", key)
}

func TestStore_MinIOURLs(t *testing.T) {
	st, err := NewWithClient(&fakeDeleter{}, configs.S3{Bucket: "media", Endpoint: "http://localhost:9000"})
	require.NoError(t, err)

	url := st.PublicURL("posts/a.jpg")
	assert.Equal(t, "http://localhost:9000/media/posts/a.jpg", url)

	key, ok := st.ExtractKey(url)
	require.True(t, ok)
	assert.Equal(t, "posts/a.jpg", key)
}

func TestStore_ExtractKeyRejectsForeignURLs(t *testing.T) {
	st, err := NewWithClient(&fakeDeleter{}, configs.S3{Bucket: "media", PublicBaseURL: "https://cdn.example.com/m"})
	require.NoError(t, err)

	for _, raw := range []string{
		"https://evil.example.com/m/a.jpg",
		"https://cdn.example.com/other/a.jpg",
		"https://cdn.example.com/m/",
		"::not a url",
	} {
		_, ok := st.ExtractKey(raw)
		assert.False(t, ok, raw)
	}
}

func TestStore_Delete(t *testing.T) {
	fd := &fakeDeleter{}
	st, err := NewWithClient(fd, configs.S3{Bucket: "media", Region: "us-east-1"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(context.Background(), "posts/a.jpg"))
	assert.Equal(t, []string{"media/posts/a.jpg"}, fd.keys)

	fd.err = errors.New("boom")
	err = st.Delete(context.Background(), "posts/b.jpg")
	assert.ErrorContains(t, err, "delete media posts/b.jpg")
}

func TestNewWithClient_RequiresBucket(t *testing.T) {
	_, err := NewWithClient(&fakeDeleter{}, configs.S3{})
	assert.Error(t, err)
}
