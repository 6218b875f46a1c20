package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/engineers-planet/site/config"
	"github.com/engineers-planet/site/internal/leads/domain"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func pdf(name string) domain.File {
	return domain.File{
		Name: name,
		Size: 5,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("%PDF-")), nil
		},
	}
}

func TestFileStore_UploadFile(t *testing.T) {
	api := &fakePutObject{}
	store := newFileStore(api, &config.S3Config{Bucket: "ep-uploads", Region: "eu-south-1"})

	res, err := store.UploadFile(context.Background(), pdf("cv.pdf"))
	require.NoError(t, err)

	require.NotNil(t, api.input)
	assert.Equal(t, "ep-uploads", aws.ToString(api.input.Bucket))
	assert.Equal(t, "application/octet-stream", aws.ToString(api.input.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(api.input.ContentLength))
	assert.Equal(t, "%PDF-", api.body)

	key := aws.ToString(api.input.Key)
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, "_cv.pdf"))
	assert.Equal(t, "https://ep-uploads.s3.eu-south-1.amazonaws.com/"+key, res.FileURL)
}

func TestFileStore_PublicBaseURL(t *testing.T) {
	store := newFileStore(&fakePutObject{}, &config.S3Config{
		Bucket:        "ep-uploads",
		Region:        "eu-south-1",
		PublicBaseURL: "https://cdn.example.com/",
	})
	assert.Equal(t, "https://cdn.example.com/uploads/x.pdf", store.ObjectURL("uploads/x.pdf"))
}

func TestFileStore_PutError(t *testing.T) {
	store := newFileStore(&fakePutObject{err: errors.New("access denied")}, &config.S3Config{Bucket: "b"})

	_, err := store.UploadFile(context.Background(), pdf("cv.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
