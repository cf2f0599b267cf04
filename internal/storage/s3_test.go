package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

type fakeS3API struct {
	putInput    *s3.PutObjectInput
	putErr      error
	deleteInput *s3.DeleteObjectInput
	deleteErr   error
}

func (f *fakeS3API) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3API) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = params
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func newTestClient(api *fakeS3API) *S3Client {
	return &S3Client{api: api, bucket: "mon-bucket", region: "eu-west-3"}
}

func TestUploadUniqueName(t *testing.T) {
	api := &fakeS3API{}
	client := newTestClient(api)

	res, err := client.Upload(context.Background(), strings.NewReader("contenu"), "photo.jpg", "image/jpeg", UploadOptions{
		UniqueName: true,
		Folder:     "/uploads/",
		Tags:       []string{"backend-upload"},
	})

	assert.NoError(t, err)

	key := *api.putInput.Key
	assert.True(t, strings.HasPrefix(key, "uploads/photo_"), "clé: %s", key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), "clé: %s", key)
	assert.NotEqual(t, "uploads/photo.jpg", key)

	assert.Equal(t, "mon-bucket", *api.putInput.Bucket)
	assert.Equal(t, "image/jpeg", *api.putInput.ContentType)
	assert.Equal(t, "tag=backend-upload", *api.putInput.Tagging)

	body, _ := io.ReadAll(api.putInput.Body)
	assert.Equal(t, "contenu", string(body))

	// L'URL publique et la clé de suppression pointent le même objet
	assert.Equal(t, "https://mon-bucket.s3.eu-west-3.amazonaws.com/"+key, res.URL)
	assert.Equal(t, key, res.FileName)
}

func TestUploadKeepsNameWithoutUniqueOption(t *testing.T) {
	api := &fakeS3API{}
	client := newTestClient(api)

	res, err := client.Upload(context.Background(), strings.NewReader("x"), "photo.jpg", "image/jpeg", UploadOptions{
		Folder: "avatars",
	})

	assert.NoError(t, err)
	assert.Equal(t, "avatars/photo.jpg", *api.putInput.Key)
	assert.Nil(t, api.putInput.Tagging)
	assert.Equal(t, "avatars/photo.jpg", res.FileName)
}

func TestUploadError(t *testing.T) {
	api := &fakeS3API{putErr: errors.New("accès refusé")}
	client := newTestClient(api)

	_, err := client.Upload(context.Background(), strings.NewReader("x"), "photo.jpg", "image/jpeg", UploadOptions{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upload échoué")
}

func TestDelete(t *testing.T) {
	api := &fakeS3API{}
	client := newTestClient(api)

	err := client.Delete(context.Background(), "uploads/photo_abc.jpg")

	assert.NoError(t, err)
	assert.Equal(t, "mon-bucket", *api.deleteInput.Bucket)
	assert.Equal(t, "uploads/photo_abc.jpg", *api.deleteInput.Key)
}

func TestDeleteError(t *testing.T) {
	api := &fakeS3API{deleteErr: errors.New("objet verrouillé")}
	client := newTestClient(api)

	err := client.Delete(context.Background(), "uploads/photo.jpg")

	assert.Error(t, err)
}
