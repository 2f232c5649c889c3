package storage

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectClient struct {
	puts    map[string][]byte
	deletes []string
}

func (f *fakeObjectClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}

func TestAwsS3_UploadFile(t *testing.T) {
	client := &fakeObjectClient{puts: map[string][]byte{}}
	store := NewAwsS3WithClient(client, "foodbridge", "ap-southeast-1")

	key, err := store.UploadFile("product-1", fileHeader(t, "nasi.PNG", []byte("img")), "products", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "products/product-1.png", key)
	assert.Equal(t, []byte("img"), client.puts[key])

	link := store.GetPublicLinkKey(key)
	assert.Equal(t, "https://foodbridge.s3.ap-southeast-1.amazonaws.com/products/product-1.png", link)
	assert.Equal(t, key, store.GetObjectKeyFromLink(link))
	assert.Equal(t, "", store.GetObjectKeyFromLink("https://elsewhere.example.com/x.png"))
}

func TestAwsS3_UploadFileRejectsType(t *testing.T) {
	client := &fakeObjectClient{puts: map[string][]byte{}}
	store := NewAwsS3WithClient(client, "foodbridge", "ap-southeast-1")

	_, err := store.UploadFile("product-1", fileHeader(t, "menu.pdf", []byte("pdf")), "products", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Empty(t, client.puts)
}

func TestAwsS3_UpdateFileChangesExtension(t *testing.T) {
	client := &fakeObjectClient{puts: map[string][]byte{}}
	store := NewAwsS3WithClient(client, "foodbridge", "ap-southeast-1")

	key, err := store.UpdateFile("products/product-1.png", fileHeader(t, "new.jpg", []byte("v2")), AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "products/product-1.jpg", key)
	assert.Equal(t, []string{"products/product-1.png"}, client.deletes)
}

func TestAwsS3_NoClient(t *testing.T) {
	store := NewAwsS3WithClient(nil, "foodbridge", "ap-southeast-1")
	_, err := store.UploadFile("p", fileHeader(t, "a.png", []byte("x")), "products", AllowImage...)
	assert.ErrorIs(t, err, ErrStorageDisabled)
}
