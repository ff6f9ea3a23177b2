package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-lane/storefront-api/utils"
)

func imageFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestS3ImageServiceUploadImage(t *testing.T) {
	mock := NewMockS3Service()
	svc := &S3ImageService{s3Service: mock}

	key, err := svc.UploadImage(imageFileHeader(t, "lamp.png", []byte("image-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "products/mock_lamp.png", key)
	assert.True(t, mock.HasFile(key))
}

func TestS3ImageServiceRejectsInvalidFormat(t *testing.T) {
	mock := NewMockS3Service()
	svc := &S3ImageService{s3Service: mock}

	_, err := svc.UploadImage(imageFileHeader(t, "catalog.pdf", []byte("not-an-image")))
	var uploadErr *utils.FileUploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "INVALID_FILE_FORMAT", uploadErr.Code)
	assert.False(t, mock.HasFile("products/mock_catalog.pdf"))
}

func TestS3ImageServiceGetImageURL(t *testing.T) {
	mock := NewMockS3Service()
	svc := &S3ImageService{s3Service: mock}

	key, err := svc.UploadImage(imageFileHeader(t, "lamp.png", []byte("image-bytes")))
	require.NoError(t, err)

	url, err := svc.GetImageURL(key)
	require.NoError(t, err)
	assert.Contains(t, url, key)

	// Empty keys resolve to empty URLs, not errors
	url, err = svc.GetImageURL("")
	assert.NoError(t, err)
	assert.Empty(t, url)
}

func TestS3ImageServiceDeleteImage(t *testing.T) {
	mock := NewMockS3Service()
	svc := &S3ImageService{s3Service: mock}

	key, err := svc.UploadImage(imageFileHeader(t, "lamp.png", []byte("image-bytes")))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(key))
	assert.False(t, mock.HasFile(key))

	assert.NoError(t, svc.DeleteImage(""))
}
