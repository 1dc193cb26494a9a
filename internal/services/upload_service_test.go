package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a parsed *multipart.FileHeader the way gin would hand
// it to a handler.
func makeFileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestAccept_StoresResumeUnderFreshName(t *testing.T) {
	store := newMockStorage()
	svc := NewUploadService(store, 0)

	outcome, err := svc.Accept(context.Background(),
		makeFileHeader(t, "cv", "mi-cv.pdf", "application/pdf", []byte("%PDF-1.4 contenido")),
		PurposeResume)
	require.NoError(t, err)
	require.True(t, outcome.Accepted())

	// Stored name is generated, never the client's filename.
	assert.NotEqual(t, "mi-cv.pdf", outcome.FileName)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}\.pdf$`), outcome.FileName)

	data, ok := store.saved["cv/"+outcome.FileName]
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF-1.4 contenido"), data)
}

func TestAccept_ProfileImageExtensionFollowsType(t *testing.T) {
	store := newMockStorage()
	svc := NewUploadService(store, 0)

	outcome, err := svc.Accept(context.Background(),
		makeFileHeader(t, "imagen", "foto.JPG", "image/jpeg", []byte("jpegdata")),
		PurposeProfileImage)
	require.NoError(t, err)
	require.True(t, outcome.Accepted())
	assert.Regexp(t, regexp.MustCompile(`\.jpeg$`), outcome.FileName)
}

func TestAccept_RejectsOversizedFile(t *testing.T) {
	store := newMockStorage()
	svc := NewUploadService(store, 0)

	big := bytes.Repeat([]byte("a"), int(MaxUploadSize)+1)
	outcome, err := svc.Accept(context.Background(),
		makeFileHeader(t, "cv", "grande.pdf", "application/pdf", big),
		PurposeResume)
	require.NoError(t, err)

	assert.False(t, outcome.Accepted())
	assert.Equal(t, RejectionTooLarge, outcome.Rejection)
	assert.Equal(t, "El archivo es muy grande: Máximo 100kb", string(outcome.Rejection))
	assert.Empty(t, store.saved)
}

func TestAccept_RejectsWrongFormat(t *testing.T) {
	store := newMockStorage()
	svc := NewUploadService(store, 0)

	tests := []struct {
		name        string
		contentType string
		purpose     UploadPurpose
	}{
		{"gif as profile image", "image/gif", PurposeProfileImage},
		{"pdf as profile image", "application/pdf", PurposeProfileImage},
		{"png as resume", "image/png", PurposeResume},
		{"text as resume", "text/plain", PurposeResume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := svc.Accept(context.Background(),
				makeFileHeader(t, "f", "archivo", tt.contentType, []byte("data")),
				tt.purpose)
			require.NoError(t, err)
			assert.False(t, outcome.Accepted())
			assert.Equal(t, RejectionInvalidFormat, outcome.Rejection)
		})
	}

	assert.Empty(t, store.saved)
}
