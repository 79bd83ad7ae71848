package test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CSVUpload builds a multipart body with the content as the "file" form field.
//
// The body is returned together with the headers for the HTTP request.
func CSVUpload(t *testing.T, name, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	require.Nil(t, err)

	_, err = w.Write([]byte(content))
	require.Nil(t, err)
	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
