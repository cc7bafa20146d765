// Package attachmenttest builds multipart uploads for tests.
package attachmenttest

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

// File describes one file part of a multipart body.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// Body encodes form fields and files as multipart/form-data and returns the
// body with its content type.
func Body(t *testing.T, fields map[string]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Filename))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

// FileHeader returns the parsed header of a single uploaded file.
func FileHeader(t *testing.T, f File) *multipart.FileHeader {
	t.Helper()

	if f.Field == "" {
		f.Field = "archivo"
	}
	body, contentType := Body(t, nil, f)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	_, fh, err := req.FormFile(f.Field)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return fh
}

// PDF is a minimal payload accepted as a document.
func PDF(name string) File {
	return File{Filename: name, ContentType: "application/pdf", Content: []byte("%PDF-1.4\n%%EOF\n")}
}
