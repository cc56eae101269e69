package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestUploadImage(t *testing.T) {
	var gotField, gotFilename, gotContent, gotAuth string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload/single" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not a multipart request: %v", err)
			return
		}
		for field, headers := range r.MultipartForm.File {
			gotField = field
			gotFilename = headers[0].Filename
			f, _ := headers[0].Open()
			data, _ := io.ReadAll(f)
			gotContent = string(data)
		}
		w.Write([]byte(`{"url": "/uploads/logo.png", "filename": "logo.png"}`))
	})

	if err := store.Save("tok"); err != nil {
		t.Fatal(err)
	}

	up, err := client.UploadImage(context.Background(), "logo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotField != "image" {
		t.Errorf("form field = %q, want image", gotField)
	}
	if gotFilename != "logo.png" || gotContent != "png-bytes" {
		t.Errorf("file = %q (%q)", gotFilename, gotContent)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("uploads must carry the bearer token, got %q", gotAuth)
	}
	if up.URL != "/uploads/logo.png" {
		t.Errorf("url = %q", up.URL)
	}
}

func TestUploadImages(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload/multiple" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not a multipart request: %v", err)
			return
		}
		if n := len(r.MultipartForm.File["images"]); n != 2 {
			t.Errorf("got %d files under the images field, want 2", n)
		}
		w.Write([]byte(`{"files": [{"url": "/uploads/a.png"}, {"url": "/uploads/b.png"}]}`))
	})

	uploads, err := client.UploadImages(context.Background(), []UploadFile{
		{Name: "a.png", Reader: strings.NewReader("a")},
		{Name: "b.png", Reader: strings.NewReader("b")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uploads) != 2 || uploads[1].URL != "/uploads/b.png" {
		t.Errorf("uploads = %+v", uploads)
	}
}
