package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload is the stored location of one uploaded image.
type Upload struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// UploadFile pairs a filename with its content for multi-file uploads.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadImage sends one image as multipart form data.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (*Upload, error) {
	body, contentType, err := multipartBody("image", []UploadFile{{Name: filename, Reader: r}})
	if err != nil {
		return nil, err
	}

	var out Upload
	if err := c.sendMultipart(ctx, "/upload/single", body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImages sends several images in one multipart request.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile) ([]Upload, error) {
	body, contentType, err := multipartBody("images", files)
	if err != nil {
		return nil, err
	}

	var out struct {
		Files []Upload `json:"files"`
	}
	if err := c.sendMultipart(ctx, "/upload/multiple", body, contentType, &out); err != nil {
		return nil, err
	}
	return out.Files, nil
}

func (c *Client) sendMultipart(ctx context.Context, path string, body *bytes.Buffer, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.send(req, out)
}

func multipartBody(field string, files []UploadFile) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build multipart body: %w", err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to read upload %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
