package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CloudinaryUploader загружает файлы через unsigned upload preset
type CloudinaryUploader struct {
	baseURL    string
	cloudName  string
	preset     string
	httpClient *http.Client
}

func NewCloudinaryUploader(baseURL, cloudName, preset string, timeout time.Duration) *CloudinaryUploader {
	return &CloudinaryUploader{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cloudName:  cloudName,
		preset:     preset,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	PublicID  string `json:"public_id"`
}

// Upload отправляет файл как multipart/form-data. Data URL передается строкой в поле file.
func (u *CloudinaryUploader) Upload(ctx context.Context, src Source) (string, error) {
	if u.cloudName == "" || u.preset == "" {
		return "", fmt.Errorf("upload: cloudinary is not configured (UPLOAD_CLOUD_NAME, UPLOAD_PRESET)")
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	if err := u.writeFile(form, src); err != nil {
		return "", err
	}
	if err := form.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("upload: could not write form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("upload: could not write form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.baseURL, u.cloudName, resourceType(src))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("upload: could not create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload: cloudinary responded %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out cloudinaryResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("upload: invalid cloudinary response: %w", err)
	}
	switch {
	case out.SecureURL != "":
		return out.SecureURL, nil
	case out.URL != "":
		return out.URL, nil
	case out.PublicID != "":
		return out.PublicID, nil
	}
	return "", fmt.Errorf("upload: cloudinary response has no url")
}

func (u *CloudinaryUploader) writeFile(form *multipart.Writer, src Source) error {
	if strings.HasPrefix(src.Reference, "data:") || strings.HasPrefix(src.Reference, "http://") || strings.HasPrefix(src.Reference, "https://") {
		if err := form.WriteField("file", src.Reference); err != nil {
			return fmt.Errorf("upload: could not write form: %w", err)
		}
		return nil
	}

	p, ok := localPath(src.Reference)
	if !ok {
		return fmt.Errorf("upload: unsupported reference %q", src.Reference)
	}
	f, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("upload: could not open %s: %w", p, err)
	}
	defer f.Close()

	name := src.Name
	if name == "" {
		name = filepath.Base(p)
	}
	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return fmt.Errorf("upload: could not write form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("upload: could not read %s: %w", p, err)
	}
	return nil
}

// resourceType - video для видео, иначе image
func resourceType(src Source) string {
	if strings.HasPrefix(src.MimeHint, "video") || strings.HasSuffix(strings.ToLower(src.Reference), ".mp4") {
		return "video"
	}
	return "image"
}
