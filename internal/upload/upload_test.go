package upload_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/upload"
	"github.com/shenikar/field_sync/internal/upload/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestExtension(t *testing.T) {
	dir := t.TempDir()
	pngFile := filepath.Join(dir, "noext")
	require.NoError(t, os.WriteFile(pngFile, pngHeader, 0o600))

	cases := []struct {
		name, remote, mime, ref string
		want                    string
	}{
		{name: "Photo.JPEG", want: "jpeg"},
		{name: "foto", remote: "https://cdn.example.com/v1/abc.png?x=1", want: "png"},
		{name: "foto", mime: "video/mp4", want: "mp4"},
		{name: "foto", mime: "image/jpg", want: "jpg"},
		{name: "foto", mime: "image/webp", want: "webp"},
		{name: "foto", ref: "file://" + pngFile, want: "png"},
		{name: "foto", ref: pngFile, want: "png"},
		{name: "foto", ref: "data:image/png;base64,AAAA", want: "png"},
		{name: "foto", ref: "content://media/external/1", want: "bin"},
		{name: "", want: "bin"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, upload.Extension(tc.name, tc.remote, tc.mime, tc.ref), "%+v", tc)
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, models.KindImage, upload.Kind("image/png"))
	assert.Equal(t, models.KindVideo, upload.Kind("video/mp4"))
	assert.Equal(t, models.KindFile, upload.Kind("application/pdf"))
	assert.Equal(t, models.KindFile, upload.Kind(""))
}

func TestPipeline_DropsFailedUploadsAndKeepsOrder(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	uploader := mocks.NewMockUploader(ctrl)
	pipeline := upload.NewPipeline(uploader, 0, silentLogger())
	sources := []upload.Source{
		{Reference: "file:///a.jpg", Name: "a.jpg", MimeHint: "image/jpeg"},
		{Reference: "file:///b.mp4", Name: "b.mp4", MimeHint: "video/mp4"},
		{Reference: "file:///c.pdf", Name: "c.pdf", MimeHint: "application/pdf"},
	}

	// Ожидания
	gomock.InOrder(
		uploader.EXPECT().Upload(gomock.Any(), sources[0]).Return("https://cdn/a.jpg", nil),
		uploader.EXPECT().Upload(gomock.Any(), sources[1]).Return("", errors.New("timeout")),
		uploader.EXPECT().Upload(gomock.Any(), sources[2]).Return("https://cdn/c.pdf", nil),
	)

	// Действие
	results := pipeline.Run(context.Background(), sources)

	// Проверки
	require.Len(t, results, 2)
	assert.Equal(t, upload.Result{Index: 0, RemoteURL: "https://cdn/a.jpg", Name: "a.jpg", Kind: models.KindImage, Extension: "jpg"}, results[0])
	assert.Equal(t, upload.Result{Index: 2, RemoteURL: "https://cdn/c.pdf", Name: "c.pdf", Kind: models.KindFile, Extension: "pdf"}, results[1])
}

func TestPipeline_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	uploader := mocks.NewMockUploader(ctrl)
	pipeline := upload.NewPipeline(uploader, time.Hour, silentLogger())
	ctx, cancel := context.WithCancel(context.Background())

	uploader.EXPECT().Upload(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, upload.Source) (string, error) {
		cancel()
		return "https://cdn/a.jpg", nil
	}).Times(1)

	results := pipeline.Run(ctx, []upload.Source{{Name: "a.jpg"}, {Name: "b.jpg"}})
	assert.Len(t, results, 1)
}

func TestCloudinaryUploader_Upload(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "foto.png")
	require.NoError(t, os.WriteFile(file, pngHeader, 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "preset-1", r.FormValue("upload_preset"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "foto.png", header.Filename)
		content, _ := io.ReadAll(f)
		assert.Equal(t, pngHeader, content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.example.com/foto.png","url":"http://res.example.com/foto.png"}`))
	}))
	defer server.Close()

	uploader := upload.NewCloudinaryUploader(server.URL, "demo", "preset-1", 5*time.Second)
	url, err := uploader.Upload(context.Background(), upload.Source{Reference: "file://" + file, Name: "foto.png", MimeHint: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/foto.png", url)
}

func TestCloudinaryUploader_DataURLAndVideo(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		if r.URL.Path == "/demo/image/upload" {
			assert.Equal(t, "data:image/png;base64,AAAA", r.FormValue("file"))
		}
		_, _ = w.Write([]byte(`{"url":"http://res.example.com/x"}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	video := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(video, []byte("not really a video"), 0o600))

	uploader := upload.NewCloudinaryUploader(server.URL, "demo", "p", 5*time.Second)

	url, err := uploader.Upload(context.Background(), upload.Source{Reference: "data:image/png;base64,AAAA", Name: "sig.png", MimeHint: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "http://res.example.com/x", url)

	_, err = uploader.Upload(context.Background(), upload.Source{Reference: video, Name: "clip.mp4", MimeHint: "video/mp4"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/demo/image/upload", "/demo/video/upload"}, paths)
}

func TestCloudinaryUploader_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := upload.NewCloudinaryUploader(server.URL, "", "", time.Second).Upload(context.Background(), upload.Source{Reference: "data:,x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")

	uploader := upload.NewCloudinaryUploader(server.URL, "demo", "p", time.Second)
	_, err = uploader.Upload(context.Background(), upload.Source{Reference: "data:,x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")

	_, err = uploader.Upload(context.Background(), upload.Source{Reference: "content://media/1"})
	require.Error(t, err)

	_, err = uploader.Upload(context.Background(), upload.Source{Reference: "/does/not/exist.jpg"})
	require.Error(t, err)
}
