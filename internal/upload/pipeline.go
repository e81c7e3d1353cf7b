package upload

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_uploader.go -package=mocks

// Uploader загружает один файл и возвращает его удаленный URL
type Uploader interface {
	Upload(ctx context.Context, src Source) (string, error)
}

// Source - локальный файл для загрузки
type Source struct {
	Reference string
	Name      string
	MimeHint  string
}

// Result - загруженный файл. Index - позиция источника во входном списке.
type Result struct {
	Index     int
	RemoteURL string
	Name      string
	Kind      string
	Extension string
}

// Pipeline загружает файлы последовательно с паузой между загрузками.
// Неудачные загрузки пропускаются: вызывающий сравнивает число результатов с числом источников.
type Pipeline struct {
	uploader Uploader
	yield    time.Duration
	logger   *logrus.Logger
}

func NewPipeline(uploader Uploader, yield time.Duration, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		uploader: uploader,
		yield:    yield,
		logger:   logger,
	}
}

// Run загружает sources по порядку. Отмена ctx прерывает оставшиеся загрузки.
func (p *Pipeline) Run(ctx context.Context, sources []Source) []Result {
	results := make([]Result, 0, len(sources))
	for i, src := range sources {
		if i > 0 {
			if err := Yield(ctx, p.yield); err != nil {
				break
			}
		}

		log := p.logger.WithFields(logrus.Fields{
			"component": "upload",
			"name":      src.Name,
			"index":     i,
		})

		remoteURL, err := p.uploader.Upload(ctx, src)
		if err != nil {
			log.WithError(err).Warn("Failed to upload file")
			continue
		}
		if remoteURL == "" {
			log.Warn("Upload returned empty URL")
			continue
		}

		mimeType := src.MimeHint
		if mimeType == "" {
			mimeType = DetectMIME(src.Reference)
		}
		results = append(results, Result{
			Index:     i,
			RemoteURL: remoteURL,
			Name:      src.Name,
			Kind:      Kind(mimeType),
			Extension: Extension(src.Name, remoteURL, mimeType, src.Reference),
		})
		log.Debug("File uploaded")
	}
	return results
}

// Yield уступает планировщику: пауза d или runtime.Gosched при d == 0
func Yield(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		runtime.Gosched()
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
