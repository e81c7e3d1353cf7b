package upload

import (
	"encoding/base64"
	"net/url"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shenikar/field_sync/internal/models"
)

const defaultExtension = "bin"

var mimeToExt = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"video/mp4":       "mp4",
	"application/pdf": "pdf",
}

// Extension определяет расширение файла: по имени, по удаленному URL, по MIME типу,
// по содержимому локального источника. Иначе "bin".
func Extension(name, remoteURL, mimeType, ref string) string {
	if ext := extFromPath(name); ext != "" {
		return ext
	}
	if u, err := url.Parse(remoteURL); err == nil && remoteURL != "" {
		if ext := extFromPath(u.Path); ext != "" {
			return ext
		}
	}
	if ext := extFromMIME(mimeType); ext != "" {
		return ext
	}
	if ext := extFromMIME(DetectMIME(ref)); ext != "" {
		return ext
	}
	return defaultExtension
}

// Kind возвращает tipoArquivo по MIME типу
func Kind(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return models.KindVideo
	default:
		return models.KindFile
	}
}

// DetectMIME определяет MIME тип локального источника по содержимому.
// Для неизвестных и недоступных источников возвращает пустую строку.
func DetectMIME(ref string) string {
	switch {
	case strings.HasPrefix(ref, "data:"):
		header, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
		if !ok {
			return ""
		}
		if mt, _, _ := strings.Cut(header, ";"); mt != "" {
			return mt
		}
		if raw, err := base64.StdEncoding.DecodeString(payload); err == nil {
			return mimetype.Detect(raw).String()
		}
		return ""
	case models.IsLocalReference(ref):
		p, ok := localPath(ref)
		if !ok {
			return ""
		}
		mt, err := mimetype.DetectFile(p)
		if err != nil {
			return ""
		}
		return mt.String()
	default:
		return ""
	}
}

func extFromPath(p string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if ext == "" || strings.ContainsAny(ext, "/?#") {
		return ""
	}
	return ext
}

func extFromMIME(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "" {
		return ""
	}
	if mt, _, ok := strings.Cut(mimeType, ";"); ok {
		mimeType = strings.TrimSpace(mt)
	}
	if ext, ok := mimeToExt[mimeType]; ok {
		return ext
	}
	if mt := mimetype.Lookup(mimeType); mt != nil {
		return strings.TrimPrefix(mt.Extension(), ".")
	}
	return ""
}

// localPath превращает file: URI или путь в путь файловой системы
func localPath(ref string) (string, bool) {
	switch {
	case strings.HasPrefix(ref, "file:"):
		u, err := url.Parse(ref)
		if err != nil || u.Path == "" {
			return "", false
		}
		return u.Path, true
	case strings.HasPrefix(ref, "content:"), strings.HasPrefix(ref, "data:"):
		return "", false
	default:
		return ref, true
	}
}
