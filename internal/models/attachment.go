package models

import "strings"

// Значения tipoArquivo
const (
	KindImage     = "imagem"
	KindVideo     = "video"
	KindFile      = "arquivo"
	KindSignature = "assinatura"
)

// SignatureDescription - descricao вложения с подписью
const SignatureDescription = "Assinatura do responsável"

// Attachment - anexo ocorrência. Пока файл не загружен, URI указывает на локальный источник.
type Attachment struct {
	ID          int64  `json:"id,omitempty"`
	URL         string `json:"urlArquivo,omitempty"`
	Name        string `json:"nomeArquivo,omitempty"`
	Kind        string `json:"tipoArquivo,omitempty"`
	Extension   string `json:"extensaoArquivo,omitempty"`
	Description string `json:"descricao,omitempty"`
	URI         string `json:"uri,omitempty"`
	MimeType    string `json:"type,omitempty"`
}

// Source возвращает ссылку на содержимое вложения
func (a *Attachment) Source() string {
	if a.URI != "" {
		return a.URI
	}
	return a.URL
}

// NeedsUpload сообщает, что вложение ссылается на локальный файл
func (a *Attachment) NeedsUpload() bool {
	return IsLocalReference(a.Source())
}

// IsLocalReference определяет локальные ссылки: file:, content:, data:
// или путь без http(s) схемы
func IsLocalReference(ref string) bool {
	switch {
	case ref == "":
		return false
	case strings.HasPrefix(ref, "file:"),
		strings.HasPrefix(ref, "content:"),
		strings.HasPrefix(ref, "data:"):
		return true
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return false
	default:
		return strings.Contains(ref, "/")
	}
}
