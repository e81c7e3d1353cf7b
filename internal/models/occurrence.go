package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TempNumberPrefix - префикс номера для записей, еще не созданных на сервере
	TempNumberPrefix = "OCR_LOCAL_"
	// DefaultStatus - статус временной записи по умолчанию
	DefaultStatus = "pendente"
	// DefaultTriggerMode - способ вызова для записей, созданных из приложения
	DefaultTriggerMode = "aplicativo"
)

// Occurrence - запись об ocorrência в формате удаленного API.
// Для create это полный черновик, для update - патч с id целевой записи.
type Occurrence struct {
	ID               int64        `json:"id,omitempty"`
	Number           string       `json:"numeroOcorrencia,omitempty"`
	CalledAt         *time.Time   `json:"dataHoraChamada,omitempty"`
	Status           string       `json:"statusAtendimento,omitempty"`
	Description      string       `json:"descricao,omitempty"`
	TriggerMode      string       `json:"formaAcionamento,omitempty"`
	NoServiceReason  string       `json:"motivoNaoAtendimento,omitempty"`
	UserID           int64        `json:"usuarioId,omitempty"`
	User             *Ref         `json:"usuario,omitempty"`
	UnitID           *int64       `json:"unidadeOperacionalId,omitempty"`
	VehicleID        *int64       `json:"viaturaId,omitempty"`
	CategoryID       *int64       `json:"naturezaOcorrenciaId,omitempty"`
	GroupID          *int64       `json:"grupoOcorrenciaId,omitempty"`
	SubgroupID       *int64       `json:"subgrupoOcorrenciaId,omitempty"`
	Category         *Ref         `json:"naturezaOcorrencia,omitempty"`
	Group            *Ref         `json:"grupoOcorrencia,omitempty"`
	Subgroup         *Ref         `json:"subgrupoOcorrencia,omitempty"`
	Location         *Location    `json:"localizacao,omitempty"`
	Attachments      []Attachment `json:"anexos,omitempty"`
	SignatureDataURL string       `json:"assinaturaDataUrl,omitempty"`
	Victims          []Victim     `json:"vitimas,omitempty"`
	TeamUserIDs      []int64      `json:"equipe,omitempty"`
}

// Ref - ссылка на справочную сущность
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"nome,omitempty"`
}

// IsTemporary сообщает, что запись синтезирована локально и ждет создания на сервере
func (o *Occurrence) IsTemporary() bool {
	return o.ID < 0
}

// OwnerID возвращает id пользователя, которому принадлежит запись
func (o *Occurrence) OwnerID() int64 {
	if o.UserID != 0 {
		return o.UserID
	}
	if o.User != nil {
		return o.User.ID
	}
	return 0
}

// HasCoordinates сообщает, заданы ли обе координаты
func (o *Occurrence) HasCoordinates() bool {
	return o.Location != nil && o.Location.HasCoordinates()
}

// Clone возвращает глубокую копию записи
func (o Occurrence) Clone() Occurrence {
	c := o
	if o.CalledAt != nil {
		t := *o.CalledAt
		c.CalledAt = &t
	}
	if o.User != nil {
		u := *o.User
		c.User = &u
	}
	c.UnitID = cloneID(o.UnitID)
	c.VehicleID = cloneID(o.VehicleID)
	c.CategoryID = cloneID(o.CategoryID)
	c.GroupID = cloneID(o.GroupID)
	c.SubgroupID = cloneID(o.SubgroupID)
	c.Category = cloneRef(o.Category)
	c.Group = cloneRef(o.Group)
	c.Subgroup = cloneRef(o.Subgroup)
	if o.Location != nil {
		l := o.Location.Clone()
		c.Location = &l
	}
	if o.Attachments != nil {
		c.Attachments = append([]Attachment(nil), o.Attachments...)
	}
	if o.Victims != nil {
		c.Victims = make([]Victim, len(o.Victims))
		for i, v := range o.Victims {
			c.Victims[i] = v.Clone()
		}
	}
	if o.TeamUserIDs != nil {
		c.TeamUserIDs = append([]int64(nil), o.TeamUserIDs...)
	}
	return c
}

// NewTemporary строит временную запись для локальных кешей по черновику create
func NewTemporary(draft Occurrence, tempID int64, now time.Time) Occurrence {
	t := draft.Clone()
	t.ID = tempID
	if t.Number == "" {
		t.Number = fmt.Sprintf("%s%d", TempNumberPrefix, -tempID)
	}
	if t.CalledAt == nil {
		called := now.UTC()
		t.CalledAt = &called
	}
	if t.Status == "" {
		t.Status = DefaultStatus
	}
	if owner := draft.OwnerID(); owner != 0 && t.User == nil {
		t.User = &Ref{ID: owner}
	}
	t.SignatureDataURL = ""
	for i, a := range t.Attachments {
		if a.URL == "" {
			t.Attachments[i].URL = a.URI
		}
		if a.Kind == "" {
			t.Attachments[i].Kind = KindImage
		}
	}
	return t
}

// Victim - vítima, привязанная к ocorrência
type Victim struct {
	ID           int64  `json:"id,omitempty"`
	OccurrenceID int64  `json:"ocorrenciaId,omitempty"`
	Name         string `json:"nome,omitempty"`
	CPF          string `json:"cpf_vitima,omitempty"`
	Age          *int   `json:"idade,omitempty"`
	Sex          string `json:"sexo,omitempty"`
	InjuryID     *int64 `json:"lesaoId,omitempty"`
	Destination  string `json:"destinoVitima,omitempty"`
	CareType     string `json:"tipoAtendimento,omitempty"`
	Notes        string `json:"observacoes,omitempty"`
}

// Clone возвращает копию vítima
func (v Victim) Clone() Victim {
	c := v
	if v.Age != nil {
		a := *v.Age
		c.Age = &a
	}
	c.InjuryID = cloneID(v.InjuryID)
	return c
}

// Normalized приводит CPF к цифрам и пол к кодам M/F/O
func (v Victim) Normalized() Victim {
	c := v.Clone()
	c.CPF = digitsOnly(v.CPF)
	c.Sex = NormalizeSex(v.Sex)
	return c
}

// NormalizeSex приводит произвольное значение пола к M, F или O
func NormalizeSex(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ""
	case "m", "masculino", "male":
		return "M"
	case "f", "feminino", "female":
		return "F"
	default:
		return "O"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneRef(r *Ref) *Ref {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}
