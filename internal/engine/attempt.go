package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/upload"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	signatureSuffix   = "_assinatura.png"
	signatureFallback = "assinatura"
	childLimit        = 4
)

// attemptSend проводит операцию через обогащение, загрузку вложений и отправку.
// Возвращает нагрузку с достигнутым прогрессом: координатами и загруженными вложениями.
func (e *Engine) attemptSend(ctx context.Context, action models.QueuedAction) (models.Occurrence, error) {
	log := e.logger.WithFields(logrus.Fields{
		"component": "engine",
		"action_id": action.ID,
		"type":      action.Kind,
		"target_id": action.TargetID(),
		"retries":   action.Retries,
	})

	p := action.Payload.Clone()
	if !e.network.IsConnected(ctx) {
		log.Debug("Network is unavailable, skipping attempt")
		return p, fmt.Errorf("engine: offline: %w", models.ErrTransientNetwork)
	}
	normalize(&p)

	if err := upload.Yield(ctx, e.opts.Yield); err != nil {
		return p, err
	}
	e.enrichCoordinates(ctx, &p, log)

	if err := e.uploadAttachments(ctx, &p); err != nil {
		log.WithError(err).Warn("Attachment upload incomplete")
		return p, err
	}
	if err := e.uploadSignature(ctx, &p); err != nil {
		log.WithError(err).Warn("Signature upload failed")
		return p, err
	}
	if err := upload.Yield(ctx, e.opts.Yield); err != nil {
		return p, err
	}

	switch action.Kind {
	case models.ActionCreate:
		if !p.HasCoordinates() {
			log.Warn("Create has no coordinates, skipping submission")
			return p, models.ErrMissingCoordinates
		}
		return p, e.submitCreate(ctx, action, p, log)
	case models.ActionUpdate:
		return p, e.submitUpdate(ctx, action, p, log)
	default:
		return p, fmt.Errorf("engine: unsupported action type %q: %w", action.Kind, models.ErrServerRejection)
	}
}

// normalize убирает пробелы в адресе, нечисловые координаты и приводит vítimas к формату API
func normalize(p *models.Occurrence) {
	if loc := p.Location; loc != nil {
		loc.Municipality = strings.TrimSpace(loc.Municipality)
		loc.Neighborhood = strings.TrimSpace(loc.Neighborhood)
		loc.Street = strings.TrimSpace(loc.Street)
		loc.Number = strings.TrimSpace(loc.Number)
		loc.Reference = strings.TrimSpace(loc.Reference)
		if loc.Latitude != nil && !finite(*loc.Latitude) {
			loc.Latitude = nil
		}
		if loc.Longitude != nil && !finite(*loc.Longitude) {
			loc.Longitude = nil
		}
	}
	for i := range p.Victims {
		p.Victims[i] = p.Victims[i].Normalized()
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// enrichCoordinates заполняет координаты по полному адресу. Неудача не прерывает попытку.
func (e *Engine) enrichCoordinates(ctx context.Context, p *models.Occurrence, log *logrus.Entry) {
	loc := p.Location
	if loc == nil || loc.HasCoordinates() || !loc.HasAddress() {
		return
	}

	query := loc.Address()
	if e.opts.Region != "" {
		query += ", " + e.opts.Region
	}

	coords, err := e.geocoder.Geocode(ctx, query)
	if err != nil {
		log.WithError(err).Warn("Geocoding failed, continuing without coordinates")
		return
	}
	if len(coords) == 0 {
		log.WithField("query", query).Warn("Geocoder returned no results")
		return
	}
	loc.SetCoordinates(coords[0])
	log.WithFields(logrus.Fields{"lat": coords[0].Latitude, "lon": coords[0].Longitude}).Debug("Coordinates resolved")
}

// uploadAttachments загружает локальные вложения. Успешные заменяются удаленным URL,
// но если не загрузилось хотя бы одно, попытка завершается ErrAttachmentUpload.
func (e *Engine) uploadAttachments(ctx context.Context, p *models.Occurrence) error {
	var (
		sources   []upload.Source
		positions []int
	)
	for i, a := range p.Attachments {
		if !a.NeedsUpload() {
			continue
		}
		sources = append(sources, upload.Source{
			Reference: a.Source(),
			Name:      e.attachmentName(a, i),
			MimeHint:  mimeHint(a),
		})
		positions = append(positions, i)
	}
	if len(sources) == 0 {
		return nil
	}

	results := e.uploads.Run(ctx, sources)
	for _, r := range results {
		a := &p.Attachments[positions[r.Index]]
		a.URL = r.RemoteURL
		a.URI = ""
		a.MimeType = ""
		a.Name = r.Name
		a.Extension = r.Extension
		if a.Kind == "" {
			a.Kind = r.Kind
		}
	}

	if failed := len(sources) - len(results); failed > 0 {
		return fmt.Errorf("engine: %d of %d attachments not uploaded: %w", failed, len(sources), models.ErrAttachmentUpload)
	}
	return nil
}

// uploadSignature загружает подпись из data URL и добавляет ее вложением
func (e *Engine) uploadSignature(ctx context.Context, p *models.Occurrence) error {
	if p.SignatureDataURL == "" {
		return nil
	}

	base := p.Number
	if base == "" || p.IsTemporary() {
		base = signatureFallback
	}
	name := base + signatureSuffix

	results := e.uploads.Run(ctx, []upload.Source{{
		Reference: p.SignatureDataURL,
		Name:      name,
		MimeHint:  "image/png",
	}})
	// Встроенная подпись не отправляется повторно при любом исходе
	p.SignatureDataURL = ""
	if len(results) == 0 {
		return fmt.Errorf("engine: signature not uploaded: %w", models.ErrAttachmentUpload)
	}

	p.Attachments = append(p.Attachments, models.Attachment{
		URL:         results[0].RemoteURL,
		Name:        name,
		Kind:        models.KindSignature,
		Extension:   results[0].Extension,
		Description: models.SignatureDescription,
	})
	return nil
}

func (e *Engine) attachmentName(a models.Attachment, index int) string {
	if a.Name != "" {
		return a.Name
	}
	src := a.Source()
	if !strings.HasPrefix(src, "data:") {
		if base := path.Base(src); base != "." && base != "/" && path.Ext(base) != "" {
			return base
		}
	}
	return fmt.Sprintf("anexo_%d_%d", e.now().UnixMilli(), index)
}

func mimeHint(a models.Attachment) string {
	switch {
	case a.MimeType != "":
		return a.MimeType
	case a.Kind == models.KindVideo:
		return "video/mp4"
	default:
		return ""
	}
}

// submitCreate создает запись, ее vítimas и equipe, затем сверяет кеши и очередь
func (e *Engine) submitCreate(ctx context.Context, action models.QueuedAction, p models.Occurrence, log *logrus.Entry) error {
	tempID := p.ID

	body := submissionBody(p)
	body.ID = 0
	body.Victims = nil
	body.TeamUserIDs = nil

	created, err := e.submitter.CreateOccurrence(ctx, body)
	if err != nil {
		return fmt.Errorf("engine: create occurrence: %w", err)
	}
	if created.ID <= 0 {
		return fmt.Errorf("engine: create returned id %d: %w", created.ID, models.ErrServerRejection)
	}
	log = log.WithField("server_id", created.ID)

	record := canonicalRecord(p, created)
	victims := e.submitChildren(ctx, created.ID, p.Victims, p.TeamUserIDs, log)
	if len(victims) > 0 {
		record.Victims = victims
	}

	number := p.Number
	if number == "" && tempID < 0 {
		number = fmt.Sprintf("%s%d", models.TempNumberPrefix, -tempID)
	}
	if err := e.cache.Reconcile(ctx, tempID, number, p.OwnerID(), record); err != nil {
		log.WithError(err).Warn("Failed to reconcile occurrence caches")
	}

	e.complete(ctx, action, tempID, created.ID, log)
	return nil
}

// submitUpdate отправляет патч и создает vítimas без id
func (e *Engine) submitUpdate(ctx context.Context, action models.QueuedAction, p models.Occurrence, log *logrus.Entry) error {
	id := p.ID
	if id <= 0 {
		return fmt.Errorf("engine: update target %d is not created yet", id)
	}

	body := submissionBody(p)
	var fresh []models.Victim
	kept := body.Victims[:0]
	for _, v := range body.Victims {
		if v.ID == 0 {
			fresh = append(fresh, v)
			continue
		}
		kept = append(kept, v)
	}
	body.Victims = kept

	if err := e.submitter.UpdateOccurrence(ctx, id, body); err != nil {
		return fmt.Errorf("engine: update occurrence %d: %w", id, err)
	}
	e.submitChildren(ctx, id, fresh, nil, log)

	e.complete(ctx, action, 0, id, log)
	return nil
}

// submitChildren создает vítimas и участников equipe параллельно.
// Ошибки только логируются. Возвращает vítimas с присвоенными id.
func (e *Engine) submitChildren(ctx context.Context, occurrenceID int64, victims []models.Victim, team []int64, log *logrus.Entry) []models.Victim {
	if len(victims) == 0 && len(team) == 0 {
		return nil
	}

	out := make([]models.Victim, len(victims))
	var g errgroup.Group
	g.SetLimit(childLimit)

	for i, v := range victims {
		out[i] = v.Clone()
		out[i].OccurrenceID = occurrenceID
		g.Go(func() error {
			id, err := e.submitter.CreateVictim(ctx, out[i])
			if err != nil {
				log.WithError(err).WithField("victim", i).Warn("Failed to create victim")
				return nil
			}
			out[i].ID = id
			return nil
		})
	}
	for _, userID := range team {
		g.Go(func() error {
			if err := e.submitter.AddTeamMember(ctx, occurrenceID, userID); err != nil {
				log.WithError(err).WithField("user_id", userID).Warn("Failed to add team member")
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// submissionBody убирает из нагрузки поля, известные только клиенту
func submissionBody(p models.Occurrence) models.Occurrence {
	b := p.Clone()
	b.SignatureDataURL = ""
	for i := range b.Attachments {
		b.Attachments[i].URI = ""
		b.Attachments[i].MimeType = ""
	}
	return b
}

// canonicalRecord накладывает ответ сервера на отправленную запись.
// Пустые поля ответа не затирают отправленные.
func canonicalRecord(sent, created models.Occurrence) models.Occurrence {
	record := submissionBody(sent)
	if raw, err := json.Marshal(created); err == nil {
		_ = json.Unmarshal(raw, &record)
	}
	record.ID = created.ID
	return record
}
