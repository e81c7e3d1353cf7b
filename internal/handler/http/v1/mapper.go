package v1

import "github.com/shenikar/field_sync/internal/models"

// ModelToActionResponse преобразует операцию очереди в DTO для ответа
func ModelToActionResponse(model models.QueuedAction) ActionResponse {
	return ActionResponse{
		ID:        model.ID,
		Type:      string(model.Kind),
		TargetID:  model.TargetID(),
		Summary:   model.Summary,
		Retries:   model.Retries,
		CreatedAt: model.CreatedAt,
		Payload:   model.Payload,
	}
}

// ModelsToActionResponses преобразует очередь в слайс DTO
func ModelsToActionResponses(queue []models.QueuedAction) []ActionResponse {
	responses := make([]ActionResponse, len(queue))
	for i, model := range queue {
		responses[i] = ModelToActionResponse(model)
	}
	return responses
}
