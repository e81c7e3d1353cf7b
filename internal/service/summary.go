package service

import (
	"context"
	"strings"

	"github.com/shenikar/field_sync/internal/models"
)

const maxSummaryParts = 3

// buildSummary строит однострочное описание операции для экрана синхронизации
func buildSummary(ctx context.Context, names NameResolver, kind models.ActionKind, p models.Occurrence) string {
	address := ""
	if p.Location != nil {
		address = p.Location.Address()
	}
	category := refName(ctx, p.Category, p.CategoryID, names.CategoryName)

	if kind == models.ActionCreate {
		if address != "" {
			return address
		}
		if category != "" {
			return "Cadastro: " + category
		}
		return "Cadastro (offline)"
	}

	parts := make([]string, 0, 5)
	if p.Status != "" {
		parts = append(parts, "Status: "+p.Status)
	}
	if category != "" {
		parts = append(parts, "Natureza: "+category)
	}
	if group := refName(ctx, p.Group, p.GroupID, names.GroupName); group != "" {
		parts = append(parts, "Grupo: "+group)
	}
	if subgroup := refName(ctx, p.Subgroup, p.SubgroupID, names.SubgroupName); subgroup != "" {
		parts = append(parts, "Subgrupo: "+subgroup)
	}
	if address != "" {
		parts = append(parts, address)
	}
	if len(parts) == 0 {
		return "Edição"
	}
	if len(parts) > maxSummaryParts {
		parts = parts[:maxSummaryParts]
	}
	return strings.Join(parts, " • ")
}

func refName(ctx context.Context, ref *models.Ref, id *int64, resolve func(context.Context, int64) string) string {
	if ref != nil && ref.Name != "" {
		return ref.Name
	}
	switch {
	case id != nil:
		return resolve(ctx, *id)
	case ref != nil && ref.ID != 0:
		return resolve(ctx, ref.ID)
	}
	return ""
}
