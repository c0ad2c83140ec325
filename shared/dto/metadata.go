package dto

import (
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

// Metadata is the audit block of a response, rendered in the hotel's timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = formatStamp(source.CreatedAt)
	m.ModifiedAt = formatStamp(source.ModifiedAt)
	m.CreatedBy = source.CreatedBy
	m.ModifiedBy = source.ModifiedBy
}

// formatStamp leaves unset timestamps empty instead of rendering year one.
func formatStamp(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
