package model

import (
	"time"

	"hotel/shared/timezone"
)

// Metadata is the audit block shared by every table. created_by and modified_by
// hold a user id, or "system" for writes made without a staff token.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// NewMetadata stamps a new row. Both timestamps share one instant.
func NewMetadata(actor string) Metadata {
	stamp := timezone.Now()

	return Metadata{
		CreatedAt:  stamp,
		ModifiedAt: stamp,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// Touch records a modification by actor.
func (m *Metadata) Touch(actor string) {
	m.ModifiedAt = timezone.Now()
	m.ModifiedBy = actor
}
