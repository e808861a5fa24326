package models

import "gorm.io/datatypes"

// Document is the storage row backing every collection. The document
// id is both the row key and, redundantly, the "id" field inside Data;
// the two are kept in agreement by construction at creation time.
type Document struct {
	Collection string            `gorm:"primaryKey;size:64"`
	DocID      string            `gorm:"primaryKey;size:64;column:doc_id"`
	Data       datatypes.JSONMap `gorm:"not null"`
}
