package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// PageContent is an opaque per-page JSON document managed by the CMS. The
// server never interprets it; unknown pages fall back to compiled-in
// defaults returned verbatim.
type PageContent struct {
	ID        string          `db:"id" json:"id"`
	Page      string          `db:"page" json:"page"`
	Content   RawJSONDocument `db:"content" json:"content"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

// RawJSONDocument round-trips arbitrary JSON between the API and a jsonb
// column without re-encoding it.
type RawJSONDocument json.RawMessage

func (d RawJSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

func (d *RawJSONDocument) Scan(src interface{}) error {
	if src == nil {
		*d = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		*d = append((*d)[:0], v...)
	case string:
		*d = RawJSONDocument(v)
	}
	return nil
}

func (d RawJSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *RawJSONDocument) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}
