package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbValue marshals v for storage in a jsonb column.
func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

// jsonbScan unmarshals a jsonb column into dst, tolerating NULL.
func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
