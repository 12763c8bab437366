// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SocialMedia is the JSONB column for a user's social links.
type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
}

// Empty reports whether no link is set.
func (sm SocialMedia) Empty() bool {
	return sm.Facebook == "" && sm.Instagram == "" && sm.LinkedIn == "" && sm.Twitter == ""
}

type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

// Scan unmarshals a JSON column into the slice.
func (s *StringSlice) Scan(src interface{}) error {
	b, err := jsonBytes("StringSlice", src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, s)
}

func (StringSlice) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

func (sm SocialMedia) Value() (driver.Value, error) {
	b, err := json.Marshal(sm)
	return string(b), err
}

// Scan unmarshals JSONB bytes into the struct.
func (sm *SocialMedia) Scan(src interface{}) error {
	b, err := jsonBytes("SocialMedia", src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, sm)
}

func (SocialMedia) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

// jsonBytes normalizes what drivers hand back for JSON columns: postgres
// returns []byte, sqlite may return string.
func jsonBytes(typeName string, src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%s: expected []byte or string, got %T", typeName, src)
	}
}

func jsonColumnType(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	default:
		return "JSON"
	}
}
