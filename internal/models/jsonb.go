package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// LocalizedText maps a language code to text, stored as a JSON document
// such as {"en": "Moscow", "ru": "Москва"}.
type LocalizedText map[string]string

// In returns the text for lang, falling back to English and then to the
// first language in alphabetical order.
func (t LocalizedText) In(lang string) string {
	if v, ok := t[lang]; ok {
		return v
	}
	if v, ok := t["en"]; ok {
		return v
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return t[keys[0]]
}

// Scan implements the sql.Scanner interface for LocalizedText
func (t *LocalizedText) Scan(value interface{}) error {
	m, err := scanJSONMap(value)
	if err != nil {
		return fmt.Errorf("LocalizedText: %w", err)
	}
	*t = m
	return nil
}

// Value implements the driver.Valuer interface for LocalizedText
func (t LocalizedText) Value() (driver.Value, error) {
	return jsonValue(t)
}

// ContactData holds optional passenger contacts (phone, email).
type ContactData map[string]string

// Scan implements the sql.Scanner interface for ContactData
func (c *ContactData) Scan(value interface{}) error {
	m, err := scanJSONMap(value)
	if err != nil {
		return fmt.Errorf("ContactData: %w", err)
	}
	*c = m
	return nil
}

// Value implements the driver.Valuer interface for ContactData
func (c ContactData) Value() (driver.Value, error) {
	return jsonValue(c)
}

// scanJSONMap accepts both []byte (lib/pq) and string (sqlite) documents.
func scanJSONMap(value interface{}) (map[string]string, error) {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("cannot scan type %T", value)
	}

	result := make(map[string]string)
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// jsonValue encodes as a string so lib/pq sends it as text, which jsonb
// accepts.
func jsonValue(m map[string]string) (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
