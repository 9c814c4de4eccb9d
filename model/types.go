package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Label is a key/value attribute attached to a transaction line item
type Label struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Labels ...
type Labels []Label

// Contains ...
func (l Labels) Contains(label Label) bool {
	for _, e := range l {
		if e == label {
			return true
		}
	}
	return false
}

// ContainsAny ...
func (l Labels) ContainsAny(others Labels) bool {
	for _, o := range others {
		if l.Contains(o) {
			return true
		}
	}
	return false
}

// Value ...
func (l Labels) Value() (driver.Value, error) {
	return marshalJSONColumn(l)
}

// Scan ...
func (l *Labels) Scan(src interface{}) error {
	return unmarshalJSONColumn(src, l)
}

// StringList is stored as a JSON array column
type StringList []string

// Contains ...
func (s StringList) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Intersects ...
func (s StringList) Intersects(others []string) bool {
	for _, o := range others {
		if s.Contains(o) {
			return true
		}
	}
	return false
}

// Value ...
func (s StringList) Value() (driver.Value, error) {
	return marshalJSONColumn(s)
}

// Scan ...
func (s *StringList) Scan(src interface{}) error {
	return unmarshalJSONColumn(src, s)
}

func marshalJSONColumn(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func unmarshalJSONColumn(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dest)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("model: unsupported json column type")
	}
}

// Photo references a stored image blob
type Photo struct {
	Path         string `json:"path"`
	OriginalName string `json:"originalName"`
	Mime         string `json:"mime"`
}

// NullPhoto ...
type NullPhoto struct {
	Valid bool
	Photo Photo
}

// Value ...
func (p NullPhoto) Value() (driver.Value, error) {
	if !p.Valid {
		return nil, nil
	}
	return marshalJSONColumn(p.Photo)
}

// Scan ...
func (p *NullPhoto) Scan(src interface{}) error {
	if src == nil {
		*p = NullPhoto{}
		return nil
	}
	var photo Photo
	if err := unmarshalJSONColumn(src, &photo); err != nil {
		return err
	}
	*p = NullPhoto{Valid: photo.Path != "", Photo: photo}
	return nil
}
