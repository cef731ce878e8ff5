package setting

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ValueType defines the type of a setting value
type ValueType string

const (
	ValueTypeString ValueType = "string"
	ValueTypeInt    ValueType = "int"
	ValueTypeBool   ValueType = "bool"
	ValueTypeJSON   ValueType = "json"
)

// SystemSetting represents one row of the flat (category, key, value)
// configuration table. The same table carries the SMTP transport settings
// and, on the legacy path, whole email templates serialized as JSON.
type SystemSetting struct {
	id          uint
	category    string
	key         string
	value       string
	valueType   ValueType
	description string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSystemSetting creates a new system setting
func NewSystemSetting(category, key string, valueType ValueType, description string) (*SystemSetting, error) {
	if category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	if !isValidValueType(valueType) {
		return nil, fmt.Errorf("invalid value type: %s", valueType)
	}

	now := time.Now().UTC()
	return &SystemSetting{
		category:    category,
		key:         key,
		valueType:   valueType,
		description: description,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSystemSetting reconstructs a SystemSetting from persistence layer
func ReconstructSystemSetting(
	id uint,
	category string,
	key string,
	value string,
	valueType ValueType,
	description string,
	version int,
	createdAt, updatedAt time.Time,
) *SystemSetting {
	return &SystemSetting{
		id:          id,
		category:    category,
		key:         key,
		value:       value,
		valueType:   valueType,
		description: description,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters
func (s *SystemSetting) ID() uint             { return s.id }
func (s *SystemSetting) Category() string     { return s.category }
func (s *SystemSetting) Key() string          { return s.key }
func (s *SystemSetting) Value() string        { return s.value }
func (s *SystemSetting) ValueType() ValueType { return s.valueType }
func (s *SystemSetting) Description() string  { return s.description }
func (s *SystemSetting) Version() int         { return s.version }
func (s *SystemSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID sets the setting ID (only for persistence layer use)
func (s *SystemSetting) SetID(id uint) {
	s.id = id
}

// HasValue checks if the setting has a non-empty value
func (s *SystemSetting) HasValue() bool {
	return s.value != ""
}

// GetStringValue returns the value as a string
func (s *SystemSetting) GetStringValue() string {
	return s.value
}

// GetIntValue returns the value as an integer
func (s *SystemSetting) GetIntValue() (int, error) {
	if s.value == "" {
		return 0, nil
	}
	return strconv.Atoi(s.value)
}

// GetBoolValue returns the value as a boolean
func (s *SystemSetting) GetBoolValue() (bool, error) {
	if s.value == "" {
		return false, nil
	}
	return strconv.ParseBool(s.value)
}

// GetJSONValue unmarshals the value into the provided target
func (s *SystemSetting) GetJSONValue(target interface{}) error {
	if s.value == "" {
		return nil
	}
	return json.Unmarshal([]byte(s.value), target)
}

// SetStringValue sets the value as a string
func (s *SystemSetting) SetStringValue(value string) error {
	if s.valueType != ValueTypeString {
		return fmt.Errorf("value type mismatch: expected %s, got string", s.valueType)
	}
	s.value = value
	s.version++
	s.updatedAt = time.Now().UTC()
	return nil
}

// SetIntValue sets the value as an integer
func (s *SystemSetting) SetIntValue(value int) error {
	if s.valueType != ValueTypeInt {
		return fmt.Errorf("value type mismatch: expected %s, got int", s.valueType)
	}
	s.value = strconv.Itoa(value)
	s.version++
	s.updatedAt = time.Now().UTC()
	return nil
}

// SetBoolValue sets the value as a boolean
func (s *SystemSetting) SetBoolValue(value bool) error {
	if s.valueType != ValueTypeBool {
		return fmt.Errorf("value type mismatch: expected %s, got bool", s.valueType)
	}
	s.value = strconv.FormatBool(value)
	s.version++
	s.updatedAt = time.Now().UTC()
	return nil
}

// SetJSONValue sets the value as JSON
func (s *SystemSetting) SetJSONValue(value interface{}) error {
	if s.valueType != ValueTypeJSON {
		return fmt.Errorf("value type mismatch: expected %s, got json", s.valueType)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON value: %w", err)
	}
	s.value = string(data)
	s.version++
	s.updatedAt = time.Now().UTC()
	return nil
}

// isValidValueType checks if the value type is valid
func isValidValueType(vt ValueType) bool {
	switch vt {
	case ValueTypeString, ValueTypeInt, ValueTypeBool, ValueTypeJSON:
		return true
	default:
		return false
	}
}
