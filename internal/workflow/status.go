package workflow

import (
	"database/sql/driver"
	"fmt"
	"strings"

	apperrors "translationflow/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PhaseStatus is the progress marker of a single phase. Values are ordered by
// progression, so a smaller value is an earlier state.
type PhaseStatus uint8

const (
	NotStarted PhaseStatus = iota
	InProgress
	Completed
)

var statusDefs = [...]struct {
	key   string
	label string
}{
	{"not_started", "Not Started"},
	{"in_progress", "In Progress"},
	{"completed", "Completed"},
}

// Statuses lists every status in progression order.
func Statuses() []PhaseStatus {
	return []PhaseStatus{NotStarted, InProgress, Completed}
}

// IsValid reports whether s is one of the three statuses.
func (s PhaseStatus) IsValid() bool { return s <= Completed }

func (s PhaseStatus) mustIndex() int {
	if !s.IsValid() {
		panic(fmt.Sprintf("workflow: invalid phase status %d", uint8(s)))
	}
	return int(s)
}

func (s PhaseStatus) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("PhaseStatus(%d)", uint8(s))
	}
	return statusDefs[s].key
}

// Label is the human-readable status name.
func (s PhaseStatus) Label() string { return statusDefs[s.mustIndex()].label }

// ParseStatus converts the snake_case key into a PhaseStatus.
func ParseStatus(s string) (PhaseStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, def := range statusDefs {
		if def.key == key {
			return PhaseStatus(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, s)
}

// MarshalText implements encoding.TextMarshaler.
func (s PhaseStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PhaseStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value stores the status key in SQL columns.
func (s PhaseStatus) Value() (driver.Value, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan reads a status key from SQL columns.
func (s *PhaseStatus) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", apperrors.ErrInvalidStatus, src)
	}
}

// MarshalBSONValue stores the status key in MongoDB documents.
func (s PhaseStatus) MarshalBSONValue() (bsontype.Type, []byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(string(text))
}

// UnmarshalBSONValue reads a status key from MongoDB documents.
func (s *PhaseStatus) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	str, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: bson type %s", apperrors.ErrInvalidStatus, t)
	}
	return s.UnmarshalText([]byte(str))
}
