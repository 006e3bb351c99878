// Package workflow holds the translation phase model and the rules that move
// a project through it.
//
// The phase set is closed: a Phase outside the canonical sequence can only be
// produced by a programming error, and every accessor that needs a real phase
// panics on one. External input goes through ParsePhase and ParseStatus,
// which return errors instead.
package workflow

import (
	"database/sql/driver"
	"fmt"
	"strings"

	apperrors "translationflow/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Phase is one of the four fixed stages of a translation project.
type Phase uint8

const (
	SubtitleTranslation Phase = iota + 1
	TranslationProofreading
	AudioProduction
	AudioReview
)

// PhaseCount is the size of the canonical sequence.
const PhaseCount = 4

type phaseDef struct {
	key         string
	label       string
	description string
}

var phaseDefs = [PhaseCount]phaseDef{
	{"subtitle_translation", "Subtitle Translation", "Translate subtitles from source language to target languages"},
	{"translation_proofreading", "Translation Proofreading", "Review and finalize translations"},
	{"audio_production", "Audio Production", "Record audio for the translated content"},
	{"audio_review", "Audio Review", "Review audio recordings and finalize"},
}

// Sequence returns the canonical phase order. The slice is a fresh copy.
func Sequence() []Phase {
	return []Phase{SubtitleTranslation, TranslationProofreading, AudioProduction, AudioReview}
}

// First is the phase every new project starts at.
func First() Phase { return SubtitleTranslation }

// IsValid reports whether p belongs to the canonical sequence.
func (p Phase) IsValid() bool {
	return p >= SubtitleTranslation && p <= AudioReview
}

// Index is the zero-based position of p in the sequence.
func (p Phase) Index() int {
	if !p.IsValid() {
		panic(fmt.Sprintf("workflow: invalid phase %d", uint8(p)))
	}
	return int(p) - 1
}

func (p Phase) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
	return phaseDefs[p.Index()].key
}

// Label is the human-readable phase name.
func (p Phase) Label() string { return phaseDefs[p.Index()].label }

// Description explains what happens during the phase.
func (p Phase) Description() string { return phaseDefs[p.Index()].description }

// Next returns the following phase, or false for the terminal phase.
func (p Phase) Next() (Phase, bool) {
	if p.Index() == PhaseCount-1 {
		return 0, false
	}
	return p + 1, true
}

// Previous returns the preceding phase, or false for the first phase.
func (p Phase) Previous() (Phase, bool) {
	if p.Index() == 0 {
		return 0, false
	}
	return p - 1, true
}

// ParsePhase converts the snake_case key into a Phase.
func ParsePhase(s string) (Phase, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, def := range phaseDefs {
		if def.key == key {
			return Phase(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidPhase, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidPhase, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value stores the phase key in SQL columns.
func (p Phase) Value() (driver.Value, error) {
	text, err := p.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// Scan reads a phase key from SQL columns.
func (p *Phase) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", apperrors.ErrInvalidPhase, src)
	}
}

// MarshalBSONValue stores the phase key in MongoDB documents.
func (p Phase) MarshalBSONValue() (bsontype.Type, []byte, error) {
	text, err := p.MarshalText()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(string(text))
}

// UnmarshalBSONValue reads a phase key from MongoDB documents.
func (p *Phase) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := bson.RawValue{Type: t, Value: data}.StringValueOK()
	if !ok {
		return fmt.Errorf("%w: bson type %s", apperrors.ErrInvalidPhase, t)
	}
	return p.UnmarshalText([]byte(s))
}

// PhaseInfo is the static description of one phase.
type PhaseInfo struct {
	Phase       Phase  `json:"phase"`
	Order       int    `json:"order"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Next        *Phase `json:"next,omitempty"`
}

// Catalog describes every phase in sequence order.
func Catalog() []PhaseInfo {
	out := make([]PhaseInfo, 0, PhaseCount)
	for _, p := range Sequence() {
		info := PhaseInfo{
			Phase:       p,
			Order:       p.Index() + 1,
			Label:       p.Label(),
			Description: p.Description(),
		}
		if next, ok := p.Next(); ok {
			info.Next = &next
		}
		out = append(out, info)
	}
	return out
}
