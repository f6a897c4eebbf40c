// Package fsio document shapes and sentinel errors.
package fsio

import "errors"

// ErrBadDocument indicates the document cannot be decoded into a valid
// flowsheet.
var ErrBadDocument = errors.New("fsio: bad document")

// ErrUnknownKind indicates an equipment kind outside the vocabulary.
var ErrUnknownKind = errors.New("fsio: unknown equipment kind")

// Document is the serialized form of a flowsheet.
type Document struct {
	Components []ComponentDoc `yaml:"components,omitempty" json:"components,omitempty"`
	Equipment  []EquipmentDoc `yaml:"equipment" json:"equipment"`
	Streams    []StreamDoc    `yaml:"streams" json:"streams"`
}

// ComponentDoc is one library entry.
type ComponentDoc struct {
	ID           string  `yaml:"id" json:"id"`
	Symbol       string  `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Density      float64 `yaml:"density,omitempty" json:"density,omitempty"`
	DefaultGrade float64 `yaml:"default_grade,omitempty" json:"default_grade,omitempty"`
	Active       bool    `yaml:"active" json:"active"`
}

// EquipmentDoc is one circuit node. Exactly the block matching Kind is
// read; the others are ignored.
type EquipmentDoc struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Kind string `yaml:"kind" json:"kind"`

	Crusher   *CrusherDoc   `yaml:"crusher,omitempty" json:"crusher,omitempty"`
	Mill      *MillDoc      `yaml:"mill,omitempty" json:"mill,omitempty"`
	Mixer     *MixerDoc     `yaml:"mixer,omitempty" json:"mixer,omitempty"`
	Flotation *FlotationDoc `yaml:"flotation,omitempty" json:"flotation,omitempty"`
}

// CrusherDoc mirrors core.CrusherParams.
type CrusherDoc struct {
	TargetSize float64 `yaml:"target_size,omitempty" json:"target_size,omitempty"`
	Power      float64 `yaml:"power,omitempty" json:"power,omitempty"`
}

// MillDoc mirrors core.MillParams.
type MillDoc struct {
	TargetSize    float64 `yaml:"target_size,omitempty" json:"target_size,omitempty"`
	Power         float64 `yaml:"power,omitempty" json:"power,omitempty"`
	BondWorkIndex float64 `yaml:"bond_work_index,omitempty" json:"bond_work_index,omitempty"`
}

// MixerDoc mirrors core.MixerParams.
type MixerDoc struct {
	SplitFractions []float64 `yaml:"split_fractions,omitempty" json:"split_fractions,omitempty"`
}

// FlotationDoc mirrors core.FlotationParams.
type FlotationDoc struct {
	Recovery          float64            `yaml:"recovery,omitempty" json:"recovery,omitempty"`
	ComponentRecovery map[string]float64 `yaml:"component_recovery,omitempty" json:"component_recovery,omitempty"`
	MassPull          float64            `yaml:"mass_pull,omitempty" json:"mass_pull,omitempty"`
	ConcentrateSolids float64            `yaml:"concentrate_solids,omitempty" json:"concentrate_solids,omitempty"`
	TailingSolids     float64            `yaml:"tailing_solids,omitempty" json:"tailing_solids,omitempty"`
}

// StreamDoc is one stream. Empty from/to mark the circuit boundary.
type StreamDoc struct {
	ID            string             `yaml:"id" json:"id"`
	From          string             `yaml:"from,omitempty" json:"from,omitempty"`
	To            string             `yaml:"to,omitempty" json:"to,omitempty"`
	FlowRate      float64            `yaml:"flow_rate,omitempty" json:"flow_rate,omitempty"`
	SolidsPercent float64            `yaml:"solids_percent,omitempty" json:"solids_percent,omitempty"`
	Density       float64            `yaml:"density,omitempty" json:"density,omitempty"`
	ParticleSize  float64            `yaml:"particle_size,omitempty" json:"particle_size,omitempty"`
	Grades        map[string]float64 `yaml:"grades,omitempty" json:"grades,omitempty"`
}
