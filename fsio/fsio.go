package fsio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/minproc/flowbal/core"
)

// Load reads a flowsheet document from disk, choosing the codec by
// extension: .json decodes as JSON, anything else as YAML.
func Load(path string) (*core.Flowsheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsio: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(f)
	}

	return Parse(f)
}

// Parse decodes a YAML document.
func Parse(r io.Reader) (*core.Flowsheet, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return fromDocument(&doc)
}

// ParseJSON decodes a JSON document.
func ParseJSON(r io.Reader) (*core.Flowsheet, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return fromDocument(&doc)
}

// Save writes a flowsheet to disk, choosing the codec by extension like
// Load.
func Save(path string, fs *core.Flowsheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fsio: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return EncodeJSON(f, fs)
	}

	return Encode(f, fs)
}

// Encode writes the YAML form.
func Encode(w io.Writer, fs *core.Flowsheet) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(toDocument(fs)); err != nil {
		return fmt.Errorf("fsio: %w", err)
	}

	return nil
}

// EncodeJSON writes the indented JSON form.
func EncodeJSON(w io.Writer, fs *core.Flowsheet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(fs)); err != nil {
		return fmt.Errorf("fsio: %w", err)
	}

	return nil
}

// fromDocument validates and converts a decoded document.
func fromDocument(doc *Document) (*core.Flowsheet, error) {
	fs := &core.Flowsheet{}

	seen := make(map[string]bool)
	for _, c := range doc.Components {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: component without id", ErrBadDocument)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate component %q", ErrBadDocument, c.ID)
		}
		seen[c.ID] = true
		fs.Components = append(fs.Components, &core.MineralComponent{
			ID:           c.ID,
			Symbol:       c.Symbol,
			Density:      c.Density,
			DefaultGrade: c.DefaultGrade,
			Active:       c.Active,
		})
	}

	units := make(map[string]bool)
	for _, e := range doc.Equipment {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: equipment without id", ErrBadDocument)
		}
		if units[e.ID] {
			return nil, fmt.Errorf("%w: duplicate equipment %q", ErrBadDocument, e.ID)
		}
		units[e.ID] = true

		kind, err := parseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("equipment %q: %w", e.ID, err)
		}
		fs.Equipment = append(fs.Equipment, &core.Equipment{
			ID:     e.ID,
			Name:   e.Name,
			Kind:   kind,
			Params: paramsFor(kind, &e),
		})
	}

	streams := make(map[string]bool)
	for _, s := range doc.Streams {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: stream without id", ErrBadDocument)
		}
		if streams[s.ID] {
			return nil, fmt.Errorf("%w: duplicate stream %q", ErrBadDocument, s.ID)
		}
		streams[s.ID] = true
		if s.From != "" && !units[s.From] {
			return nil, fmt.Errorf("%w: stream %q from unknown equipment %q", ErrBadDocument, s.ID, s.From)
		}
		if s.To != "" && !units[s.To] {
			return nil, fmt.Errorf("%w: stream %q to unknown equipment %q", ErrBadDocument, s.ID, s.To)
		}
		fs.Streams = append(fs.Streams, &core.Stream{
			ID:            s.ID,
			From:          s.From,
			To:            s.To,
			FlowRate:      s.FlowRate,
			SolidsPercent: s.SolidsPercent,
			Density:       s.Density,
			ParticleSize:  s.ParticleSize,
			Grades:        s.Grades,
		})
	}

	return fs, nil
}

// paramsFor picks the block matching the kind; absent blocks mean all
// defaults (nil Params).
func paramsFor(kind core.EquipmentKind, e *EquipmentDoc) core.EquipmentParams {
	switch {
	case kind == core.KindCrusher && e.Crusher != nil:
		return core.CrusherParams{TargetSize: e.Crusher.TargetSize, Power: e.Crusher.Power}
	case kind == core.KindMill && e.Mill != nil:
		return core.MillParams{
			TargetSize:    e.Mill.TargetSize,
			Power:         e.Mill.Power,
			BondWorkIndex: e.Mill.BondWorkIndex,
		}
	case kind == core.KindMixer && e.Mixer != nil:
		return core.MixerParams{SplitFractions: e.Mixer.SplitFractions}
	case kind.IsFlotation() && e.Flotation != nil:
		return core.FlotationParams{
			Recovery:          e.Flotation.Recovery,
			ComponentRecovery: e.Flotation.ComponentRecovery,
			MassPull:          e.Flotation.MassPull,
			ConcentrateSolids: e.Flotation.ConcentrateSolids,
			TailingSolids:     e.Flotation.TailingSolids,
		}
	default:
		return nil
	}
}

// parseKind maps the document vocabulary onto EquipmentKind.
func parseKind(s string) (core.EquipmentKind, error) {
	switch strings.ToLower(s) {
	case "crusher":
		return core.KindCrusher, nil
	case "mill":
		return core.KindMill, nil
	case "mixer":
		return core.KindMixer, nil
	case "rougher":
		return core.KindRougher, nil
	case "cleaner":
		return core.KindCleaner, nil
	case "recleaner":
		return core.KindRecleaner, nil
	default:
		return core.KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// toDocument converts a flowsheet back to its serialized shape.
func toDocument(fs *core.Flowsheet) *Document {
	doc := &Document{}
	if fs == nil {
		return doc
	}

	for _, c := range fs.Components {
		doc.Components = append(doc.Components, ComponentDoc{
			ID:           c.ID,
			Symbol:       c.Symbol,
			Density:      c.Density,
			DefaultGrade: c.DefaultGrade,
			Active:       c.Active,
		})
	}

	for _, e := range fs.Equipment {
		ed := EquipmentDoc{ID: e.ID, Name: e.Name, Kind: e.Kind.String()}
		switch p := e.Params.(type) {
		case core.CrusherParams:
			ed.Crusher = &CrusherDoc{TargetSize: p.TargetSize, Power: p.Power}
		case core.MillParams:
			ed.Mill = &MillDoc{TargetSize: p.TargetSize, Power: p.Power, BondWorkIndex: p.BondWorkIndex}
		case core.MixerParams:
			ed.Mixer = &MixerDoc{SplitFractions: p.SplitFractions}
		case core.FlotationParams:
			ed.Flotation = &FlotationDoc{
				Recovery:          p.Recovery,
				ComponentRecovery: p.ComponentRecovery,
				MassPull:          p.MassPull,
				ConcentrateSolids: p.ConcentrateSolids,
				TailingSolids:     p.TailingSolids,
			}
		}
		doc.Equipment = append(doc.Equipment, ed)
	}

	for _, s := range fs.Streams {
		doc.Streams = append(doc.Streams, StreamDoc{
			ID:            s.ID,
			From:          s.From,
			To:            s.To,
			FlowRate:      s.FlowRate,
			SolidsPercent: s.SolidsPercent,
			Density:       s.Density,
			ParticleSize:  s.ParticleSize,
			Grades:        s.Grades,
		})
	}

	return doc
}
