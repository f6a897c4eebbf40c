// This file declares MineralComponent, EquipmentKind, the kind-specific
// parameter union, Equipment, Stream, Flowsheet, and sentinel errors.
package core

import "errors"

// Sentinel errors for core flowsheet operations.
var (
	// ErrNilFlowsheet indicates a nil *Flowsheet was passed to a helper.
	ErrNilFlowsheet = errors.New("core: flowsheet is nil")

	// ErrStreamNotFound indicates a stream ID lookup failed.
	ErrStreamNotFound = errors.New("core: stream not found")

	// ErrUnknownEquipment indicates a stream references an equipment ID
	// that is not part of the flowsheet.
	ErrUnknownEquipment = errors.New("core: unknown equipment")
)

// DefaultSolidsDensity is assumed (t/m³) when a stream carries no density.
// Typical run-of-mine ore sits near 2.7.
const DefaultSolidsDensity = 2.7

// WaterDensity is the density of process water (t/m³).
const WaterDensity = 1.0

// MineralComponent is a tracked mineral species whose mass is balanced
// independently (e.g. hematite, quartz). Immutable during a run; only the
// external component library edits these.
type MineralComponent struct {
	// ID uniquely identifies the component within a flowsheet.
	ID string

	// Symbol is the display symbol (e.g. "Fe2O3").
	Symbol string

	// Density in t/m³.
	Density float64

	// DefaultGrade is the grade (%) assumed when a stream carries no assay.
	DefaultGrade float64

	// Active components participate in the balance; inactive ones are ignored.
	Active bool
}

// EquipmentKind enumerates the fixed set of circuit node types.
type EquipmentKind int

const (
	// KindUnknown behaves as a pure pass-through in transfer functions.
	KindUnknown EquipmentKind = iota
	// KindCrusher is a size-reduction pass-through node.
	KindCrusher
	// KindMill is a size-reduction pass-through node (grinding).
	KindMill
	// KindMixer sums its inputs and splits across its outputs.
	KindMixer
	// KindRougher is a first-stage flotation cell.
	KindRougher
	// KindCleaner is a second-stage flotation cell.
	KindCleaner
	// KindRecleaner is a third-stage flotation cell.
	KindRecleaner
)

// String returns the lower-case kind name used in documents and reports.
func (k EquipmentKind) String() string {
	switch k {
	case KindCrusher:
		return "crusher"
	case KindMill:
		return "mill"
	case KindMixer:
		return "mixer"
	case KindRougher:
		return "rougher"
	case KindCleaner:
		return "cleaner"
	case KindRecleaner:
		return "recleaner"
	default:
		return "unknown"
	}
}

// IsFlotation reports whether the kind is a flotation stage.
func (k EquipmentKind) IsFlotation() bool {
	return k == KindRougher || k == KindCleaner || k == KindRecleaner
}

// IsComminution reports whether the kind reduces particle size.
func (k EquipmentKind) IsComminution() bool {
	return k == KindCrusher || k == KindMill
}

// EquipmentParams is the tagged union of kind-specific parameters.
// Exactly one concrete type applies per Equipment; a nil Params means
// "all defaults" for the kind.
type EquipmentParams interface {
	isEquipmentParams()
}

// CrusherParams configures a crusher.
type CrusherParams struct {
	// TargetSize is the product particle size (mm); 0 means halve the feed size.
	TargetSize float64
	// Power is the installed power (kW), reported in simulation results.
	Power float64
}

func (CrusherParams) isEquipmentParams() {}

// MillParams configures a grinding mill.
type MillParams struct {
	// TargetSize is the product particle size (mm); 0 means halve the feed size.
	TargetSize float64
	// Power is the installed power (kW).
	Power float64
	// BondWorkIndex (kWh/t) feeds the Bond energy estimate; 0 disables it.
	BondWorkIndex float64
}

func (MillParams) isEquipmentParams() {}

// MixerParams configures a mixer/splitter.
type MixerParams struct {
	// SplitFractions assigns the combined feed across output ports.
	// When empty or mismatched against the port count, the split is equal.
	SplitFractions []float64
}

func (MixerParams) isEquipmentParams() {}

// FlotationParams configures a rougher, cleaner, or recleaner cell.
type FlotationParams struct {
	// Recovery is the scalar recovery (%) applied to every component
	// without an explicit override. 0 means use the engine default.
	Recovery float64
	// ComponentRecovery overrides recovery (%) per component ID.
	ComponentRecovery map[string]float64
	// MassPull is the bulk mass fraction reporting to concentrate (0..1);
	// 0 means use the engine default.
	MassPull float64
	// ConcentrateSolids / TailingSolids fix the solids percent of the two
	// product classes; 0 means use the engine defaults.
	ConcentrateSolids float64
	TailingSolids     float64
}

func (FlotationParams) isEquipmentParams() {}

// Equipment is a node in the circuit graph. Created and edited externally;
// the engine only reads it.
type Equipment struct {
	// ID uniquely identifies the node within its flowsheet.
	ID string

	// Name is a free-form display label.
	Name string

	// Kind selects the transfer function.
	Kind EquipmentKind

	// Params holds kind-specific parameters; nil means all defaults.
	Params EquipmentParams
}

// Stream is a directed flow line between circuit nodes or the circuit
// boundary. An empty From marks a feed into the circuit; an empty To marks
// a product leaving it. Streams are mutated in place by propagation and
// closure, always on the run's private clone.
type Stream struct {
	// ID uniquely identifies the stream.
	ID string

	// From / To are equipment IDs; empty means circuit boundary.
	From string
	To   string

	// FlowRate is total (pulp) mass flow, t/h.
	FlowRate float64

	// SolidsPercent is the solids mass fraction of the pulp, %.
	SolidsPercent float64

	// Density of the solids, t/m³.
	Density float64

	// ParticleSize is the characteristic particle size (e.g. P80), mm.
	ParticleSize float64

	// Grades maps component ID → grade (% mass fraction of the solids).
	Grades map[string]float64
}

// Flowsheet is a snapshot of a circuit: equipment, streams, and the
// component library. The engine treats it as a value; see CloneStreams.
type Flowsheet struct {
	Equipment  []*Equipment
	Streams    []*Stream
	Components []*MineralComponent
}
