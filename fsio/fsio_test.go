package fsio_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minproc/flowbal/core"
	"github.com/minproc/flowbal/fsio"
	"github.com/minproc/flowbal/solve"
)

const circuitYAML = `
components:
  - id: fe
    symbol: Fe2O3
    density: 5.2
    default_grade: 35
    active: true
  - id: gangue
    symbol: SiO2
    density: 2.65
    default_grade: 65
    active: true
equipment:
  - id: cr1
    name: Primary crusher
    kind: crusher
    crusher: {target_size: 20, power: 250}
  - id: ml1
    kind: mill
    mill: {target_size: 0.1, bond_work_index: 12}
streams:
  - id: feed
    to: cr1
    flow_rate: 1000
    solids_percent: 80
    density: 2.7
    particle_size: 150
    grades: {fe: 35, gangue: 65}
  - id: mid
    from: cr1
    to: ml1
  - id: prod
    from: ml1
`

func TestParse_YAML(t *testing.T) {
	fs, err := fsio.Parse(strings.NewReader(circuitYAML))
	require.NoError(t, err)

	require.Len(t, fs.Components, 2)
	require.Len(t, fs.Equipment, 2)
	require.Len(t, fs.Streams, 3)

	cr := fs.EquipmentByID("cr1")
	require.NotNil(t, cr)
	assert.Equal(t, core.KindCrusher, cr.Kind)
	assert.Equal(t, "Primary crusher", cr.Name)
	cp, ok := cr.Params.(core.CrusherParams)
	require.True(t, ok, "crusher block decodes into CrusherParams")
	assert.Equal(t, 20.0, cp.TargetSize)
	assert.Equal(t, 250.0, cp.Power)

	ml := fs.EquipmentByID("ml1")
	require.NotNil(t, ml)
	mp, ok := ml.Params.(core.MillParams)
	require.True(t, ok)
	assert.Equal(t, 12.0, mp.BondWorkIndex)

	feed, err := fs.StreamByID("feed")
	require.NoError(t, err)
	assert.True(t, feed.IsFeed())
	assert.Equal(t, 35.0, feed.Grades["fe"])
}

func TestParse_ThenSolve(t *testing.T) {
	fs, err := fsio.Parse(strings.NewReader(circuitYAML))
	require.NoError(t, err)

	res, err := solve.Solve(fs)
	require.NoError(t, err)
	assert.True(t, res.Converged, "a loaded document goes straight into the solver")
}

func TestParse_BadSyntax(t *testing.T) {
	_, err := fsio.Parse(strings.NewReader(":\n  - ["))
	assert.ErrorIs(t, err, fsio.ErrBadDocument)
}

func TestParse_UnknownKind(t *testing.T) {
	doc := `
equipment:
  - id: x1
    kind: teleporter
streams: []
`
	_, err := fsio.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, fsio.ErrUnknownKind)
}

func TestParse_UnknownEndpoint(t *testing.T) {
	doc := `
equipment:
  - id: cr1
    kind: crusher
streams:
  - id: s1
    from: cr1
    to: nope
`
	_, err := fsio.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, fsio.ErrBadDocument)
}

func TestParse_DuplicateStreamID(t *testing.T) {
	doc := `
equipment:
  - id: cr1
    kind: crusher
streams:
  - id: s1
    to: cr1
  - id: s1
    from: cr1
`
	_, err := fsio.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, fsio.ErrBadDocument)
}

func TestParseJSON(t *testing.T) {
	doc := `{
  "equipment": [{"id": "mx1", "kind": "mixer", "mixer": {"split_fractions": [0.6, 0.4]}}],
  "streams": [{"id": "feed", "to": "mx1", "flow_rate": 100}]
}`
	fs, err := fsio.ParseJSON(strings.NewReader(doc))
	require.NoError(t, err)

	mx := fs.EquipmentByID("mx1")
	require.NotNil(t, mx)
	mp, ok := mx.Params.(core.MixerParams)
	require.True(t, ok)
	assert.Equal(t, []float64{0.6, 0.4}, mp.SplitFractions)
}

// TestSaveLoad_RoundTrip goes through both codecs on disk.
func TestSaveLoad_RoundTrip(t *testing.T) {
	orig, err := fsio.Parse(strings.NewReader(circuitYAML))
	require.NoError(t, err)

	for _, name := range []string{"circuit.yaml", "circuit.json"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, fsio.Save(path, orig), name)

		loaded, err := fsio.Load(path)
		require.NoError(t, err, name)

		require.Len(t, loaded.Streams, len(orig.Streams), name)
		feed, err := loaded.StreamByID("feed")
		require.NoError(t, err, name)
		assert.Equal(t, 1000.0, feed.FlowRate, name)
		assert.Equal(t, 35.0, feed.Grades["fe"], name)

		cr := loaded.EquipmentByID("cr1")
		require.NotNil(t, cr, name)
		assert.Equal(t, core.CrusherParams{TargetSize: 20, Power: 250}, cr.Params, name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := fsio.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
