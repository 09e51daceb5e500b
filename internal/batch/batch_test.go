package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosdm/internal/linsolve"
	"github.com/alexiusacademia/gosdm/internal/structure"
)

const beamRequest = `{
  "spans": [
    {"length": 4, "elasticModulus": 200e6, "momentOfInertia": 1e-4, "loadType": "POINT_CENTER", "loadMagnitude": 10}
  ],
  "supports": [
    {"jointIndex": 0, "supportType": "PINNED"},
    {"jointIndex": 1, "supportType": "ROLLER"}
  ]
}`

const frameRequest = `
nodes:
  - {id: A, x: 0, y: 0, fixX: true, fixY: true, fixRotation: true}
  - {id: B, x: 4, y: 0}
members:
  - {id: M1, startNodeId: A, endNodeId: B, elasticModulus: 200000000, momentOfInertia: 0.0001, crossSectionArea: 0.01}
pointLoads:
  - {type: NODE_LOAD, targetId: B, magnitudeY: -10}
`

const mechanismRequest = `{
  "nodes": [
    {"id": "A", "x": 0, "y": 0, "fixX": true, "fixY": true},
    {"id": "B", "x": 4, "y": 0, "fixY": true}
  ],
  "members": [
    {"id": "M1", "startNodeId": "A", "endNodeId": "B", "elasticModulus": 200e6, "momentOfInertia": 1e-4, "crossSectionArea": 0.01, "releaseStart": true, "releaseEnd": true}
  ]
}`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestDetect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"beam.json":  beamRequest,
		"frame.yaml": frameRequest,
		"other.json": `{"vertices": []}`,
	})

	kind, err := Detect(filepath.Join(dir, "beam.json"))
	require.NoError(t, err)
	assert.Equal(t, Beam, kind)

	kind, err = Detect(filepath.Join(dir, "frame.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Frame, kind)

	_, err = Detect(filepath.Join(dir, "other.json"))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"beam.json":      beamRequest,
		"frame.yaml":     frameRequest,
		"mechanism.json": mechanismRequest,
		"broken.json":    `{"spans": [{"length": -1}], "supports": []}`,
	})
	paths := []string{
		filepath.Join(dir, "beam.json"),
		filepath.Join(dir, "frame.yaml"),
		filepath.Join(dir, "mechanism.json"),
		filepath.Join(dir, "broken.json"),
		filepath.Join(dir, "missing.json"),
	}

	outcomes, err := Run(context.Background(), paths, Options{Workers: 2})
	require.NoError(t, err)
	require.Len(t, outcomes, len(paths))

	for i, o := range outcomes {
		assert.Equal(t, paths[i], o.Path)
	}

	require.NoError(t, outcomes[0].Err)
	require.NotNil(t, outcomes[0].Beam)
	assert.InDelta(t, 5, outcomes[0].Beam.Joints[0].Reaction, 1e-9)
	assert.NotEmpty(t, outcomes[0].AnalysisID())

	require.NoError(t, outcomes[1].Err)
	require.NotNil(t, outcomes[1].Frame)
	assert.InDelta(t, 10, outcomes[1].Frame.Nodes[0].ReactionY, 1e-9)
	assert.NotEqual(t, outcomes[0].AnalysisID(), outcomes[1].AnalysisID())

	var singular *linsolve.SingularSystemError
	assert.ErrorAs(t, outcomes[2].Err, &singular)
	assert.Equal(t, Frame, outcomes[2].Kind)

	assert.True(t, structure.IsValidation(outcomes[3].Err))
	assert.Error(t, outcomes[4].Err)
	assert.Nil(t, outcomes[4].Warnings())
}

func TestRunCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"beam.json": beamRequest})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := []string{filepath.Join(dir, "beam.json"), filepath.Join(dir, "other.json")}
	outcomes, err := Run(ctx, paths, Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, outcomes, 2)
	for i, o := range outcomes {
		assert.Equal(t, paths[i], o.Path)
		assert.ErrorIs(t, o.Err, context.Canceled)
		assert.Nil(t, o.Beam)
	}
}
