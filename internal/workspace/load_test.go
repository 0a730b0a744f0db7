package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "model": {
    "softwareSystems": [
      {
        "id": "s1",
        "name": "OrderService",
        "containers": [
          {
            "id": "c1",
            "name": "API",
            "relationships": [
              {"id": "r2", "sourceId": "c1", "destinationId": "s1", "description": "internal"}
            ]
          }
        ]
      }
    ],
    "people": [
      {
        "id": "u1",
        "name": "alice",
        "relationships": [
          {"id": "r1", "sourceId": "u1", "destinationId": "s1", "description": "place order"}
        ]
      }
    ]
  },
  "views": {
    "dynamicViews": [
      {
        "key": "Checkout-Sequence",
        "name": "Checkout",
        "relationships": [
          {"id": "r1", "order": "1", "description": "place order"}
        ]
      }
    ]
  }
}`

func TestParseSampleDocument(t *testing.T) {
	ws, err := Parse(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	require.Len(t, ws.Model.SoftwareSystems, 1)
	assert.Equal(t, "OrderService", ws.Model.SoftwareSystems[0].Name)
	require.Len(t, ws.Model.SoftwareSystems[0].Containers, 1)
	assert.Equal(t, "r2", ws.Model.SoftwareSystems[0].Containers[0].Relationships[0].ID)

	require.Len(t, ws.Model.People, 1)
	assert.Equal(t, "alice", ws.Model.People[0].Name)

	require.Len(t, ws.Views.DynamicViews, 1)
	view := ws.Views.DynamicViews[0]
	assert.Equal(t, "Checkout-Sequence", view.Key)
	require.Len(t, view.Relationships, 1)
	assert.Equal(t, "1", view.Relationships[0].Order)
	assert.False(t, view.Relationships[0].Response)
}

func TestParseMissingCollections(t *testing.T) {
	ws, err := Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Empty(t, ws.Model.SoftwareSystems)
	assert.Empty(t, ws.Model.People)
	assert.Empty(t, ws.Views.DynamicViews)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"model": [`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))

	ws, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ws.Views.DynamicViews, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
