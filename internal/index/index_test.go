package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderByBlood/structuml/internal/workspace"
)

func TestBuildCollectsNestedElements(t *testing.T) {
	m := &workspace.Model{
		SoftwareSystems: []workspace.Element{
			{
				ID:   "s1",
				Name: "OrderService",
				Containers: []workspace.Element{
					{
						ID:   "c1",
						Name: "API",
						Components: []workspace.Element{
							{ID: "cp1", Name: "OrderController"},
						},
					},
				},
			},
		},
		People: []workspace.Element{
			{ID: "u1", Name: "alice"},
		},
	}

	idx := Build(m)

	require.Len(t, idx.ElementNames, 4)
	assert.Equal(t, "OrderService", idx.ElementNames["s1"])
	assert.Equal(t, "API", idx.ElementNames["c1"])
	assert.Equal(t, "OrderController", idx.ElementNames["cp1"])
	assert.Equal(t, "alice", idx.ElementNames["u1"])
}

func TestBuildCollectsRelationshipsAtAllDepths(t *testing.T) {
	m := &workspace.Model{
		SoftwareSystems: []workspace.Element{
			{
				ID:   "s1",
				Name: "A",
				Relationships: []workspace.Relationship{
					{ID: "r1", SourceID: "s1", DestinationID: "s2"},
					{SourceID: "s1", DestinationID: "s3"}, // no id, ignored
				},
				Containers: []workspace.Element{
					{
						ID:   "c1",
						Name: "B",
						Relationships: []workspace.Relationship{
							{ID: "r2", SourceID: "c1", DestinationID: "s2"},
						},
						Components: []workspace.Element{
							{
								ID:   "cp1",
								Name: "C",
								Relationships: []workspace.Relationship{
									{ID: "r3", SourceID: "cp1", DestinationID: "c1"},
								},
							},
						},
					},
				},
			},
		},
	}

	idx := Build(m)

	require.Len(t, idx.Relationships, 3)
	assert.Equal(t, "s2", idx.Relationships["r1"].DestinationID)
	assert.Equal(t, "c1", idx.Relationships["r2"].SourceID)
	assert.Equal(t, "cp1", idx.Relationships["r3"].SourceID)
}

func TestBuildSkipsUnnamedElements(t *testing.T) {
	m := &workspace.Model{
		SoftwareSystems: []workspace.Element{
			{ID: "s1"},
			{Name: "ghost"},
			{ID: "s2", Name: "Named"},
		},
	}

	idx := Build(m)

	require.Len(t, idx.ElementNames, 1)
	assert.Equal(t, "Named", idx.ElementName("s2"))
	assert.Equal(t, "s1", idx.ElementName("s1"), "unnamed element resolves to its raw id")
	assert.Equal(t, "missing", idx.ElementName("missing"))
}

func TestBuildFirstOccurrenceWins(t *testing.T) {
	m := &workspace.Model{
		SoftwareSystems: []workspace.Element{
			{
				ID:   "s1",
				Name: "First",
				Relationships: []workspace.Relationship{
					{ID: "r1", Description: "first"},
				},
			},
			{
				ID:   "s1",
				Name: "Second",
				Relationships: []workspace.Relationship{
					{ID: "r1", Description: "second"},
				},
			},
		},
	}

	idx := Build(m)

	assert.Equal(t, "First", idx.ElementNames["s1"])
	assert.Equal(t, "first", idx.Relationships["r1"].Description)
}

func TestBuildEmptyModel(t *testing.T) {
	idx := Build(&workspace.Model{})

	assert.Empty(t, idx.ElementNames)
	assert.Empty(t, idx.Relationships)
}
