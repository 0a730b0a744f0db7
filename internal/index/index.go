// Package index flattens the workspace's containment tree into flat
// lookup tables for elements and relationships.
package index

import (
	"github.com/CoderByBlood/structuml/internal/workspace"
)

// Index maps element ids to display names and relationship ids to their
// records, covering every nesting level under the model's softwareSystems
// and people collections.
type Index struct {
	ElementNames  map[string]string
	Relationships map[string]workspace.Relationship
}

// Build walks the model depth-first and returns the flat index. Duplicate
// ids keep their first occurrence. Elements without a name are left
// unresolved so the renderer falls back to the raw id.
func Build(m *workspace.Model) *Index {
	idx := &Index{
		ElementNames:  make(map[string]string),
		Relationships: make(map[string]workspace.Relationship),
	}
	for i := range m.SoftwareSystems {
		idx.collect(&m.SoftwareSystems[i])
	}
	for i := range m.People {
		idx.collect(&m.People[i])
	}
	return idx
}

// ElementName resolves an element id to its display name, falling back to
// the raw id when the element is unknown or unnamed.
func (idx *Index) ElementName(id string) string {
	if name, ok := idx.ElementNames[id]; ok {
		return name
	}
	return id
}

func (idx *Index) collect(el *workspace.Element) {
	if el.ID != "" && el.Name != "" {
		if _, seen := idx.ElementNames[el.ID]; !seen {
			idx.ElementNames[el.ID] = el.Name
		}
	}

	for _, rel := range el.Relationships {
		if rel.ID == "" {
			continue
		}
		if _, seen := idx.Relationships[rel.ID]; !seen {
			idx.Relationships[rel.ID] = rel
		}
	}

	for i := range el.Containers {
		idx.collect(&el.Containers[i])
	}
	for i := range el.Components {
		idx.collect(&el.Components[i])
	}
}
