// Package workspace defines the subset of the Structurizr workspace
// document consumed by the diagram pipeline.
package workspace

// Element is a node in the model's containment tree: a person, a software
// system, a container, or a component.
type Element struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Containers    []Element      `json:"containers,omitempty"`
	Components    []Element      `json:"components,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`
}

// Relationship connects two elements. It may be declared at any nesting
// level of the containment tree.
type Relationship struct {
	ID            string `json:"id"`
	SourceID      string `json:"sourceId"`
	DestinationID string `json:"destinationId"`
	Description   string `json:"description"`
}

// Model holds the top-level element collections.
type Model struct {
	SoftwareSystems []Element `json:"softwareSystems,omitempty"`
	People          []Element `json:"people,omitempty"`
}

// RelationshipRef is one occurrence of a relationship inside a dynamic
// view. Order is a string-encoded integer; Description applies to this
// occurrence only; Response marks the message as a reply.
type RelationshipRef struct {
	ID          string `json:"id"`
	Order       string `json:"order"`
	Description string `json:"description"`
	Response    bool   `json:"response,omitempty"`
}

// DynamicView is a named, keyed sequence of relationship references.
type DynamicView struct {
	Key           string            `json:"key"`
	Name          string            `json:"name"`
	Relationships []RelationshipRef `json:"relationships,omitempty"`
}

// Views holds the view collections the pipeline cares about.
type Views struct {
	DynamicViews []DynamicView `json:"dynamicViews,omitempty"`
}

// Workspace is the root of the architecture model document.
type Workspace struct {
	Model Model `json:"model"`
	Views Views `json:"views"`
}
