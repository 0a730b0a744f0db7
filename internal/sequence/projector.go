// Package sequence turns a dynamic view into a sequence diagram:
// projection derives the participant and message orderings, rendering
// emits the PlantUML document.
package sequence

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/CoderByBlood/structuml/internal/index"
	"github.com/CoderByBlood/structuml/internal/workspace"
)

// Message is one resolved arrow of the diagram.
type Message struct {
	SourceID      string
	DestinationID string
	Description   string
	Response      bool
}

// Projection is the ordered form of one dynamic view: the distinct
// participants in first-appearance order and the messages sorted by their
// order value.
type Projection struct {
	Participants []string
	Messages     []Message
}

// Project sorts the view's relationship references by order value and
// derives the participant sequence from the first appearance of each
// endpoint, source before destination. References without an id, or whose
// relationship is not in the index, are dropped silently. A resolved
// message with an empty endpoint is kept; the renderer skips its line.
func Project(view *workspace.DynamicView, idx *index.Index, log *zap.Logger) *Projection {
	type orderedRef struct {
		ref   workspace.RelationshipRef
		order int
	}

	refs := make([]orderedRef, 0, len(view.Relationships))
	for _, ref := range view.Relationships {
		if ref.ID == "" {
			continue
		}
		refs = append(refs, orderedRef{ref: ref, order: orderValue(ref, view.Key, log)})
	}
	// Stable so that equal order values keep their input positions.
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].order < refs[j].order
	})

	proj := &Projection{}
	seen := make(map[string]bool)
	for _, or := range refs {
		rel, ok := idx.Relationships[or.ref.ID]
		if !ok {
			continue
		}

		for _, id := range []string{rel.SourceID, rel.DestinationID} {
			if id != "" && !seen[id] {
				seen[id] = true
				proj.Participants = append(proj.Participants, id)
			}
		}

		proj.Messages = append(proj.Messages, Message{
			SourceID:      rel.SourceID,
			DestinationID: rel.DestinationID,
			Description:   strings.ReplaceAll(or.ref.Description, "\n", " "),
			Response:      or.ref.Response,
		})
	}
	return proj
}

// orderValue parses the reference's order field. An absent or unparseable
// value sorts as 0, which keeps ties resolved by input position; parse
// failures are logged because they can silently collapse distinct
// positions.
func orderValue(ref workspace.RelationshipRef, viewKey string, log *zap.Logger) int {
	if ref.Order == "" {
		return 0
	}
	n, err := strconv.Atoi(ref.Order)
	if err != nil {
		if log != nil {
			log.Warn("unparseable order value, treating as 0",
				zap.String("view", viewKey),
				zap.String("relationship_id", ref.ID),
				zap.String("order", ref.Order),
			)
		}
		return 0
	}
	return n
}
