package sequence

import (
	"bytes"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/CoderByBlood/structuml/internal/index"
)

// Render emits the PlantUML document for one projected view. Output is a
// pure function of its inputs: the same projection and index always
// produce byte-identical text.
func Render(title string, proj *Projection, idx *index.Index) string {
	var b bytes.Buffer
	b.WriteString("@startuml\n")
	fmt.Fprintf(&b, "title %s\n\n", title)

	for _, id := range proj.Participants {
		label := idx.ElementName(id)
		fmt.Fprintf(&b, "%s \"%s\" as %s\n", classify(label), label, id)
	}
	b.WriteString("\n")

	for _, msg := range proj.Messages {
		if msg.SourceID == "" || msg.DestinationID == "" {
			continue
		}
		if msg.Response {
			fmt.Fprintf(&b, "%s -> %s : %s\n", msg.DestinationID, msg.SourceID, msg.Description)
		} else {
			fmt.Fprintf(&b, "%s -> %s : %s\n", msg.SourceID, msg.DestinationID, msg.Description)
		}
	}

	b.WriteString("@enduml\n")
	return b.String()
}

// classify distinguishes human actors from system participants by naming
// convention: a label whose first rune is a lowercase letter declares an
// actor. Labels that are empty or start with a non-letter declare a
// participant.
func classify(label string) string {
	r, _ := utf8.DecodeRuneInString(label)
	if unicode.IsLower(r) {
		return "actor"
	}
	return "participant"
}
