package ezstd

import (
	"context"
	"fmt"
	"strings"
)

// Reference renders the generated reference document for the enabled
// surface: one markdown section per enabled role in sorted order, the role's
// documentation inlined, followed by a table of its exports. Deprecated
// compatibility shims resolve normally but are left out of the document.
//
// The reference is an output artifact. Nothing in the aggregator consumes it.
func (agg *StdAggregator) Reference() string {
	var b strings.Builder

	b.WriteString("# Reference\n\n")
	namespaces := agg.Namespaces()
	if len(namespaces) == 0 {
		b.WriteString("No capabilities enabled.\n")
		return b.String()
	}

	for _, name := range namespaces {
		role := agg.registry[name]

		b.WriteString("## " + name)
		if v, ok := role.(Versioned); ok && v.Version() != "" {
			b.WriteString(" (" + v.Version() + ")")
		}
		b.WriteString("\n\n")

		if doc, ok := role.(Documented); ok && strings.TrimSpace(doc.Doc()) != "" {
			b.WriteString(strings.TrimSpace(doc.Doc()))
			b.WriteString("\n\n")
		} else {
			b.WriteString("_No documentation provided._\n\n")
		}

		exports, _ := agg.Exports(name)
		documented := 0
		for _, exp := range exports {
			if !exp.Deprecated {
				documented++
			}
		}
		if documented == 0 {
			continue
		}
		b.WriteString("| Name | Description |\n|---|---|\n")
		for _, exp := range exports {
			if exp.Deprecated {
				continue
			}
			fmt.Fprintf(&b, "| `%s.%s` | %s |\n", name, exp.Name, exp.Description)
		}
		b.WriteString("\n")
	}

	out := b.String()
	agg.logger.Debug("reference generated", "namespaces", len(namespaces), "bytes", len(out))
	agg.notifyObservers(context.Background(), NewCloudEvent(
		EventTypeReferenceGenerated, "aggregator",
		map[string]any{"namespaces": namespaces, "bytes": len(out)}, nil))
	return out
}
