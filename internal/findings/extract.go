// Package findings extracts normalized findings from backend result documents.
package findings

import (
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
)

// Extract walks doc depth-first and returns every finding it can reach.
//
// At each object it collects, in this order, the findings nested under "insights[].findings",
// the object's own "findings" and those nested under "files[].findings", then descends into
// every child object (directly or as a list element). Matched subtrees are visited again by
// the descent, so the same record can be reported more than once; callers that want unique
// rows must call Deduplicate explicitly.
func Extract(doc document.Value) []Finding {
	out := []Finding{}
	if doc.Kind() != document.KindObject {
		return out
	}
	return walk(doc, out)
}

func walk(node document.Value, out []Finding) []Finding {
	out = appendNested(node, "insights", out)
	if list, ok := node.GetList("findings"); ok {
		out = appendAll(list, out)
	}
	out = appendNested(node, "files", out)

	for _, e := range node.Entries() {
		switch e.Value.Kind() {
		case document.KindObject:
			out = walk(e.Value, out)
		case document.KindList:
			for _, item := range e.Value.Items() {
				if item.Kind() == document.KindObject {
					out = walk(item, out)
				}
			}
		}
	}
	return out
}

// appendNested handles the "<container>[].findings" shapes.
func appendNested(node document.Value, container string, out []Finding) []Finding {
	groups, ok := node.GetList(container)
	if !ok {
		return out
	}
	for _, group := range groups {
		if list, ok := group.GetList("findings"); ok {
			out = appendAll(list, out)
		}
	}
	return out
}

func appendAll(raw []document.Value, out []Finding) []Finding {
	for _, r := range raw {
		out = append(out, Normalize(r))
	}
	return out
}

// Deduplicate drops repeated findings, keeping the first occurrence of each.
func Deduplicate(in []Finding) []Finding {
	seen := make(map[Finding]struct{}, len(in))
	out := make([]Finding, 0, len(in))
	for _, f := range in {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
