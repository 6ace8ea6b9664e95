// Package tree classifies an arbitrary result document into a presentation tree.
package tree

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
)

// Kind is the presentation decision taken for one key/value pair.
type Kind string

const (
	KindNull      Kind = "null"
	KindList      Kind = "list"
	KindObject    Kind = "object"
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindStatus    Kind = "status"
	KindRiskLevel Kind = "riskLevel"
	KindLongText  Kind = "longText"
	KindPlain     Kind = "plain"
)

// LongTextThreshold is the string length above which a value is shown as a text block.
const LongTextThreshold = 50

// LongTextKeywords are matched against lower-cased keys; a string value under a key
// containing any of them is always shown as a text block.
var LongTextKeywords = []string{
	"reasoning",
	"description",
	"insight",
	"recommendation",
	"analysis",
	"summary",
	"finding",
	"suggestion",
	"explanation",
}

var statusTones = map[string]tone.Tone{
	"completed": tone.Success,
	"error":     tone.Failure,
	"running":   tone.Warning,
	"pending":   tone.Neutral,
}

var riskTones = map[string]tone.Tone{
	"high":   tone.Failure,
	"medium": tone.Warning,
	"low":    tone.Success,
}

// Node is the decision for one key/value pair.
type Node struct {
	Kind  Kind   `json:"kind"`
	Key   string `json:"key"`
	Label string `json:"label"`
	// Value is the display text of scalar kinds.
	Value    string    `json:"value,omitempty"`
	Tone     tone.Tone `json:"tone,omitempty"`
	Children []Node    `json:"children,omitempty"`
	Items    []Item    `json:"items,omitempty"`
}

// Item is one element of a list node: either plain text or a nested tree.
type Item struct {
	Composite bool   `json:"composite"`
	Text      string `json:"text,omitempty"`
	Children  []Node `json:"children,omitempty"`
}

// Render returns one node per key of the top-level object. Non-object input yields nil.
func Render(doc document.Value) []Node {
	if doc.Kind() != document.KindObject {
		return nil
	}
	entries := doc.Entries()
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, Classify(e.Key, e.Value))
	}
	return nodes
}

// Classify decides how value, stored under key, is presented.
func Classify(key string, value document.Value) Node {
	n := Node{Key: key, Label: HumanizeKey(key)}

	switch value.Kind() {
	case document.KindNull:
		n.Kind = KindNull
		n.Value = "null"
		n.Tone = tone.Neutral
		return n
	case document.KindList:
		n.Kind = KindList
		n.Items = renderItems(value.Items())
		return n
	case document.KindObject:
		n.Kind = KindObject
		n.Children = Render(value)
		return n
	case document.KindBool:
		b, _ := value.AsBool()
		n.Kind = KindBoolean
		n.Value = strconv.FormatBool(b)
		n.Tone = tone.Failure
		if b {
			n.Tone = tone.Success
		}
		return n
	case document.KindNumber:
		n.Kind = KindNumber
		n.Value = value.Text()
		n.Tone = tone.Info
		return n
	}

	text := value.Text()
	switch {
	case key == "status":
		n.Kind = KindStatus
		n.Value = text
		n.Tone = lookupTone(statusTones, text)
	case key == "riskLevel":
		n.Kind = KindRiskLevel
		n.Value = strings.ToUpper(text)
		n.Tone = lookupTone(riskTones, strings.ToLower(text))
	case IsLongText(key, value):
		n.Kind = KindLongText
		n.Value = text
	default:
		n.Kind = KindPlain
		n.Value = text
	}
	return n
}

// IsLongText reports whether a string value is long, or sits under a prose-like key.
func IsLongText(key string, value document.Value) bool {
	s, ok := value.AsString()
	if !ok {
		return false
	}
	if utf8.RuneCountInString(s) > LongTextThreshold {
		return true
	}
	lower := strings.ToLower(key)
	for _, kw := range LongTextKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func renderItems(values []document.Value) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		switch v.Kind() {
		case document.KindObject:
			items = append(items, Item{Composite: true, Children: Render(v)})
		case document.KindList:
			items = append(items, Item{Composite: true, Children: renderIndexed(v.Items())})
		default:
			items = append(items, Item{Text: v.Text()})
		}
	}
	return items
}

// renderIndexed presents a nested list as an object keyed by element position.
func renderIndexed(values []document.Value) []Node {
	nodes := make([]Node, 0, len(values))
	for i, v := range values {
		nodes = append(nodes, Classify(strconv.Itoa(i), v))
	}
	return nodes
}

func lookupTone(tones map[string]tone.Tone, value string) tone.Tone {
	if t, ok := tones[value]; ok {
		return t
	}
	return tone.Neutral
}

// HumanizeKey turns a camelCase key into a label: a space goes before every uppercase
// letter except a leading one and the first character is upper-cased.
func HumanizeKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	label := b.String()
	if label == "" {
		return label
	}
	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}
