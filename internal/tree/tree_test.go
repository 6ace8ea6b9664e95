package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
)

func parse(t *testing.T, src string) document.Value {
	t.Helper()
	v, err := document.ParseJSON([]byte(src))
	require.NoError(t, err)
	return v
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     document.Value
		wantKind  Kind
		wantValue string
		wantTone  tone.Tone
	}{
		{"null", "status", document.Null(), KindNull, "null", tone.Neutral},
		{"list beats status key", "status", document.List(), KindList, "", ""},
		{"object", "riskLevel", document.NewObject().Value(), KindObject, "", ""},
		{"true", "enabled", document.Bool(true), KindBoolean, "true", tone.Success},
		{"false", "status", document.Bool(false), KindBoolean, "false", tone.Failure},
		{"number beats status key", "status", document.Number("3"), KindNumber, "3", tone.Info},
		{"status completed", "status", document.String("completed"), KindStatus, "completed", tone.Success},
		{"status error", "status", document.String("error"), KindStatus, "error", tone.Failure},
		{"status running", "status", document.String("running"), KindStatus, "running", tone.Warning},
		{"status pending", "status", document.String("pending"), KindStatus, "pending", tone.Neutral},
		{"status is case sensitive", "status", document.String("Completed"), KindStatus, "Completed", tone.Neutral},
		{"status key is case sensitive", "Status", document.String("completed"), KindPlain, "completed", ""},
		{"risk high", "riskLevel", document.String("High"), KindRiskLevel, "HIGH", tone.Failure},
		{"risk medium", "riskLevel", document.String("medium"), KindRiskLevel, "MEDIUM", tone.Warning},
		{"risk low", "riskLevel", document.String("LOW"), KindRiskLevel, "LOW", tone.Success},
		{"risk unknown", "riskLevel", document.String("severe"), KindRiskLevel, "SEVERE", tone.Neutral},
		{"keyword key", "aiReasoning", document.String("short"), KindLongText, "short", ""},
		{"keyword key upper case", "SUMMARY", document.String("ok"), KindLongText, "ok", ""},
		{"keyword inside word", "findingsCount", document.String("2"), KindLongText, "2", ""},
		{"plain", "name", document.String("repo"), KindPlain, "repo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Classify(tt.key, tt.value)
			assert.Equal(t, tt.wantKind, n.Kind)
			assert.Equal(t, tt.wantValue, n.Value)
			assert.Equal(t, tt.wantTone, n.Tone)
			assert.Equal(t, tt.key, n.Key)
		})
	}
}

func TestLongTextBoundary(t *testing.T) {
	fifty := strings.Repeat("a", LongTextThreshold)

	assert.Equal(t, KindPlain, Classify("path", document.String(fifty)).Kind)
	assert.Equal(t, KindLongText, Classify("path", document.String(fifty+"a")).Kind)

	// multi-byte characters count once
	wide := strings.Repeat("é", LongTextThreshold)
	assert.Equal(t, KindPlain, Classify("path", document.String(wide)).Kind)
}

func TestLongTextKeepsWhitespace(t *testing.T) {
	text := "line one\n\n    indented line two"
	n := Classify("recommendation", document.String(text))

	assert.Equal(t, KindLongText, n.Kind)
	assert.Equal(t, text, n.Value)
}

func TestEveryKeywordSelectsLongText(t *testing.T) {
	for _, kw := range LongTextKeywords {
		t.Run(kw, func(t *testing.T) {
			assert.Equal(t, KindLongText, Classify("x"+strings.ToUpper(kw), document.String("v")).Kind)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	v := parse(t, `{"a": [1, {"b": "c"}], "riskLevel": "low"}`)
	first := Render(v)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(v))
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	assert.Empty(t, Render(parse(t, `{}`)))
	assert.Nil(t, Render(parse(t, `[1, 2]`)))
	assert.Nil(t, Render(document.Null()))
}

func TestRenderNested(t *testing.T) {
	doc := parse(t, `{
		"status": "completed",
		"totalFilesAnalyzed": 12,
		"files": [
			{"fileName": "main.go", "riskLevel": "high"},
			"loose",
			null,
			[true, "x"]
		],
		"meta": {"lineNumber": 4}
	}`)

	nodes := Render(doc)
	require.Len(t, nodes, 4)

	assert.Equal(t, []string{"Status", "Total Files Analyzed", "Files", "Meta"},
		[]string{nodes[0].Label, nodes[1].Label, nodes[2].Label, nodes[3].Label})

	files := nodes[2]
	assert.Equal(t, KindList, files.Kind)
	require.Len(t, files.Items, 4)

	assert.True(t, files.Items[0].Composite)
	require.Len(t, files.Items[0].Children, 2)
	assert.Equal(t, "File Name", files.Items[0].Children[0].Label)
	assert.Equal(t, KindRiskLevel, files.Items[0].Children[1].Kind)

	assert.False(t, files.Items[1].Composite)
	assert.Equal(t, "loose", files.Items[1].Text)
	assert.Equal(t, "null", files.Items[2].Text)

	assert.True(t, files.Items[3].Composite)
	require.Len(t, files.Items[3].Children, 2)
	assert.Equal(t, "0", files.Items[3].Children[0].Key)
	assert.Equal(t, KindBoolean, files.Items[3].Children[0].Kind)

	meta := nodes[3]
	assert.Equal(t, KindObject, meta.Kind)
	require.Len(t, meta.Children, 1)
	assert.Equal(t, "Line Number", meta.Children[0].Label)
	assert.Equal(t, KindNumber, meta.Children[0].Kind)
}

func TestHumanizeKey(t *testing.T) {
	tests := map[string]string{
		"lineNumber":         "Line Number",
		"status":             "Status",
		"totalFilesAnalyzed": "Total Files Analyzed",
		"URL":                "U R L",
		"already Spaced":     "Already  Spaced",
		"snake_case":         "Snake_case",
		"":                   "",
		"0":                  "0",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, HumanizeKey(in))
		})
	}
}
