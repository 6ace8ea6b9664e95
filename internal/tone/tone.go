// Package tone names the visual treatments shared by every presentation of a result.
package tone

// Tone selects how a tag, cell or value is highlighted.
type Tone string

const (
	Success Tone = "success"
	Failure Tone = "failure"
	Warning Tone = "warning"
	Info    Tone = "info"
	Neutral Tone = "neutral"
)
