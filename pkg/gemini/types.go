package gemini

// GenerateRequest is the top-level request body for the Gemini API.
type GenerateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content wraps a list of Part objects to form a message.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part holds a text segment of a content message.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GenerationConfig holds optional generation settings.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// GenerateResponse is the top-level response body from the Gemini API.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate represents a single response candidate.
type Candidate struct {
	Content Content `json:"content"`
}

// ParsedDraft is a structured task draft extracted from a voice transcript
// by the model. Any malformed or partial draft is treated as absent by the
// caller, which then falls back to local parsing.
type ParsedDraft struct {
	Title          string   `json:"title"`
	DueAtAbsolute  string   `json:"due_at_absolute"` // RFC3339
	IsRecurring    bool     `json:"is_recurring"`
	RecurrenceDays []string `json:"recurrence_days"` // lowercase weekday names
	Priority       string   `json:"priority"`        // low | medium | high
}
