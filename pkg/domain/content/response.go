package content

// Verdict is the part every response shares. When Blocked is true only
// Message is meaningful and payload fields stay empty. CorrelationID is
// stamped by the HTTP layer.
type Verdict struct {
	CorrelationID string `json:"correlationId,omitempty"`
	Blocked       bool   `json:"blocked"`
	Message       string `json:"message,omitempty"`
	Source        Source `json:"source,omitempty"`
}

type VoiceResponse struct {
	Verdict
	Persona Persona `json:"persona,omitempty"`
	Text    string  `json:"text,omitempty"`
	SSML    string  `json:"ssml,omitempty"`
}

type StoryPanel struct {
	Title       string  `json:"title"`
	Caption     string  `json:"caption"`
	ImagePrompt string  `json:"imagePrompt"`
	ImageURL    *string `json:"imageUrl"`
}

type StoryResponse struct {
	Verdict
	Theme  string       `json:"theme,omitempty"`
	Panels []StoryPanel `json:"panels,omitempty"`
}

type ColoringResponse struct {
	Verdict
	SVG string `json:"svg,omitempty"`
}

type Prediction struct {
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answerIndex"`
}

type ScienceResponse struct {
	Verdict
	Title       string      `json:"title,omitempty"`
	Objective   string      `json:"objective,omitempty"`
	Materials   []string    `json:"materials,omitempty"`
	Steps       []string    `json:"steps,omitempty"`
	Prediction  *Prediction `json:"prediction,omitempty"`
	Explanation string      `json:"explanation,omitempty"`
	Supervision string      `json:"supervision,omitempty"`
	Topic       string      `json:"topic,omitempty"`
}

// Blocked builds the blocked form of a response: only the verdict is set.
func Blocked(message string) Verdict {
	return Verdict{Blocked: true, Message: message}
}
