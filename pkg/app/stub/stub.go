package stub

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/fixtures"
)

const (
	moonText = "🤖 Beep! The Moon is Earth’s rocky neighbor. Its craters were made by space rocks. It looks bright because it reflects sunlight!"
	moonSSML = "<speak>Beep! The Moon is Earth’s rocky neighbor. Its craters were made by space rocks. It looks bright because it reflects sunlight!</speak>"

	greetingText = "Hi friend! I can answer with a happy, simple voice. Ask me about space, animals, or stories!"

	spaceCatSVG = `<svg viewBox="0 0 1024 1024" xmlns="http://www.w3.org/2000/svg"><g stroke="#000" fill="none" stroke-width="6" stroke-linecap="round" stroke-linejoin="round"><circle cx="512" cy="512" r="400"/><path d="M380 450 q132 -180 264 0" /><circle cx="440" cy="500" r="30"/><circle cx="584" cy="500" r="30"/><path d="M512 540 q40 30 80 0" /><path d="M420 420 l-40 -80 l80 40 z" /><path d="M604 420 l40 -80 l-80 40 z" /><path d="M360 640 q152 120 304 0" /><circle cx="780" cy="360" r="36"/><circle cx="820" cy="320" r="18"/></g></svg>`
)

var leadingFlair = regexp.MustCompile(`^(?:[🤖✨🧭]\s)?`)

type voiceFixture struct {
	Persona content.Persona `json:"persona"`
	Text    string          `json:"text"`
	SSML    string          `json:"ssml"`
}

type panelFixture struct {
	Title   string `json:"title"`
	Caption string `json:"caption"`
}

type scienceFixture struct {
	Title       string             `json:"title"`
	Objective   string             `json:"objective"`
	Materials   []string           `json:"materials"`
	Steps       []string           `json:"steps"`
	Prediction  content.Prediction `json:"prediction"`
	Explanation string             `json:"explanation"`
	Supervision string             `json:"supervision"`
}

func defaultVoice() voiceFixture {
	return voiceFixture{Persona: content.PersonaRobot, Text: moonText, SSML: moonSSML}
}

func defaultPanels() []panelFixture {
	return []panelFixture{
		{Title: "Quiet Cave", Caption: "Dara the dragon peeks out, small and shy."},
		{Title: "A Small Hello", Caption: "A tiny fox waves its tail."},
		{Title: "Sharing Snacks", Caption: "Blueberries make everyone smile."},
		{Title: "New Friends", Caption: "Warm hugs. Big brave grin."},
	}
}

func defaultScience() scienceFixture {
	return scienceFixture{
		Title:     "Float or Sink?",
		Objective: "Explore why some things float.",
		Materials: []string{"Bowl of water", "Orange", "Spoon", "Paper clip"},
		Steps:     []string{"Fill the bowl", "Guess float/sink", "Place each item", "Observe"},
		Prediction: content.Prediction{
			Question:    "What happens to the orange?",
			Choices:     []string{"Floats with peel", "Sinks with peel", "Spins like a top"},
			AnswerIndex: 0,
		},
		Explanation: "The peel traps tiny air pockets, helping it float.",
		Supervision: "Ask an adult to help with water spills.",
	}
}

// Builder assembles fixture-backed responses. Source is stamped on every
// response it returns: the agent service uses stub and the tool bridge uses
// fixture.
type Builder struct {
	fixtures *fixtures.Provider
	source   content.Source
}

func NewBuilder(provider *fixtures.Provider, source content.Source) *Builder {
	return &Builder{fixtures: provider, source: source}
}

// Defaults returns a Builder that never touches disk and serves only the
// built-in payloads.
func Defaults(source content.Source) *Builder {
	return NewBuilder(nil, source)
}

func flair(p content.Persona) string {
	switch p {
	case content.PersonaFairy:
		return "✨ "
	case content.PersonaExplorer:
		return "🧭 "
	default:
		return "🤖 "
	}
}

func (b *Builder) Voice(req content.VoiceRequest) *content.VoiceResponse {
	base := fixtures.ReadJSON(b.fixtures, fixtures.VoiceMoon, defaultVoice())
	text := greetingText
	if strings.Contains(strings.ToLower(req.Text), "moon") {
		text = base.Text
	}
	return &content.VoiceResponse{
		Verdict: content.Verdict{Source: b.source},
		Persona: req.Persona,
		Text:    flair(req.Persona) + leadingFlair.ReplaceAllString(text, ""),
		SSML:    base.SSML,
	}
}

func (b *Builder) Story(req content.StoryRequest) *content.StoryResponse {
	all := fixtures.ReadJSON(b.fixtures, fixtures.ComicsDragon, defaultPanels())
	n := req.Panels
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}
	panels := make([]content.StoryPanel, 0, n)
	for _, p := range all[:n] {
		panels = append(panels, content.StoryPanel{
			Title:       p.Title,
			Caption:     p.Caption,
			ImagePrompt: fmt.Sprintf("%s illustration in soft lines", p.Title),
			ImageURL:    nil,
		})
	}
	return &content.StoryResponse{
		Verdict: content.Verdict{Source: b.source},
		Theme:   req.Theme,
		Panels:  panels,
	}
}

func (b *Builder) Coloring(content.ColoringRequest) *content.ColoringResponse {
	return &content.ColoringResponse{
		Verdict: content.Verdict{Source: b.source},
		SVG:     b.fixtures.ReadText(fixtures.ColoringSpace, spaceCatSVG),
	}
}

func (b *Builder) Science(req content.ScienceRequest) *content.ScienceResponse {
	base := fixtures.ReadJSON(b.fixtures, fixtures.ScienceFloater, defaultScience())
	prediction := base.Prediction
	return &content.ScienceResponse{
		Verdict:     content.Verdict{Source: b.source},
		Title:       base.Title,
		Objective:   base.Objective,
		Materials:   base.Materials,
		Steps:       base.Steps,
		Prediction:  &prediction,
		Explanation: base.Explanation,
		Supervision: base.Supervision,
		Topic:       req.Topic,
	}
}
