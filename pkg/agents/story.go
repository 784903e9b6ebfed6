package agents

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
	"github.com/NeuralTrust/KidBot/pkg/tone"
)

const captionLimit = 160

var transitions = []string{"First", "Next", "Then", "After that", "Almost there", "Finally"}

var shots = []string{
	"gentle wide-angle view",
	"friendly close-up",
	"action moment",
	"heartwarming ending",
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func panelCaption(theme, toneNote string, index int) string {
	intro := transitions[clampIndex(index, len(transitions))]
	caption := fmt.Sprintf("%s, %s (%s)", intro, strings.ToLower(theme), strings.ToLower(toneNote))
	return truncateRunes(caption, captionLimit)
}

func createPanels(req content.StoryRequest) []content.StoryPanel {
	profile := tone.KidTone(req.AgeBand.OrDefault())
	panels := make([]content.StoryPanel, 0, req.Panels)
	for i := 0; i < req.Panels; i++ {
		panels = append(panels, content.StoryPanel{
			Title:       fmt.Sprintf("%s — Panel %d", req.Theme, i+1),
			Caption:     panelCaption(req.Theme, profile.Vocabulary, i),
			ImagePrompt: fmt.Sprintf("%s for kids, %s, bright colors", req.Theme, shots[clampIndex(i, len(shots))]),
			ImageURL:    nil,
		})
	}
	return panels
}

func captions(panels []content.StoryPanel) string {
	parts := make([]string, len(panels))
	for i, p := range panels {
		parts[i] = p.Caption
	}
	return strings.Join(parts, " ")
}

// PlanStory lays out req.Panels comic panels about the theme.
func (a *Agents) PlanStory(req content.StoryRequest) (*content.StoryResponse, error) {
	out, err := pipeline.Run(a.moderator, req.Theme,
		func() ([]content.StoryPanel, error) { return createPanels(req), nil },
		captions,
	)
	if err != nil {
		return nil, err
	}
	a.observe(content.TypeStory, out.State, out.Verdict, out.Checkpoint)
	if !out.Allowed() {
		return &content.StoryResponse{Verdict: content.Blocked(out.Verdict.Message)}, nil
	}
	return &content.StoryResponse{
		Theme:  req.Theme,
		Panels: out.Payload,
	}, nil
}
