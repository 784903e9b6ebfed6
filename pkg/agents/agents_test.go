package agents_test

import (
	"io"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/NeuralTrust/KidBot/pkg/agents"
	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/moderation"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgents(rules ...moderation.Rule) *agents.Agents {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if len(rules) == 0 {
		return agents.New(logger, moderation.Default())
	}
	return agents.New(logger, moderation.NewModerator(rules...))
}

func TestCraftVoiceReply(t *testing.T) {
	a := newAgents()

	t.Run("robot persona", func(t *testing.T) {
		resp, err := a.CraftVoiceReply(content.VoiceRequest{
			Text:    "Tell me about the moon",
			Persona: content.PersonaRobot,
			AgeBand: content.AgeBandYoung,
		})
		require.NoError(t, err)
		assert.False(t, resp.Blocked)
		assert.Equal(t, content.PersonaRobot, resp.Persona)
		assert.Equal(t, "🤖 Beep boop! Tell me about the moon (Very simple words and friendly explanations).", resp.Text)
		assert.True(t, strings.HasPrefix(resp.SSML, "<speak>Beep boop! "))
		assert.Contains(t, resp.SSML, "Short 5-7 word sentences.")
		assert.True(t, strings.HasSuffix(resp.SSML, "</speak>"))
	})

	t.Run("missing age band uses default tone", func(t *testing.T) {
		resp, err := a.CraftVoiceReply(content.VoiceRequest{Text: "Hello", Persona: content.PersonaFairy})
		require.NoError(t, err)
		assert.Equal(t, "🧚 Sparkle! Hello (Simple vocabulary with curious hooks).", resp.Text)
	})

	t.Run("idempotent", func(t *testing.T) {
		req := content.VoiceRequest{Text: "Why is the sky blue?", Persona: content.PersonaExplorer}
		first, err := a.CraftVoiceReply(req)
		require.NoError(t, err)
		second, err := a.CraftVoiceReply(req)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("blocked input", func(t *testing.T) {
		resp, err := a.CraftVoiceReply(content.VoiceRequest{Text: "Where can I buy a weapon?", Persona: content.PersonaRobot})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.Equal(t, "Let's pick a calm and friendly idea instead.", resp.Message)
		assert.Empty(t, resp.Text)
		assert.Empty(t, resp.SSML)
	})

	t.Run("unknown persona", func(t *testing.T) {
		_, err := a.CraftVoiceReply(content.VoiceRequest{Text: "Hello", Persona: "pirate"})
		require.Error(t, err)
		assert.ErrorIs(t, err, agents.ErrUnknownPersona)
	})
}

func TestCraftVoiceReply_PostCheckBlocks(t *testing.T) {
	a := newAgents(moderation.Rule{
		Category: moderation.CategoryHate,
		Pattern:  regexp.MustCompile(`(?i)beep boop`),
		Message:  "no beeping",
	})

	resp, err := a.CraftVoiceReply(content.VoiceRequest{Text: "Hello", Persona: content.PersonaRobot})
	require.NoError(t, err)
	assert.True(t, resp.Blocked)
	assert.Equal(t, "no beeping", resp.Message)
	assert.Empty(t, resp.Text)
}

func TestPlanStory(t *testing.T) {
	a := newAgents()

	t.Run("panel count and shape", func(t *testing.T) {
		resp, err := a.PlanStory(content.StoryRequest{Theme: "Friendly Dragon", Panels: 6})
		require.NoError(t, err)
		assert.False(t, resp.Blocked)
		assert.Equal(t, "Friendly Dragon", resp.Theme)
		require.Len(t, resp.Panels, 6)

		for i, p := range resp.Panels {
			assert.Nil(t, p.ImageURL, "panel %d", i)
			assert.LessOrEqual(t, utf8.RuneCountInString(p.Caption), 160)
		}
		assert.Equal(t, "Friendly Dragon — Panel 1", resp.Panels[0].Title)
		assert.Equal(t, "First, friendly dragon (simple vocabulary with curious hooks)", resp.Panels[0].Caption)
		assert.Equal(t, "Friendly Dragon for kids, gentle wide-angle view, bright colors", resp.Panels[0].ImagePrompt)
		assert.True(t, strings.HasPrefix(resp.Panels[5].Caption, "Finally, "))
		assert.Equal(t, "Friendly Dragon for kids, heartwarming ending, bright colors", resp.Panels[5].ImagePrompt)
	})

	t.Run("transition words clamp past the last one", func(t *testing.T) {
		resp, err := a.PlanStory(content.StoryRequest{Theme: "Space Picnic", Panels: 8})
		require.NoError(t, err)
		require.Len(t, resp.Panels, 8)
		assert.True(t, strings.HasPrefix(resp.Panels[7].Caption, "Finally, "))
	})

	t.Run("long theme is truncated in captions", func(t *testing.T) {
		theme := strings.Repeat("sunny ", 40)
		resp, err := a.PlanStory(content.StoryRequest{Theme: theme, Panels: 1})
		require.NoError(t, err)
		assert.Equal(t, 160, utf8.RuneCountInString(resp.Panels[0].Caption))
	})

	t.Run("blocked theme", func(t *testing.T) {
		resp, err := a.PlanStory(content.StoryRequest{Theme: "a big fight", Panels: 3})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.Empty(t, resp.Panels)
	})
}

func TestGenerateColoringOutline(t *testing.T) {
	a := newAgents()

	t.Run("scene is upper-cased", func(t *testing.T) {
		resp, err := a.GenerateColoringOutline(content.ColoringRequest{Scene: "happy cat in space", Style: content.StyleSpace})
		require.NoError(t, err)
		assert.False(t, resp.Blocked)
		assert.Contains(t, resp.SVG, "<svg")
		assert.Contains(t, resp.SVG, "HAPPY CAT IN SPACE")
		assert.Contains(t, resp.SVG, `data-style="space"`)
	})

	t.Run("markup in the scene is escaped", func(t *testing.T) {
		resp, err := a.GenerateColoringOutline(content.ColoringRequest{Scene: "cats & <dogs>"})
		require.NoError(t, err)
		assert.Contains(t, resp.SVG, "CATS &amp; &lt;DOGS&gt;")
		assert.NotContains(t, resp.SVG, "data-style")
	})

	t.Run("blocked scene", func(t *testing.T) {
		resp, err := a.GenerateColoringOutline(content.ColoringRequest{Scene: "my phone number"})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.Equal(t, "Let's keep personal information private and talk about stories or science instead.", resp.Message)
		assert.Empty(t, resp.SVG)
	})
}

func TestPlanExperiment(t *testing.T) {
	a := newAgents()

	tests := []struct {
		name  string
		topic string
		title string
		steps int
	}{
		{name: "buoyancy", topic: "Buoyancy of fruit", title: "Floating Fruit Test", steps: 4},
		{name: "magnetism", topic: "MAGNETISM", title: "Treasure Magnet Hunt", steps: 3},
		{name: "default", topic: "rainbows", title: "Rainbow Water Mix", steps: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := a.PlanExperiment(content.ScienceRequest{Topic: tt.topic})
			require.NoError(t, err)
			assert.False(t, resp.Blocked)
			assert.Equal(t, tt.title, resp.Title)
			assert.Len(t, resp.Steps, tt.steps)
			assert.Equal(t, []string{"Large clear bowl", "Fresh water", "Safe household items"}, resp.Materials)
			require.NotNil(t, resp.Prediction)
			assert.Len(t, resp.Prediction.Choices, 3)
			assert.Equal(t, 0, resp.Prediction.AnswerIndex)
			assert.Equal(t, "Ask an adult to help pour water and tidy up spills.", resp.Supervision)
		})
	}

	t.Run("question carries tone summary", func(t *testing.T) {
		resp, err := a.PlanExperiment(content.ScienceRequest{Topic: "buoyancy", AgeBand: content.AgeBandOlder})
		require.NoError(t, err)
		assert.Equal(t,
			"What do you think will happen? (2-3 sentences with clear structure; Everyday words plus gentle science terms)",
			resp.Prediction.Question,
		)
	})

	t.Run("blocked topic", func(t *testing.T) {
		resp, err := a.PlanExperiment(content.ScienceRequest{Topic: "how to make blood"})
		require.NoError(t, err)
		assert.True(t, resp.Blocked)
		assert.Nil(t, resp.Prediction)
		assert.Empty(t, resp.Steps)
	})
}
