package agents

import (
	"errors"
	"fmt"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
	"github.com/NeuralTrust/KidBot/pkg/tone"
)

var ErrUnknownPersona = errors.New("unknown persona")

type personaVoice struct {
	prefix string
	emoji  string
}

var personaVoices = map[content.Persona]personaVoice{
	content.PersonaRobot:    {prefix: "Beep boop", emoji: "🤖"},
	content.PersonaFairy:    {prefix: "Sparkle", emoji: "🧚"},
	content.PersonaExplorer: {prefix: "Adventure", emoji: "🧭"},
}

type speech struct {
	text string
	ssml string
}

func buildSpeech(req content.VoiceRequest) (speech, error) {
	voice, ok := personaVoices[req.Persona]
	if !ok {
		return speech{}, fmt.Errorf("%w: %q", ErrUnknownPersona, req.Persona)
	}
	profile := tone.KidTone(req.AgeBand.OrDefault())
	summary := fmt.Sprintf("%s! %s", voice.prefix, req.Text)
	return speech{
		text: fmt.Sprintf("%s %s (%s).", voice.emoji, summary, profile.Vocabulary),
		ssml: fmt.Sprintf(
			`<speak>%s! <break strength="medium"/>%s. <break strength="short"/>%s.</speak>`,
			voice.prefix, req.Text, profile.SentenceLength,
		),
	}, nil
}

// CraftVoiceReply answers in the requested persona's voice.
func (a *Agents) CraftVoiceReply(req content.VoiceRequest) (*content.VoiceResponse, error) {
	out, err := pipeline.Run(a.moderator, req.Text,
		func() (speech, error) { return buildSpeech(req) },
		func(s speech) string { return s.text },
	)
	if err != nil {
		return nil, err
	}
	a.observe(content.TypeVoice, out.State, out.Verdict, out.Checkpoint)
	if !out.Allowed() {
		return &content.VoiceResponse{Verdict: content.Blocked(out.Verdict.Message)}, nil
	}
	return &content.VoiceResponse{
		Persona: req.Persona,
		Text:    out.Payload.text,
		SSML:    out.Payload.ssml,
	}, nil
}
