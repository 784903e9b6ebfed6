package request

import (
	"github.com/NeuralTrust/KidBot/pkg/domain/content"
)

const (
	MinVoiceText = 1
	MaxVoiceText = 280
	MinSubject   = 3
	MaxSubject   = 120
	MinPanels    = 2
	MaxPanels    = 8
)

type VoiceRequest content.VoiceRequest

func (r *VoiceRequest) Validate() error {
	verr := &ValidationError{}
	checkLength(verr, "text", r.Text, MinVoiceText, MaxVoiceText)
	checkEnum(verr, "persona", r.Persona, content.Personas, false)
	checkEnum(verr, "ageBand", r.AgeBand, content.AgeBands, true)
	return verr.orNil()
}

func (r *VoiceRequest) Domain() content.VoiceRequest { return content.VoiceRequest(*r) }

type StoryRequest content.StoryRequest

func (r *StoryRequest) Validate() error {
	verr := &ValidationError{}
	checkLength(verr, "theme", r.Theme, MinSubject, MaxSubject)
	if r.Panels < MinPanels || r.Panels > MaxPanels {
		verr.add("panels", "must be an integer between %d and %d", MinPanels, MaxPanels)
	}
	checkEnum(verr, "ageBand", r.AgeBand, content.AgeBands, true)
	return verr.orNil()
}

func (r *StoryRequest) Domain() content.StoryRequest { return content.StoryRequest(*r) }

type ColoringRequest content.ColoringRequest

func (r *ColoringRequest) Validate() error {
	verr := &ValidationError{}
	checkLength(verr, "scene", r.Scene, MinSubject, MaxSubject)
	checkEnum(verr, "style", r.Style, content.Styles, true)
	return verr.orNil()
}

func (r *ColoringRequest) Domain() content.ColoringRequest { return content.ColoringRequest(*r) }

type ScienceRequest content.ScienceRequest

func (r *ScienceRequest) Validate() error {
	verr := &ValidationError{}
	checkLength(verr, "topic", r.Topic, MinSubject, MaxSubject)
	checkEnum(verr, "ageBand", r.AgeBand, content.AgeBands, true)
	return verr.orNil()
}

func (r *ScienceRequest) Domain() content.ScienceRequest { return content.ScienceRequest(*r) }
