package content

type VoiceRequest struct {
	Text    string  `json:"text" mapstructure:"text"`
	Persona Persona `json:"persona" mapstructure:"persona"`
	AgeBand AgeBand `json:"ageBand,omitempty" mapstructure:"ageBand"`
}

type StoryRequest struct {
	Theme   string  `json:"theme" mapstructure:"theme"`
	Panels  int     `json:"panels" mapstructure:"panels"`
	AgeBand AgeBand `json:"ageBand,omitempty" mapstructure:"ageBand"`
}

type ColoringRequest struct {
	Scene string `json:"scene" mapstructure:"scene"`
	Style Style  `json:"style,omitempty" mapstructure:"style"`
}

type ScienceRequest struct {
	Topic   string  `json:"topic" mapstructure:"topic"`
	AgeBand AgeBand `json:"ageBand,omitempty" mapstructure:"ageBand"`
}
