package content

// AgeBand selects the tone used to flavor generated prose.
type AgeBand string

const (
	AgeBandYoung  AgeBand = "4-6"
	AgeBandMiddle AgeBand = "7-9"
	AgeBandOlder  AgeBand = "10-12"

	DefaultAgeBand = AgeBandMiddle
)

var AgeBands = []AgeBand{AgeBandYoung, AgeBandMiddle, AgeBandOlder}

func (a AgeBand) Valid() bool {
	for _, b := range AgeBands {
		if a == b {
			return true
		}
	}
	return false
}

// OrDefault returns the band, or DefaultAgeBand when none was supplied.
func (a AgeBand) OrDefault() AgeBand {
	if a == "" {
		return DefaultAgeBand
	}
	return a
}

type Persona string

const (
	PersonaRobot    Persona = "robot"
	PersonaFairy    Persona = "fairy"
	PersonaExplorer Persona = "explorer"
)

var Personas = []Persona{PersonaRobot, PersonaFairy, PersonaExplorer}

func (p Persona) Valid() bool {
	for _, v := range Personas {
		if p == v {
			return true
		}
	}
	return false
}

type Style string

const (
	StyleAnimals    Style = "animals"
	StyleSpace      Style = "space"
	StyleUnderwater Style = "underwater"
)

var Styles = []Style{StyleAnimals, StyleSpace, StyleUnderwater}

func (s Style) Valid() bool {
	for _, v := range Styles {
		if s == v {
			return true
		}
	}
	return false
}

// Source tags which code path produced a response.
type Source string

const (
	SourceStub    Source = "stub"
	SourceLocal   Source = "local"
	SourceFixture Source = "fixture"
	SourceAgent   Source = "agent"
)

// Type identifies one of the four content agents.
type Type string

const (
	TypeVoice    Type = "voice"
	TypeStory    Type = "story"
	TypeColoring Type = "coloring"
	TypeScience  Type = "science"
)
