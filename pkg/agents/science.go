package agents

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
	"github.com/NeuralTrust/KidBot/pkg/pipeline"
	"github.com/NeuralTrust/KidBot/pkg/tone"
)

type experiment struct {
	key         string
	title       string
	objective   string
	steps       []string
	explanation string
}

// experiments are matched against the lower-cased topic in this order.
var experiments = []experiment{
	{
		key:       "buoyancy",
		title:     "Floating Fruit Test",
		objective: "Discover which fruits float or sink in water",
		steps: []string{
			"Fill a clear bowl with water halfway.",
			"Gently drop in one fruit at a time.",
			"Watch if it floats on top or sinks to the bottom.",
			"Sort the fruits into float and sink groups.",
		},
		explanation: "Fruits with more air or lower density float. Denser fruits sink.",
	},
	{
		key:       "magnetism",
		title:     "Treasure Magnet Hunt",
		objective: "Test which objects stick to a magnet",
		steps: []string{
			"Place a magnet on a table.",
			"Slide different small objects toward the magnet.",
			"Notice which ones snap to the magnet and which ones stay still.",
		},
		explanation: "Magnets pull on objects made with iron or steel.",
	},
}

var defaultExperiment = experiment{
	title:     "Rainbow Water Mix",
	objective: "See how colors blend in water",
	steps: []string{
		"Fill three clear cups with water.",
		"Add red, yellow, and blue food coloring.",
		"Pour a little from two cups into an empty one to make new colors.",
	},
	explanation: "Mixing primary colors creates secondary colors like green, orange, and purple.",
}

var (
	experimentMaterials  = []string{"Large clear bowl", "Fresh water", "Safe household items"}
	predictionChoices    = []string{"It will float", "It will sink", "It will wobble in the middle"}
	experimentSupervisor = "Ask an adult to help pour water and tidy up spills."
)

func selectExperiment(topic string) experiment {
	lower := strings.ToLower(topic)
	for _, e := range experiments {
		if strings.Contains(lower, e.key) {
			return e
		}
	}
	return defaultExperiment
}

// PlanExperiment picks a hands-on experiment for the topic.
func (a *Agents) PlanExperiment(req content.ScienceRequest) (*content.ScienceResponse, error) {
	out, err := pipeline.Run(a.moderator, req.Topic,
		func() (experiment, error) { return selectExperiment(req.Topic), nil },
		func(e experiment) string { return strings.Join(e.steps, " ") },
	)
	if err != nil {
		return nil, err
	}
	a.observe(content.TypeScience, out.State, out.Verdict, out.Checkpoint)
	if !out.Allowed() {
		return &content.ScienceResponse{Verdict: content.Blocked(out.Verdict.Message)}, nil
	}

	e := out.Payload
	return &content.ScienceResponse{
		Title:     e.title,
		Objective: e.objective,
		Materials: append([]string(nil), experimentMaterials...),
		Steps:     append([]string(nil), e.steps...),
		Prediction: &content.Prediction{
			Question:    fmt.Sprintf("What do you think will happen? (%s)", tone.Summary(req.AgeBand.OrDefault())),
			Choices:     append([]string(nil), predictionChoices...),
			AnswerIndex: 0,
		},
		Explanation: e.explanation,
		Supervision: experimentSupervisor,
	}, nil
}
