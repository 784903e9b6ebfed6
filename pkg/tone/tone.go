package tone

import (
	"fmt"

	"github.com/NeuralTrust/KidBot/pkg/domain/content"
)

// Profile describes how prose should read for an age band.
type Profile struct {
	SentenceLength string `json:"sentenceLength"`
	Vocabulary     string `json:"vocabulary"`
}

// KidTone maps an age band to its profile. Unknown bands get the oldest
// profile.
func KidTone(band content.AgeBand) Profile {
	switch band {
	case content.AgeBandYoung:
		return Profile{
			SentenceLength: "Short 5-7 word sentences",
			Vocabulary:     "Very simple words and friendly explanations",
		}
	case content.AgeBandMiddle:
		return Profile{
			SentenceLength: "1-2 short sentences",
			Vocabulary:     "Simple vocabulary with curious hooks",
		}
	default:
		return Profile{
			SentenceLength: "2-3 sentences with clear structure",
			Vocabulary:     "Everyday words plus gentle science terms",
		}
	}
}

// Summary renders the profile for band on one line.
func Summary(band content.AgeBand) string {
	p := KidTone(band)
	return fmt.Sprintf("%s; %s", p.SentenceLength, p.Vocabulary)
}
