package pipeline

import (
	"fmt"

	"github.com/NeuralTrust/KidBot/pkg/moderation"
)

// State is a step of the moderation pipeline. Allowed and Blocked are
// terminal.
type State string

const (
	PendingPreCheck  State = "pending_pre_check"
	Generating       State = "generating"
	PendingPostCheck State = "pending_post_check"
	Allowed          State = "allowed"
	Blocked          State = "blocked"
)

func (s State) Terminal() bool {
	return s == Allowed || s == Blocked
}

// Outcome is where a run stopped. Payload is only set when State is Allowed;
// Verdict and Checkpoint are only set when State is Blocked.
type Outcome[T any] struct {
	State      State
	Payload    T
	Verdict    moderation.Result
	Checkpoint moderation.Checkpoint
}

func (o Outcome[T]) Allowed() bool {
	return o.State == Allowed
}

// Run moderates input, generates a payload, then moderates the payload's
// user-visible transcript. A generation error is returned as-is and is not a
// block.
func Run[T any](
	m moderation.Moderator,
	input string,
	generate func() (T, error),
	transcript func(T) string,
) (Outcome[T], error) {
	var out Outcome[T]

	out.State = PendingPreCheck
	if verdict := m.Moderate(input); verdict.Blocked {
		return block(out, verdict, moderation.PreCheck), nil
	}

	out.State = Generating
	payload, err := generate()
	if err != nil {
		return out, fmt.Errorf("generate: %w", err)
	}

	out.State = PendingPostCheck
	if verdict := m.Moderate(transcript(payload)); verdict.Blocked {
		return block(out, verdict, moderation.PostCheck), nil
	}

	out.State = Allowed
	out.Payload = payload
	return out, nil
}

func block[T any](out Outcome[T], verdict moderation.Result, checkpoint moderation.Checkpoint) Outcome[T] {
	var zero T
	out.State = Blocked
	out.Payload = zero
	out.Verdict = verdict
	out.Checkpoint = checkpoint
	return out
}
