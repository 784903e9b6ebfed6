package pipeline

import (
	"errors"
	"testing"

	"github.com/NeuralTrust/KidBot/pkg/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func TestRun_Allowed(t *testing.T) {
	out, err := Run(moderation.Default(), "rainbows", func() (string, error) {
		return "a rainbow story", nil
	}, identity)

	require.NoError(t, err)
	assert.Equal(t, Allowed, out.State)
	assert.True(t, out.Allowed())
	assert.True(t, out.State.Terminal())
	assert.Equal(t, "a rainbow story", out.Payload)
	assert.False(t, out.Verdict.Blocked)
}

func TestRun_PreCheckBlocksWithoutGenerating(t *testing.T) {
	called := false
	out, err := Run(moderation.Default(), "tell me about a weapon", func() (string, error) {
		called = true
		return "unused", nil
	}, identity)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, Blocked, out.State)
	assert.Equal(t, moderation.PreCheck, out.Checkpoint)
	assert.Equal(t, moderation.CategoryViolence, out.Verdict.Category)
	assert.Empty(t, out.Payload)
}

func TestRun_PostCheckBlocksGeneratedContent(t *testing.T) {
	out, err := Run(moderation.Default(), "a friendly dragon", func() (string, error) {
		return "the dragon starts a fight", nil
	}, identity)

	require.NoError(t, err)
	assert.Equal(t, Blocked, out.State)
	assert.Equal(t, moderation.PostCheck, out.Checkpoint)
	assert.NotEmpty(t, out.Verdict.Message)
	assert.Empty(t, out.Payload, "blocked payload must be discarded")
}

func TestRun_GenerateErrorIsNotABlock(t *testing.T) {
	boom := errors.New("template missing")
	out, err := Run(moderation.Default(), "planets", func() (string, error) {
		return "", boom
	}, identity)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Generating, out.State)
	assert.False(t, out.State.Terminal())
	assert.False(t, out.Verdict.Blocked)
}
