package moderation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModerate_BlocksCategoryTerms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		category Category
	}{
		{name: "violence", text: "This story has violence and blood", category: CategoryViolence},
		{name: "weapon upper case", text: "Show me a WEAPON", category: CategoryViolence},
		{name: "romance", text: "a kiss on the cheek", category: CategoryRomance},
		{name: "self harm", text: "I want to hurt myself", category: CategorySelfHarm},
		{name: "bullying", text: "how to bully my brother", category: CategoryHate},
		{name: "personal info", text: "what is your password", category: CategoryPersonalInfo},
		{name: "phone", text: "call my phone", category: CategoryPersonalInfo},
	}

	m := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Moderate(tt.text)
			assert.True(t, result.Blocked)
			assert.NotEmpty(t, result.Message)
			assert.Equal(t, tt.category, result.Category)
		})
	}
}

func TestModerate_AllowsSafeText(t *testing.T) {
	m := Default()
	for _, text := range []string{
		"Happy adventure in the park",
		"Tell me a moon fact",
		"Happy turtle parade",
		"buoyancy",
	} {
		result := m.Moderate(text)
		assert.False(t, result.Blocked, text)
		assert.Empty(t, result.Message, text)
	}
}

func TestModerate_EmptyTextIsAllowed(t *testing.T) {
	assert.Equal(t, Result{}, Default().Moderate(""))
}

func TestModerate_FirstMatchingRuleWins(t *testing.T) {
	// "fight" (violence) and "kiss" (romance) both match; table order decides.
	result := Default().Moderate("a kiss before the fight")
	assert.True(t, result.Blocked)
	assert.Equal(t, CategoryViolence, result.Category)
	assert.Equal(t, "Let's pick a calm and friendly idea instead.", result.Message)
}

func TestModerate_FriendlyMessageMentionsFriendly(t *testing.T) {
	result := Default().Moderate("This story has violence and blood")
	assert.Contains(t, result.Message, "friendly")
}

func TestNewModerator_CustomRules(t *testing.T) {
	m := NewModerator(Rule{
		Category: "spoilers",
		Pattern:  regexp.MustCompile(`(?i)ending`),
		Message:  "No spoilers please.",
	})

	assert.True(t, m.Moderate("tell me the ENDING").Blocked)
	assert.False(t, m.Moderate("violence").Blocked)
}

func TestModerateAll_JoinsParts(t *testing.T) {
	result := ModerateAll(Default(), "a happy", "email me")
	assert.True(t, result.Blocked)
	assert.Equal(t, CategoryPersonalInfo, result.Category)

	assert.False(t, ModerateAll(Default(), "sunny", "meadow").Blocked)
}
