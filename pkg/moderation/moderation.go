package moderation

import (
	"regexp"
	"strings"
)

type Category string

const (
	CategoryViolence     Category = "violence"
	CategoryRomance      Category = "romance"
	CategorySelfHarm     Category = "self_harm"
	CategoryHate         Category = "hate"
	CategoryPersonalInfo Category = "personal_info"
)

// Checkpoint names the place in a pipeline where a verdict was reached.
type Checkpoint string

const (
	PreCheck      Checkpoint = "pre_check"
	PostCheck     Checkpoint = "post_check"
	AgentReported Checkpoint = "agent_reported"
)

// Rule pairs a case-insensitive pattern with the redirect message shown when
// it matches.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
	Message  string
}

// Result is the verdict for one piece of text. Message is set iff Blocked.
type Result struct {
	Blocked  bool     `json:"blocked"`
	Message  string   `json:"message,omitempty"`
	Category Category `json:"-"`
}

type Moderator interface {
	Moderate(text string) Result
}

// DefaultRules is the category table shared by the agent service and the tool
// bridge. Order is evaluation order.
var DefaultRules = []Rule{
	{
		Category: CategoryViolence,
		Pattern:  regexp.MustCompile(`(?i)(kill|weapon|blood|fight|violence)`),
		Message:  "Let's pick a calm and friendly idea instead.",
	},
	{
		Category: CategoryRomance,
		Pattern:  regexp.MustCompile(`(?i)(dating|kiss|romance|crush)`),
		Message:  "KidBot sticks to friendly adventures and science fun.",
	},
	{
		Category: CategorySelfHarm,
		Pattern:  regexp.MustCompile(`(?i)(hurt myself|self-harm|suicide|die)`),
		Message:  "If you're feeling upset, please talk with a trusted adult. I'm here for cheerful topics.",
	},
	{
		Category: CategoryHate,
		Pattern:  regexp.MustCompile(`(?i)(hate|racis|bully|mean|insult)`),
		Message:  "KidBot celebrates kindness and respect for everyone.",
	},
	{
		Category: CategoryPersonalInfo,
		Pattern:  regexp.MustCompile(`(?i)(address|phone|email|last name|password)`),
		Message:  "Let's keep personal information private and talk about stories or science instead.",
	},
}

type moderator struct {
	rules []Rule
}

var defaultModerator = NewModerator(DefaultRules...)

// Default returns the moderator backed by DefaultRules.
func Default() Moderator {
	return defaultModerator
}

func NewModerator(rules ...Rule) Moderator {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &moderator{rules: copied}
}

func (m *moderator) Moderate(text string) Result {
	if text == "" {
		return Result{}
	}
	for _, rule := range m.rules {
		if rule.Pattern.MatchString(text) {
			return Result{Blocked: true, Message: rule.Message, Category: rule.Category}
		}
	}
	return Result{}
}

// ModerateAll checks several text surfaces as one space-joined string.
func ModerateAll(m Moderator, parts ...string) Result {
	return m.Moderate(strings.Join(parts, " "))
}
