// Package prompt builds the system instruction sent to the text-generation
// service for each constraint mode.
package prompt

import (
	"fmt"
	"strings"

	"github.com/brettboylen/reddit-simulator/dataset"
	"github.com/brettboylen/reddit-simulator/models"
	"github.com/brettboylen/reddit-simulator/sampler"
)

const (
	slangSampleSize   = 20
	emojiSampleSize   = 40
	annotatedExamples = 10
)

const normalPrompt = "You are a Reddit user responding to a post. Respond naturally and conversationally, " +
	"the way a real person would in a comment thread. Keep it to 1-3 sentences."

const academicPrompt = "You are a Reddit user with an academic background responding to a post. " +
	"Use sophisticated vocabulary and complex sentence structures, and reference relevant theories, " +
	"research or scholarly concepts where appropriate. Keep it to 1-3 sentences."

// Builder builds constraint profiles from the loaded vocabularies
type Builder struct {
	slang   *dataset.Vocabulary
	emoji   *dataset.Vocabulary
	sampler *sampler.Sampler
}

// NewBuilder creates a prompt builder
func NewBuilder(slang, emoji *dataset.Vocabulary, s *sampler.Sampler) *Builder {
	return &Builder{
		slang:   slang,
		emoji:   emoji,
		sampler: s,
	}
}

// Build returns the instruction for mode; unknown modes get the normal instruction
func (b *Builder) Build(mode models.Mode) string {
	switch mode {
	case models.ModeConstrained:
		return b.constrained()
	case models.ModeAcademic:
		return academicPrompt
	default:
		return normalPrompt
	}
}

func (b *Builder) constrained() string {
	terms := sampler.SampleOr(b.sampler, b.slang.Terms, slangSampleSize, dataset.EmergencySlang)
	emojis := sampler.SampleOr(b.sampler, b.emoji.Terms, emojiSampleSize, dataset.EmergencyEmoji)

	return fmt.Sprintf(`You are a Reddit user who can ONLY communicate using this exact slang vocabulary and these emojis.

Allowed slang terms: %s

Allowed emojis: %s

Examples of the slang with meanings: %s

Rules:
- Use ONLY the slang terms and emojis listed above, plus basic connecting words (I, you, the, is, it, this, that, and, but, so).
- Do not use any other vocabulary.
- Still express a real, developed opinion about the post.
- Keep it to 1-3 sentences.`,
		strings.Join(terms, ", "),
		strings.Join(emojis, " "),
		b.annotate(terms),
	)
}

// annotate renders the first sampled terms as "term (meaning)"
func (b *Builder) annotate(terms []string) string {
	n := annotatedExamples
	if n > len(terms) {
		n = len(terms)
	}

	examples := make([]string, 0, n)
	for _, term := range terms[:n] {
		if meaning, ok := b.slang.Meaning(term); ok {
			examples = append(examples, fmt.Sprintf("%s (%s)", term, meaning))
		} else {
			examples = append(examples, term)
		}
	}
	return strings.Join(examples, ", ")
}
