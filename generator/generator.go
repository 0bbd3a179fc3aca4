// Package generator produces AI comments through the text-generation service
// and simulated human replies to them.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/models"
	"github.com/brettboylen/reddit-simulator/sampler"
)

const (
	minAIUpvotes = 1
	maxAIUpvotes = 50
	timeLabelNow = "now"
)

// aiAuthors is the persona pool for generated comments
var aiAuthors = []string{
	"neural_navigator",
	"synthetic_sage",
	"byte_sized_takes",
	"algo_rhythm",
	"silicon_scribe",
	"prompt_wanderer",
	"token_tinkerer",
	"latent_lurker",
	"gradient_gremlin",
	"vector_vibes",
}

// Completer is the text-generation service
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// PromptBuilder builds the instruction for a constraint mode
type PromptBuilder interface {
	Build(mode models.Mode) string
}

// Recorder scores generated text and folds it into the running statistics
type Recorder interface {
	Record(text string, mode models.Mode) models.CommentAnalysis
}

// Archive stores generated comments; it is optional
type Archive interface {
	SaveComment(comment *models.GeneratedComment) error
}

// Generator turns a post into a generated comment
type Generator struct {
	llm       Completer
	prompts   PromptBuilder
	analytics Recorder
	archive   Archive
	sampler   *sampler.Sampler
	log       *logrus.Logger
}

// NewGenerator creates a new generator; archive may be nil
func NewGenerator(llm Completer, prompts PromptBuilder, analytics Recorder, archive Archive, s *sampler.Sampler, log *logrus.Logger) *Generator {
	return &Generator{
		llm:       llm,
		prompts:   prompts,
		analytics: analytics,
		archive:   archive,
		sampler:   s,
		log:       log,
	}
}

// Generate asks the service for a comment on postText under mode.
// Analytics are only updated after the service returned usable text.
func (g *Generator) Generate(ctx context.Context, postText string, mode models.Mode) (*models.GeneratedComment, error) {
	mode = models.ParseMode(string(mode))
	system := g.prompts.Build(mode)

	text, err := g.llm.Complete(ctx, system, userMessage(postText))
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("failed to generate comment: empty text")
	}

	analysis := g.analytics.Record(text, mode)

	comment := &models.GeneratedComment{
		ID:              uuid.NewString(),
		Author:          g.sampler.Pick(aiAuthors),
		Text:            text,
		Upvotes:         g.sampler.IntRange(minAIUpvotes, maxAIUpvotes),
		Time:            timeLabelNow,
		IsAI:            true,
		ConstraintLevel: mode,
		Analysis:        analysis,
	}

	if g.archive != nil {
		if err := g.archive.SaveComment(comment); err != nil {
			g.log.WithError(err).WithField("comment_id", comment.ID).Warn("Failed to archive generated comment")
		}
	}

	g.log.WithFields(logrus.Fields{
		"comment_id":  comment.ID,
		"mode":        mode,
		"word_count":  analysis.WordCount,
		"emoji_count": analysis.EmojiCount,
	}).Info("Generated comment")

	return comment, nil
}

func userMessage(postText string) string {
	postText = strings.TrimSpace(postText)
	if postText == "" {
		return "Respond to this Reddit post (it has no text, react to the title or image)."
	}
	return "Respond to this Reddit post:\n\n" + postText
}
