package generator

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettboylen/reddit-simulator/models"
	"github.com/brettboylen/reddit-simulator/sampler"
	"github.com/brettboylen/reddit-simulator/stats"
)

type fakeCompleter struct {
	text   string
	err    error
	system string
	user   string
	calls  int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	return f.text, f.err
}

type fakePrompts struct{}

func (fakePrompts) Build(mode models.Mode) string {
	return "prompt for " + string(mode)
}

type fakeArchive struct {
	saved []*models.GeneratedComment
	err   error
}

func (f *fakeArchive) SaveComment(comment *models.GeneratedComment) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, comment)
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGenerateSuccess(t *testing.T) {
	llm := &fakeCompleter{text: "  lowkey this slaps fr 🔥\n"}
	collector := stats.NewCollector(testLogger())
	archive := &fakeArchive{}
	g := NewGenerator(llm, fakePrompts{}, collector, archive, sampler.New(1), testLogger())

	comment, err := g.Generate(context.Background(), "My cat learned to open doors", models.ModeConstrained)
	require.NoError(t, err)

	assert.Equal(t, "prompt for constrained", llm.system)
	assert.Contains(t, llm.user, "My cat learned to open doors")

	assert.Equal(t, "lowkey this slaps fr 🔥", comment.Text)
	assert.Contains(t, aiAuthors, comment.Author)
	assert.GreaterOrEqual(t, comment.Upvotes, minAIUpvotes)
	assert.LessOrEqual(t, comment.Upvotes, maxAIUpvotes)
	assert.Equal(t, "now", comment.Time)
	assert.True(t, comment.IsAI)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, models.ModeConstrained, comment.ConstraintLevel)
	assert.Equal(t, 4, comment.Analysis.WordCount)
	assert.Equal(t, 1, comment.Analysis.EmojiCount)

	state := collector.Snapshot()
	assert.Equal(t, 1, state.ConstraintDistribution[models.ModeConstrained])
	assert.Len(t, state.EmojiUsage, 1)
	assert.Len(t, state.CommentLengths, 1)

	require.Len(t, archive.saved, 1)
	assert.Equal(t, comment.ID, archive.saved[0].ID)
}

func TestGenerateUnknownModeFallsBackToNormal(t *testing.T) {
	llm := &fakeCompleter{text: "Nice."}
	collector := stats.NewCollector(testLogger())
	g := NewGenerator(llm, fakePrompts{}, collector, nil, sampler.New(2), testLogger())

	comment, err := g.Generate(context.Background(), "post", models.Mode("shakespeare"))
	require.NoError(t, err)

	assert.Equal(t, models.ModeNormal, comment.ConstraintLevel)
	assert.Equal(t, "prompt for normal", llm.system)
}

func TestGenerateFailureLeavesAnalyticsUntouched(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeCompleter
	}{
		{"service error", &fakeCompleter{err: errors.New("connection refused")}},
		{"blank text", &fakeCompleter{text: "  \n "}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			collector := stats.NewCollector(testLogger())
			archive := &fakeArchive{}
			g := NewGenerator(tc.llm, fakePrompts{}, collector, archive, sampler.New(3), testLogger())

			comment, err := g.Generate(context.Background(), "post", models.ModeAcademic)
			require.Error(t, err)
			assert.Nil(t, comment)
			assert.Equal(t, 1, tc.llm.calls)

			state := collector.Snapshot()
			assert.Empty(t, state.Comments)
			assert.Equal(t, 0, state.ConstraintDistribution[models.ModeAcademic])
			assert.Empty(t, archive.saved)
		})
	}
}

func TestGenerateWrapsServiceError(t *testing.T) {
	cause := errors.New("boom")
	g := NewGenerator(&fakeCompleter{err: cause}, fakePrompts{}, stats.NewCollector(testLogger()), nil, sampler.New(4), testLogger())

	_, err := g.Generate(context.Background(), "post", models.ModeNormal)
	assert.ErrorIs(t, err, cause)
}

func TestGenerateArchiveFailureIsNotFatal(t *testing.T) {
	archive := &fakeArchive{err: errors.New("disk full")}
	g := NewGenerator(&fakeCompleter{text: "ok"}, fakePrompts{}, stats.NewCollector(testLogger()), archive, sampler.New(5), testLogger())

	comment, err := g.Generate(context.Background(), "post", models.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, "ok", comment.Text)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Respond to this Reddit post:\n\nhello", userMessage("  hello "))
	assert.Contains(t, userMessage(""), "no text")
}
