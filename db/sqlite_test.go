package db

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettboylen/reddit-simulator/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	database, err := NewDatabase(filepath.Join(t.TempDir(), "archive.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func comment(id string, mode models.Mode, at time.Time) *models.GeneratedComment {
	return &models.GeneratedComment{
		ID:              id,
		Author:          "neural_navigator",
		Text:            "text of " + id,
		Upvotes:         7,
		Time:            "now",
		IsAI:            true,
		ConstraintLevel: mode,
		Analysis: models.CommentAnalysis{
			WordCount:       3,
			UniqueWordCount: 3,
			EmojiCount:      1,
			CharacterCount:  12,
			ConstraintLevel: mode,
			Timestamp:       at,
		},
	}
}

func TestSaveAndRecentComments(t *testing.T) {
	database := newTestDatabase(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, database.SaveComment(comment("a", models.ModeNormal, base)))
	require.NoError(t, database.SaveComment(comment("b", models.ModeConstrained, base.Add(500*time.Millisecond))))
	require.NoError(t, database.SaveComment(comment("c", models.ModeAcademic, base.Add(time.Second))))

	recent, err := database.RecentComments(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
	assert.Equal(t, models.ModeConstrained, recent[1].ConstraintLevel)
	assert.Equal(t, "text of b", recent[1].Text)
	assert.Equal(t, 12, recent[1].CharacterCount)
	assert.True(t, base.Add(500*time.Millisecond).Equal(recent[1].CreatedAt))
}

func TestSaveCommentRejectsDuplicateID(t *testing.T) {
	database := newTestDatabase(t)
	now := time.Now()

	require.NoError(t, database.SaveComment(comment("same", models.ModeNormal, now)))

	dup := comment("same", models.ModeAcademic, now.Add(time.Second))
	dup.Text = "overwritten"
	assert.Error(t, database.SaveComment(dup))

	recent, err := database.RecentComments(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "text of same", recent[0].Text)
	assert.Equal(t, models.ModeNormal, recent[0].ConstraintLevel)
}

func TestRecentCommentsReportsBadTimestamp(t *testing.T) {
	database := newTestDatabase(t)

	_, err := database.db.Exec(`
	INSERT INTO generated_comments (
		id, author, text, constraint_level, upvotes, word_count,
		unique_word_count, emoji_count, character_count, created_at
	) VALUES ('bad', 'x', 'y', 'normal', 1, 1, 1, 0, 1, 'yesterday')
	`)
	require.NoError(t, err)

	_, err = database.RecentComments(10)
	assert.ErrorContains(t, err, "created_at")
}

func TestNewDatabaseFailsOnUnusablePath(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	// sqlite does not create missing parent directories
	database, err := NewDatabase(filepath.Join(t.TempDir(), "missing", "archive.db"), log)
	assert.Error(t, err)
	assert.Nil(t, database)
}

func TestCountByMode(t *testing.T) {
	database := newTestDatabase(t)
	now := time.Now()

	require.NoError(t, database.SaveComment(comment("1", models.ModeConstrained, now)))
	require.NoError(t, database.SaveComment(comment("2", models.ModeConstrained, now)))
	require.NoError(t, database.SaveComment(comment("3", models.ModeAcademic, now)))

	counts, err := database.CountByMode()
	require.NoError(t, err)

	assert.Equal(t, map[models.Mode]int{
		models.ModeNormal:      0,
		models.ModeConstrained: 2,
		models.ModeAcademic:    1,
	}, counts)
}
