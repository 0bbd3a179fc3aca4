package dataset

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSlangFromFile(t *testing.T) {
	path := writeFile(t, "slang_data.json", `{
		"total_terms": 3,
		"terms": ["Rizz", "bet", "delulu"],
		"meanings": {"rizz": "charisma", "bet": "agreement"},
		"full_data": [{"slang": "delulu", "meaning": "delusional"}]
	}`)

	vocab := LoadSlang(path, testLogger())

	assert.Equal(t, SourceFile, vocab.Source)
	assert.Equal(t, []string{"rizz", "bet", "delulu"}, vocab.Terms)
	meaning, ok := vocab.Meaning("delulu")
	assert.True(t, ok)
	assert.Equal(t, "delusional", meaning)
}

func TestLoadSlangFullDataOnly(t *testing.T) {
	path := writeFile(t, "slang_data.json", `{"full_data": [{"slang": "mid", "meaning": "average"}, {"slang": "ate", "meaning": "did great"}]}`)

	vocab := LoadSlang(path, testLogger())

	assert.Equal(t, []string{"mid", "ate"}, vocab.Terms)
}

func TestLoadSlangMissingFile(t *testing.T) {
	vocab := LoadSlang(filepath.Join(t.TempDir(), "nope.json"), testLogger())

	assert.Equal(t, SourceFallback, vocab.Source)
	assert.Equal(t, len(fallbackSlang), vocab.Len())
	assert.Equal(t, 28, vocab.Len())
}

func TestLoadSlangMalformedFile(t *testing.T) {
	path := writeFile(t, "slang_data.json", `{"terms": [`)

	vocab := LoadSlang(path, testLogger())

	assert.Equal(t, SourceMinimal, vocab.Source)
	assert.Equal(t, 6, vocab.Len())
}

func TestLoadSlangEmptyFile(t *testing.T) {
	path := writeFile(t, "slang_data.json", `{"terms": []}`)

	vocab := LoadSlang(path, testLogger())

	assert.Equal(t, SourceFallback, vocab.Source)
}

func TestVocabularyIgnoresDuplicates(t *testing.T) {
	vocab := vocabularyFrom([]entry{{"fr", "for real"}, {"fr", "france"}, {" ", "blank"}}, SourceFile)

	assert.Equal(t, []string{"fr"}, vocab.Terms)
	meaning, _ := vocab.Meaning("fr")
	assert.Equal(t, "for real", meaning)
}
