package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxEmojiRows bounds how much of the emoji dataset is read
const maxEmojiRows = 2000

// emojiColumns holds the detected column indexes, -1 when absent
type emojiColumns struct {
	emoji       int
	name        int
	description int
}

// LoadEmoji reads the emoji vocabulary from a CSV file, falling back to a fixed set
func LoadEmoji(path string, log *logrus.Logger) *Vocabulary {
	file, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("Emoji dataset not available, using fallback emoji")
		return vocabularyFrom(fallbackEmoji, SourceFallback)
	}
	defer file.Close()

	vocab, err := parseEmojiCSV(file)
	if err != nil {
		log.WithError(err).WithField("file", path).Warn("Failed to parse emoji dataset, using fallback emoji")
		return vocabularyFrom(fallbackEmoji, SourceFallback)
	}
	if vocab.Len() == 0 {
		log.WithField("file", path).Warn("Emoji dataset had no usable rows, using fallback emoji")
		return vocabularyFrom(fallbackEmoji, SourceFallback)
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"emojis": vocab.Len(),
	}).Info("Loaded emoji vocabulary")
	return vocab
}

func parseEmojiCSV(r io.Reader) (*Vocabulary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := detectEmojiColumns(header)
	if cols.emoji < 0 {
		return nil, errors.New("no emoji column in header")
	}

	vocab := newVocabulary(SourceFile)
	for rows := 0; rows < maxEmojiRows; rows++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rows+1, err)
		}

		emoji := strings.TrimSpace(field(record, cols.emoji))
		if !ContainsEmoji(emoji) {
			continue
		}

		meaning := emojiMeaning(field(record, cols.name), field(record, cols.description))
		if meaning == "" {
			continue
		}
		vocab.add(emoji, meaning)
	}

	return vocab, nil
}

// detectEmojiColumns matches header names by case-insensitive substring; first match wins
func detectEmojiColumns(header []string) emojiColumns {
	cols := emojiColumns{emoji: -1, name: -1, description: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if cols.emoji < 0 && (strings.Contains(h, "emoji") || strings.Contains(h, "character")) {
			cols.emoji = i
		}
		if cols.name < 0 && (strings.Contains(h, "name") || strings.Contains(h, "title")) {
			cols.name = i
		}
		if cols.description < 0 && (strings.Contains(h, "description") || strings.Contains(h, "meaning") || strings.Contains(h, "keywords")) {
			cols.description = i
		}
	}
	return cols
}

func emojiMeaning(name, description string) string {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	switch {
	case name != "" && description != "":
		return name + ", " + description
	case name != "":
		return name
	default:
		return description
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
