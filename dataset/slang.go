package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// slangFile is the shape written by the slang download script
type slangFile struct {
	TotalTerms int               `json:"total_terms"`
	Terms      []string          `json:"terms"`
	Meanings   map[string]string `json:"meanings"`
	FullData   []struct {
		Slang   string `json:"slang"`
		Meaning string `json:"meaning"`
	} `json:"full_data"`
}

// LoadSlang reads the slang vocabulary from path.
// A missing file yields the fallback mapping, an unreadable or malformed one the minimal list.
func LoadSlang(path string, log *logrus.Logger) *Vocabulary {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("file", path).Warn("Slang data not found, using fallback slang")
		return vocabularyFrom(fallbackSlang, SourceFallback)
	}
	if err == nil {
		var vocab *Vocabulary
		vocab, err = parseSlang(data)
		if err == nil {
			if vocab.Len() == 0 {
				log.WithField("file", path).Warn("Slang data has no usable terms, using fallback slang")
				return vocabularyFrom(fallbackSlang, SourceFallback)
			}
			log.WithFields(logrus.Fields{
				"file":  path,
				"terms": vocab.Len(),
			}).Info("Loaded slang terms")
			return vocab
		}
	}

	log.WithError(err).WithField("file", path).Warn("Failed to load slang data, using minimal slang")
	return vocabularyFrom(minimalSlang, SourceMinimal)
}

func parseSlang(data []byte) (*Vocabulary, error) {
	var file slangFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode slang data: %w", err)
	}

	meanings := make(map[string]string, len(file.Meanings)+len(file.FullData))
	for term, meaning := range file.Meanings {
		meanings[normalizeTerm(term)] = meaning
	}
	for _, row := range file.FullData {
		term := normalizeTerm(row.Slang)
		if _, exists := meanings[term]; !exists {
			meanings[term] = row.Meaning
		}
	}

	vocab := newVocabulary(SourceFile)
	for _, term := range file.Terms {
		term = normalizeTerm(term)
		vocab.add(term, meanings[term])
	}

	// older files only carry full_data or meanings
	if vocab.Len() == 0 {
		for _, row := range file.FullData {
			term := normalizeTerm(row.Slang)
			vocab.add(term, meanings[term])
		}
	}
	if vocab.Len() == 0 {
		terms := make([]string, 0, len(meanings))
		for term := range meanings {
			terms = append(terms, term)
		}
		sort.Strings(terms)
		for _, term := range terms {
			vocab.add(term, meanings[term])
		}
	}

	return vocab, nil
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
