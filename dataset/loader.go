// Package dataset loads the optional slang, emoji and Reddit data sources.
// Every source degrades to a built-in fallback; loading never fails.
package dataset

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Paths points at the three optional data files
type Paths struct {
	Slang  string
	Emoji  string
	Reddit string
}

// Datasets is everything loaded at startup; it is read-only afterwards
type Datasets struct {
	Slang  *Vocabulary
	Emoji  *Vocabulary
	Reddit *RedditData
}

// Load reads the three sources concurrently
func Load(ctx context.Context, paths Paths, log *logrus.Logger) *Datasets {
	ds := &Datasets{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		ds.Slang = LoadSlang(paths.Slang, log)
		return nil
	})
	g.Go(func() error {
		ds.Emoji = LoadEmoji(paths.Emoji, log)
		return nil
	})
	g.Go(func() error {
		ds.Reddit = LoadReddit(paths.Reddit, log)
		return nil
	})
	// loaders absorb their own errors
	_ = g.Wait()

	log.WithFields(logrus.Fields{
		"slang_terms":  ds.Slang.Len(),
		"slang_source": ds.Slang.Source,
		"emojis":       ds.Emoji.Len(),
		"emoji_source": ds.Emoji.Source,
		"posts":        len(ds.Reddit.Posts),
		"posts_source": ds.Reddit.Source,
	}).Info("Datasets loaded")

	return ds
}

// PostsInfo summarizes the loaded Reddit data
type PostsInfo struct {
	TotalPosts        int      `json:"totalPosts"`
	PostsWithComments int      `json:"postsWithComments"`
	TotalComments     int      `json:"totalComments"`
	Subreddits        []string `json:"subreddits"`
	FetchDate         string   `json:"fetchDate,omitempty"`
	Source            string   `json:"source"`
}

// VocabularyInfo summarizes a loaded vocabulary
type VocabularyInfo struct {
	Total   int               `json:"total"`
	Source  string            `json:"source"`
	Sample  []string          `json:"sample"`
	Meaning map[string]string `json:"meanings"`
}

// sampleSize is how many tokens the diagnostic endpoints show
const sampleSize = 20

// PostsInfo reports totals for the Reddit data
func (d *Datasets) PostsInfo() PostsInfo {
	withComments := 0
	for _, comments := range d.Reddit.Comments {
		if len(comments) > 0 {
			withComments++
		}
	}
	subreddits := d.Reddit.Subreddits
	if subreddits == nil {
		subreddits = []string{}
	}
	return PostsInfo{
		TotalPosts:        len(d.Reddit.Posts),
		PostsWithComments: withComments,
		TotalComments:     d.Reddit.TotalComments(),
		Subreddits:        subreddits,
		FetchDate:         d.Reddit.FetchDate,
		Source:            d.Reddit.Source,
	}
}

// SlangInfo reports the first slang terms and their meanings
func (d *Datasets) SlangInfo() VocabularyInfo {
	return vocabularyInfo(d.Slang)
}

// EmojiInfo reports the first emoji and their meanings
func (d *Datasets) EmojiInfo() VocabularyInfo {
	return vocabularyInfo(d.Emoji)
}

func vocabularyInfo(v *Vocabulary) VocabularyInfo {
	n := sampleSize
	if n > v.Len() {
		n = v.Len()
	}
	sample := make([]string, n)
	copy(sample, v.Terms[:n])

	meanings := make(map[string]string, n)
	for _, token := range sample {
		meanings[token] = v.Meanings[token]
	}

	return VocabularyInfo{
		Total:   v.Len(),
		Source:  v.Source,
		Sample:  sample,
		Meaning: meanings,
	}
}
