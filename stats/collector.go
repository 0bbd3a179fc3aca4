package stats

import (
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/dataset"
	"github.com/brettboylen/reddit-simulator/models"
)

// seriesWindow is how many points the emoji and length series keep
const seriesWindow = 50

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Collector aggregates running statistics over generated comments
type Collector struct {
	state models.AnalyticsState
	now   func() time.Time
	log   *logrus.Logger
	mutex sync.RWMutex
}

// NewCollector creates a new collector with empty state
func NewCollector(log *logrus.Logger) *Collector {
	return &Collector{
		state: models.NewAnalyticsState(),
		now:   time.Now,
		log:   log,
	}
}

// Analyze scores text without touching the collector state
func (c *Collector) Analyze(text string, mode models.Mode) models.CommentAnalysis {
	words := Tokenize(text)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	diversity := 0.0
	if len(words) > 0 {
		diversity = float64(len(unique)) / float64(len(words))
	}

	return models.CommentAnalysis{
		WordCount:           len(words),
		UniqueWordCount:     len(unique),
		VocabularyDiversity: diversity,
		EmojiCount:          dataset.CountEmoji(text),
		CharacterCount:      utf8.RuneCountInString(text),
		ConstraintLevel:     models.ParseMode(string(mode)),
		Timestamp:           c.now(),
	}
}

// Tokenize splits text into lower-cased runs of letters, digits and underscores
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Fold adds one analysis to the running statistics
func (c *Collector) Fold(analysis models.CommentAnalysis) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	mode := models.ParseMode(string(analysis.ConstraintLevel))
	analysis.ConstraintLevel = mode
	c.state.Comments = append(c.state.Comments, analysis)

	c.state.ConstraintDistribution[mode]++
	n := float64(c.state.ConstraintDistribution[mode])

	// incremental mean: equivalent to the plain mean over every fold of this mode
	c.state.AverageUniqueWords[mode] = runningMean(c.state.AverageUniqueWords[mode], n, float64(analysis.UniqueWordCount))
	c.state.AverageTotalWords[mode] = runningMean(c.state.AverageTotalWords[mode], n, float64(analysis.WordCount))
	c.state.AverageCommentLength[mode] = runningMean(c.state.AverageCommentLength[mode], n, float64(analysis.CharacterCount))

	c.state.EmojiUsage = appendWindow(c.state.EmojiUsage, models.SeriesPoint{
		Timestamp:  analysis.Timestamp,
		Value:      analysis.EmojiCount,
		Constraint: mode,
	})
	c.state.CommentLengths = appendWindow(c.state.CommentLengths, models.SeriesPoint{
		Timestamp:  analysis.Timestamp,
		Value:      analysis.CharacterCount,
		Constraint: mode,
	})

	c.log.WithFields(logrus.Fields{
		"mode":         mode,
		"mode_count":   int(n),
		"total":        len(c.state.Comments),
		"word_count":   analysis.WordCount,
		"unique_words": analysis.UniqueWordCount,
		"emoji_count":  analysis.EmojiCount,
	}).Debug("Analytics updated")
}

// Record analyzes text and folds the result in one step
func (c *Collector) Record(text string, mode models.Mode) models.CommentAnalysis {
	analysis := c.Analyze(text, mode)
	c.Fold(analysis)
	return analysis
}

// Reset discards every statistic collected so far
func (c *Collector) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.state = models.NewAnalyticsState()
	c.log.Info("Analytics reset")
}

// Snapshot returns a copy of the current statistics
// note: slices and maps are copied so callers can serialize without holding the lock
func (c *Collector) Snapshot() models.AnalyticsState {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return models.AnalyticsState{
		Comments:               append(make([]models.CommentAnalysis, 0, len(c.state.Comments)), c.state.Comments...),
		AverageUniqueWords:     copyMap(c.state.AverageUniqueWords),
		AverageTotalWords:      copyMap(c.state.AverageTotalWords),
		AverageCommentLength:   copyMap(c.state.AverageCommentLength),
		ConstraintDistribution: copyMap(c.state.ConstraintDistribution),
		EmojiUsage:             append(make([]models.SeriesPoint, 0, len(c.state.EmojiUsage)), c.state.EmojiUsage...),
		CommentLengths:         append(make([]models.SeriesPoint, 0, len(c.state.CommentLengths)), c.state.CommentLengths...),
	}
}

func runningMean(oldMean, n, value float64) float64 {
	return (oldMean*(n-1) + value) / n
}

// appendWindow appends p and drops the oldest points beyond seriesWindow
func appendWindow(series []models.SeriesPoint, p models.SeriesPoint) []models.SeriesPoint {
	series = append(series, p)
	if over := len(series) - seriesWindow; over > 0 {
		series = append(series[:0:0], series[over:]...)
	}
	return series
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
