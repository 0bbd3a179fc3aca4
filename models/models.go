package models

import (
	"time"
)

// Post represents a Reddit post served to the frontend
type Post struct {
	ID              int     `json:"id"`
	Subreddit       string  `json:"subreddit"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Time            string  `json:"time"`
	Upvotes         int     `json:"upvotes"`
	Comments        int     `json:"comments"`
	Text            string  `json:"text"`
	Type            string  `json:"type"`
	Image           *string `json:"image"`
	URL             string  `json:"url,omitempty"`
	RedditID        string  `json:"reddit_id,omitempty"`
	RedditPermalink string  `json:"reddit_permalink,omitempty"`
}

// post types accepted from the dataset
const (
	PostTypeText  = "text"
	PostTypeImage = "image"
	PostTypeLink  = "link"
)

// Comment represents a seed comment attached to a post
type Comment struct {
	Author  string `json:"author"`
	Text    string `json:"text"`
	Upvotes int    `json:"upvotes"`
	Time    string `json:"time"`
}

// CommentAnalysis is computed once per generated comment and never mutated afterwards
type CommentAnalysis struct {
	WordCount           int       `json:"wordCount"`
	UniqueWordCount     int       `json:"uniqueWordCount"`
	VocabularyDiversity float64   `json:"vocabularyDiversity"`
	EmojiCount          int       `json:"emojiCount"`
	CharacterCount      int       `json:"characterCount"`
	ConstraintLevel     Mode      `json:"constraintLevel"`
	Timestamp           time.Time `json:"timestamp"`
}

// SeriesPoint is one entry of a bounded analytics time series
type SeriesPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	Value      int       `json:"value"`
	Constraint Mode      `json:"constraint"`
}

// AnalyticsState holds the running statistics over every generated comment
type AnalyticsState struct {
	Comments               []CommentAnalysis `json:"comments"`
	AverageUniqueWords     map[Mode]float64  `json:"averageUniqueWords"`
	AverageTotalWords      map[Mode]float64  `json:"averageTotalWords"`
	AverageCommentLength   map[Mode]float64  `json:"averageCommentLength"`
	ConstraintDistribution map[Mode]int      `json:"constraintDistribution"`
	EmojiUsage             []SeriesPoint     `json:"emojiUsage"`
	CommentLengths         []SeriesPoint     `json:"commentLengths"`
}

// NewAnalyticsState returns an empty state with every mode bucket zeroed
func NewAnalyticsState() AnalyticsState {
	state := AnalyticsState{
		Comments:               make([]CommentAnalysis, 0),
		AverageUniqueWords:     make(map[Mode]float64, len(Modes)),
		AverageTotalWords:      make(map[Mode]float64, len(Modes)),
		AverageCommentLength:   make(map[Mode]float64, len(Modes)),
		ConstraintDistribution: make(map[Mode]int, len(Modes)),
		EmojiUsage:             make([]SeriesPoint, 0),
		CommentLengths:         make([]SeriesPoint, 0),
	}
	for _, mode := range Modes {
		state.AverageUniqueWords[mode] = 0
		state.AverageTotalWords[mode] = 0
		state.AverageCommentLength[mode] = 0
		state.ConstraintDistribution[mode] = 0
	}
	return state
}

// GeneratedComment is an AI comment returned to the client
type GeneratedComment struct {
	ID              string          `json:"id"`
	Author          string          `json:"author"`
	Text            string          `json:"text"`
	Upvotes         int             `json:"upvotes"`
	Time            string          `json:"time"`
	IsAI            bool            `json:"isAI"`
	ConstraintLevel Mode            `json:"constraintLevel"`
	Analysis        CommentAnalysis `json:"analysis"`
}

// HumanReply is a simulated human response to a generated comment
type HumanReply struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Text    string `json:"text"`
	Upvotes int    `json:"upvotes"`
	Time    string `json:"time"`
	IsHuman bool   `json:"isHuman"`
	ReplyTo string `json:"replyTo"`
}

// ArchivedComment is a generated comment as stored in the archive
type ArchivedComment struct {
	ID              string    `json:"id"`
	Author          string    `json:"author"`
	Text            string    `json:"text"`
	ConstraintLevel Mode      `json:"constraintLevel"`
	Upvotes         int       `json:"upvotes"`
	WordCount       int       `json:"wordCount"`
	UniqueWordCount int       `json:"uniqueWordCount"`
	EmojiCount      int       `json:"emojiCount"`
	CharacterCount  int       `json:"characterCount"`
	CreatedAt       time.Time `json:"createdAt"`
}
