package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/models"
)

// RedditData holds the posts and their seed comments
type RedditData struct {
	Posts      []models.Post
	Comments   map[int][]models.Comment
	Subreddits []string
	FetchDate  string
	Source     string
	index      map[int]int
}

// redditFile is the shape written by the post fetch script
type redditFile struct {
	TotalPosts int                         `json:"total_posts"`
	FetchDate  string                      `json:"fetch_date"`
	Subreddits []string                    `json:"subreddits"`
	Source     string                      `json:"source"`
	Posts      []models.Post               `json:"posts"`
	Comments   map[string][]models.Comment `json:"comments"`
}

// LoadReddit reads posts and comments from path, falling back to a fixed set
func LoadReddit(path string, log *logrus.Logger) *RedditData {
	data, err := os.ReadFile(path)
	if err == nil {
		var reddit *RedditData
		reddit, err = parseReddit(data, log)
		if err == nil {
			log.WithFields(logrus.Fields{
				"file":     path,
				"posts":    len(reddit.Posts),
				"comments": reddit.TotalComments(),
			}).Info("Loaded Reddit posts")
			return reddit
		}
	}

	log.WithError(err).WithField("file", path).Warn("Failed to load Reddit data, using fallback posts")
	return newRedditData(fallbackPosts(), fallbackComments(), SourceFallback)
}

func parseReddit(data []byte, log *logrus.Logger) (*RedditData, error) {
	var file redditFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode reddit data: %w", err)
	}

	posts := make([]models.Post, 0, len(file.Posts))
	seen := make(map[int]bool, len(file.Posts))
	for _, post := range file.Posts {
		if post.ID <= 0 || seen[post.ID] || strings.TrimSpace(post.Title) == "" {
			log.WithField("post_id", post.ID).Debug("Skipping invalid post")
			continue
		}
		seen[post.ID] = true
		posts = append(posts, normalizePost(post))
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("no valid posts in reddit data")
	}

	comments := make(map[int][]models.Comment, len(file.Comments))
	for key, list := range file.Comments {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || !seen[id] {
			log.WithField("key", key).Debug("Skipping comments for unknown post")
			continue
		}
		valid := make([]models.Comment, 0, len(list))
		for _, comment := range list {
			if strings.TrimSpace(comment.Text) == "" {
				continue
			}
			if comment.Author == "" {
				comment.Author = "unknown_user"
			}
			valid = append(valid, comment)
		}
		comments[id] = valid
	}

	source := SourceFile
	if file.Source != "" {
		source = file.Source
	}

	reddit := newRedditData(posts, comments, source)
	reddit.FetchDate = file.FetchDate
	if len(file.Subreddits) > 0 {
		reddit.Subreddits = file.Subreddits
	}
	return reddit, nil
}

// normalizePost substitutes defaults for fields the producer may have left out
func normalizePost(post models.Post) models.Post {
	if post.Author == "" {
		post.Author = "unknown_user"
	}
	if post.Time == "" {
		post.Time = "just now"
	}
	if post.Image != nil && *post.Image == "" {
		post.Image = nil
	}
	switch post.Type {
	case models.PostTypeText, models.PostTypeImage, models.PostTypeLink:
	default:
		if post.Image != nil {
			post.Type = models.PostTypeImage
		} else {
			post.Type = models.PostTypeText
		}
	}
	return post
}

func newRedditData(posts []models.Post, comments map[int][]models.Comment, source string) *RedditData {
	r := &RedditData{
		Posts:    posts,
		Comments: comments,
		Source:   source,
		index:    make(map[int]int, len(posts)),
	}

	subs := make(map[string]bool)
	for i, post := range posts {
		r.index[post.ID] = i
		if post.Subreddit != "" && !subs[post.Subreddit] {
			subs[post.Subreddit] = true
			r.Subreddits = append(r.Subreddits, post.Subreddit)
		}
	}
	sort.Strings(r.Subreddits)
	return r
}

// Post looks up a post by id
func (r *RedditData) Post(id int) (models.Post, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Post{}, false
	}
	return r.Posts[i], true
}

// CommentsFor returns the seed comments of a post, never nil
func (r *RedditData) CommentsFor(id int) []models.Comment {
	comments, ok := r.Comments[id]
	if !ok {
		return []models.Comment{}
	}
	return comments
}

// TotalComments counts every seed comment
func (r *RedditData) TotalComments() int {
	total := 0
	for _, comments := range r.Comments {
		total += len(comments)
	}
	return total
}
