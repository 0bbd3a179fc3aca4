package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/dataset"
	"github.com/brettboylen/reddit-simulator/models"
)

const (
	defaultArchiveLimit = 20
	maxArchiveLimit     = 100
)

// CommentGenerator produces AI comments
type CommentGenerator interface {
	Generate(ctx context.Context, postText string, mode models.Mode) (*models.GeneratedComment, error)
}

// Responder produces simulated human replies
type Responder interface {
	Respond(mode models.Mode, respondingToAuthor string) models.HumanReply
}

// Analytics exposes the running statistics
type Analytics interface {
	Snapshot() models.AnalyticsState
	Reset()
}

// ArchiveReader reads archived generated comments
type ArchiveReader interface {
	RecentComments(limit int) ([]models.ArchivedComment, error)
	CountByMode() (map[models.Mode]int, error)
}

// Handler serves the JSON API
type Handler struct {
	datasets  *dataset.Datasets
	generator CommentGenerator
	responder Responder
	analytics Analytics
	archive   ArchiveReader
	log       *logrus.Logger
}

// NewHandler creates a new handler; archive may be nil when archiving is disabled
func NewHandler(
	datasets *dataset.Datasets,
	generator CommentGenerator,
	responder Responder,
	analytics Analytics,
	archive ArchiveReader,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		datasets:  datasets,
		generator: generator,
		responder: responder,
		analytics: analytics,
		archive:   archive,
		log:       log,
	}
}

type generateCommentRequest struct {
	PostContent     string `json:"postContent"`
	ConstraintLevel string `json:"constraintLevel"`
}

type humanResponseRequest struct {
	AIComment struct {
		Author string `json:"author"`
	} `json:"aiComment"`
	ConstraintLevel string `json:"constraintLevel"`
}

type voteRequest struct {
	Type      string `json:"type"`
	ID        any    `json:"id"`
	Direction string `json:"direction"`
}

type postResponse struct {
	Post     models.Post      `json:"post"`
	Comments []models.Comment `json:"comments"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// GetPosts returns every post
func (h *Handler) GetPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.datasets.Reddit.Posts)
}

// GetPost returns one post with its seed comments
func (h *Handler) GetPost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "Post not found")
	}

	post, ok := h.datasets.Reddit.Post(id)
	if !ok {
		return errorJSON(c, http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, postResponse{
		Post:     post,
		Comments: h.datasets.Reddit.CommentsFor(id),
	})
}

// GetAnalytics returns the current running statistics
func (h *Handler) GetAnalytics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.analytics.Snapshot())
}

// ResetAnalytics clears the running statistics
func (h *Handler) ResetAnalytics(c echo.Context) error {
	h.analytics.Reset()
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Analytics reset successfully",
	})
}

// GenerateComment asks the text-generation service for a comment on a post
func (h *Handler) GenerateComment(c echo.Context) error {
	var req generateCommentRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	mode := models.ModeNormal
	if level := strings.ToLower(strings.TrimSpace(req.ConstraintLevel)); level != "" {
		mode = models.Mode(level)
		if !mode.Valid() {
			return errorJSON(c, http.StatusBadRequest, "constraintLevel must be one of normal, constrained, academic")
		}
	}

	// the upstream call runs to completion even if the client goes away
	ctx := context.WithoutCancel(c.Request().Context())

	comment, err := h.generator.Generate(ctx, req.PostContent, mode)
	if err != nil {
		h.log.WithError(err).WithField("mode", mode).Error("Comment generation failed")
		return errorJSON(c, http.StatusInternalServerError, "Failed to generate comment")
	}

	return c.JSON(http.StatusOK, comment)
}

// GenerateHumanResponse returns a canned human reply to an AI comment
func (h *Handler) GenerateHumanResponse(c echo.Context) error {
	var req humanResponseRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	reply := h.responder.Respond(models.ParseMode(req.ConstraintLevel), req.AIComment.Author)
	return c.JSON(http.StatusOK, reply)
}

// Vote simulates a vote; nothing is stored
func (h *Handler) Vote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	change := -1
	if req.Direction == "up" {
		change = 1
	}

	h.log.WithFields(logrus.Fields{
		"type":      req.Type,
		"id":        req.ID,
		"direction": req.Direction,
	}).Debug("Vote received")

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"change":  change,
	})
}

// GetPostsInfo reports what Reddit data was loaded
func (h *Handler) GetPostsInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.datasets.PostsInfo())
}

// GetSlang reports what slang vocabulary was loaded
func (h *Handler) GetSlang(c echo.Context) error {
	return c.JSON(http.StatusOK, h.datasets.SlangInfo())
}

// GetEmojis reports what emoji vocabulary was loaded
func (h *Handler) GetEmojis(c echo.Context) error {
	return c.JSON(http.StatusOK, h.datasets.EmojiInfo())
}

// GetGenerated returns the most recent archived comments
func (h *Handler) GetGenerated(c echo.Context) error {
	if h.archive == nil {
		return errorJSON(c, http.StatusServiceUnavailable, "Comment archive is disabled")
	}

	limit := defaultArchiveLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return errorJSON(c, http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}
	if limit > maxArchiveLimit {
		limit = maxArchiveLimit
	}

	comments, err := h.archive.RecentComments(limit)
	if err != nil {
		h.log.WithError(err).Error("Failed to read comment archive")
		return errorJSON(c, http.StatusInternalServerError, "Failed to read comment archive")
	}

	counts, err := h.archive.CountByMode()
	if err != nil {
		h.log.WithError(err).Error("Failed to count archived comments")
		return errorJSON(c, http.StatusInternalServerError, "Failed to read comment archive")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"comments": comments,
		"counts":   counts,
	})
}
