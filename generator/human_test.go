package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brettboylen/reddit-simulator/models"
	"github.com/brettboylen/reddit-simulator/sampler"
)

func TestRespondUsesModePool(t *testing.T) {
	h := NewHumanResponder(sampler.New(9))

	for _, mode := range models.Modes {
		t.Run(string(mode), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				reply := h.Respond(mode, "neural_navigator")

				assert.Contains(t, responses[mode], reply.Text)
				assert.Contains(t, humanAuthors, reply.Author)
				assert.GreaterOrEqual(t, reply.Upvotes, minHumanUpvotes)
				assert.LessOrEqual(t, reply.Upvotes, maxHumanUpvotes)
				assert.Equal(t, "now", reply.Time)
				assert.True(t, reply.IsHuman)
				assert.Equal(t, "neural_navigator", reply.ReplyTo)
				assert.NotEmpty(t, reply.ID)
			}
		})
	}
}

func TestRespondUnknownModeUsesNormalPool(t *testing.T) {
	h := NewHumanResponder(sampler.New(10))

	reply := h.Respond(models.Mode("gibberish"), "someone")

	assert.Contains(t, responses[models.ModeNormal], reply.Text)
}

func TestRespondMissingAuthor(t *testing.T) {
	h := NewHumanResponder(sampler.New(11))

	reply := h.Respond(models.ModeNormal, "  ")

	assert.Equal(t, "anonymous", reply.ReplyTo)
}

func TestEveryModeHasResponses(t *testing.T) {
	for _, mode := range models.Modes {
		assert.NotEmpty(t, responses[mode], string(mode))
	}
}
