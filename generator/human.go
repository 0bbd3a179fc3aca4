package generator

import (
	"strings"

	"github.com/google/uuid"

	"github.com/brettboylen/reddit-simulator/models"
	"github.com/brettboylen/reddit-simulator/sampler"
)

const (
	minHumanUpvotes = 1
	maxHumanUpvotes = 30
)

var humanAuthors = []string{
	"just_a_lurker",
	"coffee_and_code",
	"throwaway_8812",
	"midnight_reader",
	"casual_observer",
	"grumpy_gardener",
	"bike_commuter",
	"houseplant_hoarder",
	"retired_librarian",
	"weekend_hiker",
}

// responses are the canned reply pools per constraint mode
var responses = map[models.Mode][]string{
	models.ModeNormal: {
		"Totally agree with this take.",
		"Good point, hadn't thought about it that way.",
		"This is the comment I was looking for.",
		"Fair, but I think it depends on the situation.",
		"Underrated comment right here.",
		"Came here to say exactly this.",
	},
	models.ModeConstrained: {
		"I had to read that three times and I still don't know what you said.",
		"Can someone translate this for those of us over 30?",
		"The emoji density in this comment is unreal.",
		"Is this English? Genuinely asking.",
		"I feel old reading this.",
		"This reads like a group chat at 2am.",
	},
	models.ModeAcademic: {
		"Did you just write a thesis in the comments?",
		"Citation needed, professor.",
		"This reads like a peer-reviewed paper and I'm here for it.",
		"Sir, this is a Reddit thread.",
		"I understood maybe half of those words.",
		"Ok but can you explain it like I'm five?",
	},
}

// HumanResponder picks canned human replies to generated comments
type HumanResponder struct {
	sampler *sampler.Sampler
}

// NewHumanResponder creates a new responder
func NewHumanResponder(s *sampler.Sampler) *HumanResponder {
	return &HumanResponder{sampler: s}
}

// Respond builds a reply to respondingToAuthor using the pool for mode.
// Unknown modes use the normal pool.
func (h *HumanResponder) Respond(mode models.Mode, respondingToAuthor string) models.HumanReply {
	pool := responses[models.ParseMode(string(mode))]

	replyTo := strings.TrimSpace(respondingToAuthor)
	if replyTo == "" {
		replyTo = "anonymous"
	}

	return models.HumanReply{
		ID:      uuid.NewString(),
		Author:  h.sampler.Pick(humanAuthors),
		Text:    h.sampler.Pick(pool),
		Upvotes: h.sampler.IntRange(minHumanUpvotes, maxHumanUpvotes),
		Time:    timeLabelNow,
		IsHuman: true,
		ReplyTo: replyTo,
	}
}
