package dataset

import "github.com/brettboylen/reddit-simulator/models"

// fallbackSlang is used when slang_data.json is missing
var fallbackSlang = []entry{
	{"tbh", "to be honest"},
	{"ngl", "not gonna lie"},
	{"fr", "for real"},
	{"lowkey", "somewhat or secretly"},
	{"highkey", "obviously or very much"},
	{"deadass", "seriously or honestly"},
	{"no cap", "no lie, for real"},
	{"periodt", "period, end of discussion"},
	{"slay", "to do something really well"},
	{"bestie", "best friend"},
	{"iconic", "legendary or memorable"},
	{"fire", "awesome or excellent"},
	{"based", "agreeable or admirable"},
	{"cringe", "embarrassing or awkward"},
	{"mid", "mediocre or average"},
	{"bussin", "really good"},
	{"sheesh", "expression of amazement"},
	{"fam", "family or close friends"},
	{"bet", "agreement or confirmation"},
	{"cap", "lie or false statement"},
	{"facts", "truth or agreement"},
	{"tea", "gossip or truth"},
	{"stan", "to be a big fan of"},
	{"vibe", "feeling or mood"},
	{"sus", "suspicious"},
	{"rizz", "charisma"},
	{"hits different", "is uniquely good"},
	{"touch grass", "go outside"},
}

// minimalSlang is used when slang_data.json exists but cannot be parsed
var minimalSlang = []entry{
	{"tbh", "to be honest"},
	{"ngl", "not gonna lie"},
	{"fr", "for real"},
	{"lowkey", "somewhat or secretly"},
	{"slay", "to do something really well"},
	{"bussin", "really good"},
}

// fallbackEmoji is used when the emoji CSV is missing or unusable
var fallbackEmoji = []entry{
	{"😀", "grinning face, happy"},
	{"😂", "face with tears of joy, laughing hard"},
	{"😍", "smiling face with heart-eyes, love or adoration"},
	{"😭", "loudly crying face, overwhelmed"},
	{"😎", "smiling face with sunglasses, cool"},
	{"😅", "grinning face with sweat, nervous relief"},
	{"😊", "smiling face with smiling eyes, warm happiness"},
	{"😡", "pouting face, angry"},
	{"😱", "face screaming in fear, shocked"},
	{"😴", "sleeping face, bored or tired"},
	{"😤", "face with steam from nose, frustrated"},
	{"😬", "grimacing face, awkward"},
	{"🙄", "face with rolling eyes, unimpressed"},
	{"🙏", "folded hands, please or thank you"},
	{"🔥", "fire, awesome or hot"},
	{"💯", "hundred points, totally agree"},
	{"👀", "eyes, paying attention or suspicious"},
	{"👍", "thumbs up, approval"},
	{"💀", "skull, dying of laughter"},
	{"💅", "nail polish, unbothered confidence"},
	{"👑", "crown, royalty or winner"},
	{"💖", "sparkling heart, affection"},
	{"🎉", "party popper, celebration"},
	{"🚀", "rocket, going up fast"},
	{"🌈", "rainbow, positivity"},
	{"✨", "sparkles, magic or emphasis"},
	{"⚡", "high voltage, energy"},
	{"☕", "hot beverage, tea or gossip"},
	{"❤️", "red heart, love"},
	{"✅", "check mark button, done or correct"},
}

// EmergencySlang and EmergencyEmoji are sampled when a loaded vocabulary is empty
var (
	EmergencySlang = []string{"fr", "ngl", "lowkey", "no cap", "bet"}
	EmergencyEmoji = []string{"😂", "🔥", "💯", "😭", "👀"}
)

func strPtr(s string) *string {
	return &s
}

func fallbackPosts() []models.Post {
	return []models.Post{
		{
			ID:        1,
			Subreddit: "science",
			Title:     "Breakthrough study reveals how social media algorithms fundamentally alter human cognitive patterns",
			Author:    "cognitive_researcher",
			Time:      "4 hours ago",
			Upvotes:   1847,
			Comments:  423,
			Text:      "A comprehensive study tracking 50,000 participants reveals how algorithmic content curation affects neural pathways and critical thinking abilities.",
			Type:      models.PostTypeText,
		},
		{
			ID:        2,
			Subreddit: "blurrypicturesofcats",
			Title:     "My cat moving at the speed of light",
			Author:    "cat_photographer",
			Time:      "2 hours ago",
			Upvotes:   2341,
			Comments:  89,
			Type:      models.PostTypeImage,
			Image:     strPtr("https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?w=600&h=400&fit=crop"),
		},
		{
			ID:        3,
			Subreddit: "dbz",
			Title:     "Goku vs Superman: Who would win in a real fight?",
			Author:    "anime_debater",
			Time:      "6 hours ago",
			Upvotes:   756,
			Comments:  234,
			Text:      "Settling this debate once and for all with power scaling analysis...",
			Type:      models.PostTypeText,
		},
		{
			ID:        4,
			Subreddit: "unpopularopinion",
			Title:     "Remote work has made most meetings worse, not better",
			Author:    "calendar_survivor",
			Time:      "3 hours ago",
			Upvotes:   1203,
			Comments:  512,
			Text:      "Everyone said video calls would make meetings shorter. Instead we just schedule more of them and nobody turns their camera on.",
			Type:      models.PostTypeText,
		},
		{
			ID:        5,
			Subreddit: "cozyplaces",
			Title:     "Finally finished my reading nook after six months",
			Author:    "nook_builder",
			Time:      "8 hours ago",
			Upvotes:   3120,
			Comments:  147,
			Type:      models.PostTypeImage,
			Image:     strPtr("https://images.unsplash.com/photo-1507138451611-3001135909fa?w=600&h=400&fit=crop"),
		},
	}
}

func fallbackComments() map[int][]models.Comment {
	return map[int][]models.Comment{
		1: {
			{Author: "research_fan", Text: "This is fascinating research. The implications for understanding digital communication are huge.", Upvotes: 45, Time: "2 hours ago"},
			{Author: "skeptical_scientist", Text: "While interesting, I wonder about the sample size and methodology. Need to see the peer review.", Upvotes: 23, Time: "1 hour ago"},
		},
		2: {
			{Author: "cat_lover_99", Text: "This is art. Pure, blurry art.", Upvotes: 67, Time: "1 hour ago"},
		},
		3: {
			{Author: "power_scaler", Text: "Goku wins easily. Ultra Instinct is basically unbeatable.", Upvotes: 34, Time: "3 hours ago"},
			{Author: "superman_fan", Text: "Superman has no limits though. He always finds a way to win.", Upvotes: 28, Time: "2 hours ago"},
		},
		4: {
			{Author: "async_advocate", Text: "Half of my meetings could have been a two line message.", Upvotes: 88, Time: "2 hours ago"},
			{Author: "team_lead_42", Text: "Counterpoint: without meetings nobody reads the messages either.", Upvotes: 31, Time: "1 hour ago"},
		},
		5: {
			{Author: "bookworm_jen", Text: "That lamp is perfect. Where did you find it?", Upvotes: 52, Time: "5 hours ago"},
		},
	}
}
