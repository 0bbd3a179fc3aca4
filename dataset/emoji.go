package dataset

// emojiRanges is the code point set used both to filter the emoji dataset
// and to count emoji in generated text.
var emojiRanges = [...]struct{ lo, hi rune }{
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F300, 0x1F5FF}, // symbols & pictographs
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F1E0, 0x1F1FF}, // regional indicators
	{0x2600, 0x26FF},   // misc symbols
	{0x2700, 0x27BF},   // dingbats
}

// IsEmoji reports whether r falls in one of the emoji ranges
func IsEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r >= rg.lo && r <= rg.hi {
			return true
		}
	}
	return false
}

// CountEmoji counts the code points of s that are emoji
func CountEmoji(s string) int {
	count := 0
	for _, r := range s {
		if IsEmoji(r) {
			count++
		}
	}
	return count
}

// ContainsEmoji reports whether s has at least one emoji code point
func ContainsEmoji(s string) bool {
	for _, r := range s {
		if IsEmoji(r) {
			return true
		}
	}
	return false
}
