package service

import (
	"sort"
	"strings"
)

// KBEntry is one canned answer picked by keyword overlap with the question.
type KBEntry struct {
	ID       string
	Keywords []string
	Answer   string
}

type KnowledgeBase struct {
	entries  []KBEntry
	fallback string
}

// DefaultKnowledgeBase covers the questions users ask most while browsing.
func DefaultKnowledgeBase() *KnowledgeBase {
	return NewKnowledgeBase([]KBEntry{
		{
			ID:       "free-items",
			Keywords: []string{"free", "giveaway", "donate", "no cost"},
			Answer:   "Pick \"Free\" in the type filter to see items people are giving away. Free items always show up regardless of the price range you choose.",
		},
		{
			ID:       "renting",
			Keywords: []string{"rent", "borrow", "hire", "rental"},
			Answer:   "Renting keeps items in use instead of buying new. Choose \"Rent\" in the type filter and check the listing's availability dates before you inquire.",
		},
		{
			ID:       "exchange",
			Keywords: []string{"exchange", "swap", "trade", "barter"},
			Answer:   "Exchange listings are open to swaps. Send the owner an inquiry describing what you can offer in return.",
		},
		{
			ID:       "nearby",
			Keywords: []string{"near", "nearby", "close", "distance", "map", "local"},
			Answer:   "Open the map to see listings sorted by distance from you. Buying locally cuts delivery emissions and lets you check the item in person.",
		},
		{
			ID:       "selling",
			Keywords: []string{"sell", "list", "post", "upload", "my product"},
			Answer:   "Use \"Add product\" to create a listing. Add a clear title, a few photos, the condition, and your location so nearby buyers can find it.",
		},
		{
			ID:       "condition",
			Keywords: []string{"condition", "quality", "used", "second hand", "secondhand", "refurbished"},
			Answer:   "Every listing states its condition: new, excellent, good, or fair. Ask the owner for extra photos through an inquiry if you are unsure.",
		},
		{
			ID:       "payments",
			Keywords: []string{"pay", "payment", "card", "checkout", "price"},
			Answer:   "Payments are processed securely by card. You can filter by price range and sort from lowest to highest price while browsing.",
		},
		{
			ID:       "sustainability",
			Keywords: []string{"eco", "sustainable", "green", "environment", "carbon", "co2", "recycle"},
			Answer:   "Choosing pre-owned, rented, or swapped items keeps products out of landfill and avoids the emissions of manufacturing something new.",
		},
		{
			ID:       "safety",
			Keywords: []string{"safe", "scam", "meet", "trust", "fraud"},
			Answer:   "Meet in a public place, inspect the item before paying, and keep the conversation inside the app's inquiries.",
		},
	}, "I can help you find second-hand, free, rental, and swap listings near you. Try asking about free items, renting, or what is available nearby.")
}

func NewKnowledgeBase(entries []KBEntry, fallback string) *KnowledgeBase {
	return &KnowledgeBase{entries: entries, fallback: fallback}
}

// Answer returns the best matching entry's answer, or the generic fallback
// when no keyword matches. Ties go to the entry listed first.
func (kb *KnowledgeBase) Answer(question string) string {
	matches := kb.Match(question, 1)
	if len(matches) == 0 {
		return kb.fallback
	}
	return matches[0].Answer
}

// Match returns up to limit entries with at least one keyword hit, best first.
func (kb *KnowledgeBase) Match(question string, limit int) []KBEntry {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		entry KBEntry
		score int
		order int
	}

	var hits []scored
	for i, entry := range kb.entries {
		score := 0
		for _, kw := range entry.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(q, kw) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{entry: entry, score: score, order: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]KBEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}
