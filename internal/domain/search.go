package domain

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier word is better)
	ScorePositionBonus = 10.0

	// Short titles get a small boost
	ScoreLengthBonus = 5.0

	// Whole-title match bonus
	ScoreExactTitleBonus = 200.0

	// Play counter contribution to the final score
	ScoreUsageWeight = 0.1
)

// Entry is a flattened catalog entry, the unit of search.
type Entry struct {
	Category   string `json:"category"`
	Kind       Kind   `json:"kind"`
	Title      string `json:"title"`
	ExternalID string `json:"id,omitempty"`
	Filename   string `json:"file,omitempty"`
}

// Entries flattens the catalog in display order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, c.EntryCount())
	for _, cat := range c.Categories {
		for _, v := range cat.Videos {
			entries = append(entries, Entry{Category: cat.Slug, Kind: KindVideo, Title: v.Title, ExternalID: v.ExternalID})
		}
		for _, img := range cat.Images {
			entries = append(entries, Entry{Category: cat.Slug, Kind: KindImage, Title: img.Title, Filename: img.Filename})
		}
	}
	return entries
}

// Query is a parsed search input.
type Query struct {
	Raw       string   // normalized input, single-spaced
	Fragments []string // space-separated, normalized fragments
}

// ParseQuery parses user input into a structured query.
// Example: "  Champions   TCG " -> Raw "champions tcg", Fragments ["champions", "tcg"]
func ParseQuery(input string) *Query {
	fields := strings.Fields(strings.ToLower(input))
	q := &Query{Raw: strings.Join(fields, " ")}
	for _, f := range fields {
		if n := normalizeFragment(f); n != "" {
			q.Fragments = append(q.Fragments, n)
		}
	}
	return q
}

// TitleFragments splits a title into normalized words.
// Example: "Why Did Shrapnel Fail ?" -> ["why", "did", "shrapnel", "fail"]
func TitleFragments(title string) []string {
	fields := strings.Fields(title)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := normalizeFragment(f); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Candidate is an entry with its match score.
type Candidate struct {
	Entry        Entry   `json:"entry"`
	LexicalScore float64 `json:"lexical_score"`
	UsageScore   float64 `json:"usage_score"`
	TotalScore   float64 `json:"score"`
}

// Score calculates the match score of a title against a query.
// Every query fragment has to match some word of the title.
func Score(query *Query, title string) float64 {
	if query == nil || len(query.Fragments) == 0 {
		return 0.0
	}

	words := TitleFragments(title)
	if len(words) == 0 {
		return 0.0
	}

	if query.Raw == strings.Join(strings.Fields(strings.ToLower(title)), " ") {
		return ScoreExactMatch + ScoreExactTitleBonus
	}

	var totalScore float64
	for _, qFrag := range query.Fragments {
		best := 0.0
		for i, word := range words {
			if s := scoreFragment(qFrag, word, i); s > best {
				best = s
			}
		}
		if best == 0.0 {
			return 0.0
		}
		totalScore += best
	}

	if len(words) < 5 {
		totalScore += ScoreLengthBonus
	}

	return totalScore
}

// scoreFragment scores a single query fragment against a title word
func scoreFragment(queryFrag, word string, position int) float64 {
	if queryFrag == "" || word == "" {
		return 0.0
	}

	if queryFrag == word {
		return ScoreExactMatch + calculatePositionBonus(position)
	}

	if strings.HasPrefix(word, queryFrag) {
		return ScorePrefixMatch + calculatePositionBonus(position)
	}

	if strings.Contains(word, queryFrag) {
		index := strings.Index(word, queryFrag)
		substringBonus := ScorePositionBonus * (1.0 - float64(index)/float64(len(word)))
		return ScoreSubstringMatch + substringBonus
	}

	// Fuzzy match only for fragments long enough to mean something
	if len(queryFrag) >= 3 {
		similarity := calculateSimilarity(queryFrag, word)
		if similarity > 0.5 {
			return ScoreFuzzyMatch * similarity
		}
	}

	return 0.0
}

// calculatePositionBonus gives bonus for earlier positions
func calculatePositionBonus(position int) float64 {
	return ScorePositionBonus * math.Exp(-float64(position)*0.3)
}

// calculateSimilarity is the ratio of query characters found in the word
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}

	matches := 0
	for _, c := range s1 {
		if strings.ContainsRune(s2, c) {
			matches++
		}
	}

	return float64(matches) / float64(len(s1))
}

// RankCandidates ranks entries by lexical score plus play count.
// plays may be nil.
func RankCandidates(query *Query, entries []Entry, plays func(id string) int64) []*Candidate {
	candidates := make([]*Candidate, 0, len(entries))

	for _, entry := range entries {
		lexicalScore := Score(query, entry.Title)
		if lexicalScore == 0.0 {
			continue
		}

		// Logarithmic so popular videos cannot drown lexical matches
		usageScore := 0.0
		if plays != nil && entry.Kind == KindVideo {
			if n := plays(entry.ExternalID); n > 0 {
				usageScore = math.Log10(float64(n)+1) * ScoreUsageWeight * 100
			}
		}

		candidates = append(candidates, &Candidate{
			Entry:        entry,
			LexicalScore: lexicalScore,
			UsageScore:   usageScore,
			TotalScore:   lexicalScore + usageScore,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})

	return candidates
}

// normalizeFragment keeps letters and digits, lowercased
func normalizeFragment(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
