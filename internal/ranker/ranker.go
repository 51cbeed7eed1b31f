package ranker

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MaxCandidates caps how many catalog entries are sent to the model.
	MaxCandidates = 100
	// MaxMatches caps how many matches are returned to the student.
	MaxMatches = 5
	// DescriptionLimit is the number of description characters sent per candidate.
	DescriptionLimit = 200
)

// Candidate is one internship offered to the model, addressed by its position in the candidate set.
type Candidate struct {
	Index       int
	Name        string
	Description string
}

// Match is a candidate the model selected, with its explanation.
type Match struct {
	Index  int    `json:"id"`
	Reason string `json:"reason"`
}

// Ranker picks the candidates that best fit a student bio.
type Ranker interface {
	Rank(ctx context.Context, bio string, candidates []Candidate) ([]Match, error)
}

// SystemPrompt instructs the model and embeds the student's bio.
func SystemPrompt(bio string) string {
	return fmt.Sprintf(`You are a helpful internship matchmaker.
1. Read the Student Bio below.
2. Read the List of Jobs provided.
3. Return the IDs of the TOP %d jobs that match the student's interests.
4. For each match, write a short "Why" sentence explaining the match.

Student Bio: %q

Output JSON ONLY in this format:
{
    "matches": [
        {"id": 123, "reason": "Good for coding skills"},
        {"id": 456, "reason": "Matches interest in helping people"}
    ]
}`, MaxMatches, bio)
}

// FormatCandidates renders candidates one per line with truncated descriptions.
func FormatCandidates(candidates []Candidate) string {
	var b strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&b, "ID: %d | Name: %s | Desc: %s...\n", c.Index, c.Name, truncate(c.Description, DescriptionLimit))
	}
	return b.String()
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// ParseMatches reads the model's JSON answer. A body that is not a JSON object is an error;
// individual entries without a usable id are skipped.
func ParseMatches(content string) ([]Match, error) {
	var envelope struct {
		Matches []json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("decode ranking response: %w", err)
	}

	matches := make([]Match, 0, len(envelope.Matches))
	for _, raw := range envelope.Matches {
		var entry struct {
			ID     any `json:"id"`
			Reason any `json:"reason"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		idx, ok := toIndex(entry.ID)
		if !ok {
			continue
		}
		reason, _ := entry.Reason.(string)
		matches = append(matches, Match{Index: idx, Reason: reason})
	}
	return matches, nil
}

func toIndex(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		if id != math.Trunc(id) || math.IsInf(id, 0) {
			return 0, false
		}
		return int(id), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
