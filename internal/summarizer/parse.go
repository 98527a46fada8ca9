package summarizer

import (
	"encoding/json"
	"strings"
)

type section int

const (
	sectionSummary section = iota
	sectionKeyPoints
	sectionActionItems
)

// sectionIndicators classifies a line as a section header when it contains
// any of the listed substrings (case-insensitive). First match wins, so
// "summary" outranks "points". English and Japanese variants are listed
// because the models answer in the transcript's language.
var sectionIndicators = []struct {
	section  section
	keywords []string
}{
	{sectionSummary, []string{"summary", "overview", "要約", "概要"}},
	{sectionKeyPoints, []string{"key points", "main points", "topics", "主要", "ポイント", "トピック"}},
	{sectionActionItems, []string{"action", "task", "next steps", "アクション", "タスク", "次のステップ"}},
}

// bulletMarkers are the rune set stripped from the front of bullet lines.
const bulletMarkers = "-*•・"

func matchSection(line string) (section, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, indicator := range sectionIndicators {
		for _, keyword := range indicator.keywords {
			if strings.Contains(lower, keyword) {
				return indicator.section, true
			}
		}
	}
	return 0, false
}

func isBullet(line string) bool {
	return line != "" && strings.ContainsRune(bulletMarkers, rune([]rune(line)[0]))
}

// parseMinutes recovers the summary, key points and action items from the
// model's free-form minutes output. Header lines switch the current
// section and are consumed; blank and "#" heading lines are skipped;
// bullet lines feed the current list section. Non-bullet lines inside a
// list section are dropped (matching the behavior the prompts were tuned
// against). If no summary line was ever captured, the whole raw text is
// returned as the summary so non-empty input never yields empty minutes.
func parseMinutes(content string) (string, []string, []string) {
	var keyPoints, actionItems, summaryLines []string
	current := sectionSummary

	for _, line := range strings.Split(content, "\n") {
		if s, ok := matchSection(line); ok {
			current = s
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if isBullet(trimmed) {
			item := strings.TrimSpace(strings.TrimLeft(trimmed, bulletMarkers))
			if item == "" {
				continue
			}
			switch current {
			case sectionKeyPoints:
				keyPoints = append(keyPoints, item)
			case sectionActionItems:
				actionItems = append(actionItems, item)
			default:
				summaryLines = append(summaryLines, trimmed)
			}
		} else if current == sectionSummary {
			summaryLines = append(summaryLines, trimmed)
		}
	}

	summary := content
	if len(summaryLines) > 0 {
		summary = strings.Join(summaryLines, " ")
	}

	return summary, keyPoints, actionItems
}

// parseSpeakerMapping extracts a label -> name mapping from model output
// that should be a JSON object, possibly wrapped in a code fence. Parse
// failures and labels outside allowed collapse to an empty/filtered map;
// this never reports an error because the mapping is a best-effort
// enhancement.
func parseSpeakerMapping(content string, allowed []string) map[string]string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		lines = lines[1:]
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		content = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return map[string]string{}
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, label := range allowed {
		allowedSet[label] = true
	}

	mapping := make(map[string]string)
	for label, name := range parsed {
		if allowedSet[label] {
			mapping[label] = name
		}
	}
	return mapping
}
