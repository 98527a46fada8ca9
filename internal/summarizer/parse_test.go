package summarizer

import (
	"reflect"
	"testing"
)

func TestParseMinutesSections(t *testing.T) {
	content := `### Summary
The team reviewed the release schedule.
QA signoff is still pending.

### Key Points
- Release slips one week
- QA capacity is the bottleneck

### Action Items
- Tanaka prepares the revised schedule by Friday
`

	summary, keyPoints, actionItems := parseMinutes(content)

	want := "The team reviewed the release schedule. QA signoff is still pending."
	if summary != want {
		t.Errorf("summary = %q, want %q", summary, want)
	}
	if !reflect.DeepEqual(keyPoints, []string{"Release slips one week", "QA capacity is the bottleneck"}) {
		t.Errorf("keyPoints = %v", keyPoints)
	}
	if !reflect.DeepEqual(actionItems, []string{"Tanaka prepares the revised schedule by Friday"}) {
		t.Errorf("actionItems = %v", actionItems)
	}
}

func TestParseMinutesNoSectionsFallsBackToRaw(t *testing.T) {
	content := "Just a plain paragraph.\nWith two lines."

	summary, keyPoints, actionItems := parseMinutes(content)

	if summary != "Just a plain paragraph. With two lines." {
		t.Errorf("summary = %q", summary)
	}
	if len(keyPoints) != 0 || len(actionItems) != 0 {
		t.Errorf("lists should be empty, got %v / %v", keyPoints, actionItems)
	}
}

func TestParseMinutesOnlyHeadingsFallsBackToRaw(t *testing.T) {
	// Every line is consumed as a header or heading, so the summary
	// accumulator stays empty and the whole raw text is returned.
	content := "# 議事録\n### 要約"

	summary, _, _ := parseMinutes(content)
	if summary != content {
		t.Errorf("summary = %q, want full raw text", summary)
	}
}

func TestParseMinutesBulletVariants(t *testing.T) {
	content := `### Main Points
- dash bullet
* star bullet
• dot bullet
・ cjk bullet
`

	_, keyPoints, _ := parseMinutes(content)

	want := []string{"dash bullet", "star bullet", "dot bullet", "cjk bullet"}
	if !reflect.DeepEqual(keyPoints, want) {
		t.Errorf("keyPoints = %v, want %v", keyPoints, want)
	}
}

func TestParseMinutesJapaneseHeaders(t *testing.T) {
	content := `### 要約
会議の概況です。

### 主要なポイント
- ポイント1

### アクションアイテム
- タスク1
`

	summary, keyPoints, actionItems := parseMinutes(content)

	if summary != "会議の概況です。" {
		t.Errorf("summary = %q", summary)
	}
	if !reflect.DeepEqual(keyPoints, []string{"ポイント1"}) {
		t.Errorf("keyPoints = %v", keyPoints)
	}
	if !reflect.DeepEqual(actionItems, []string{"タスク1"}) {
		t.Errorf("actionItems = %v", actionItems)
	}
}

// Non-bullet lines inside a list section are dropped. This loses text, but
// the parser intentionally mirrors the behavior the prompts were tuned
// against instead of guessing where such lines belong.
func TestParseMinutesDropsProseInListSections(t *testing.T) {
	content := `### Key Points
- a real point
this prose line is silently dropped
- another point
`

	summary, keyPoints, _ := parseMinutes(content)

	if !reflect.DeepEqual(keyPoints, []string{"a real point", "another point"}) {
		t.Errorf("keyPoints = %v", keyPoints)
	}
	// Nothing was captured for the summary, so it falls back to raw.
	if summary != content {
		t.Errorf("summary = %q, want raw fallback", summary)
	}
}

func TestParseSpeakerMappingFiltersUnknownLabels(t *testing.T) {
	raw := `{"話者1": "田中", "話者9": "山田"}`

	mapping := parseSpeakerMapping(raw, []string{"話者1", "話者2"})

	if !reflect.DeepEqual(mapping, map[string]string{"話者1": "田中"}) {
		t.Errorf("mapping = %v, want only 話者1", mapping)
	}
}

func TestParseSpeakerMappingCodeFence(t *testing.T) {
	raw := "```json\n{\"Speaker 1\": \"Tanaka\"}\n```"

	mapping := parseSpeakerMapping(raw, []string{"Speaker 1"})

	if mapping["Speaker 1"] != "Tanaka" {
		t.Errorf("mapping = %v", mapping)
	}
}

func TestParseSpeakerMappingFenceWithoutClosing(t *testing.T) {
	raw := "```json\n{\"Speaker 1\": \"Tanaka\"}"

	mapping := parseSpeakerMapping(raw, []string{"Speaker 1"})

	if mapping["Speaker 1"] != "Tanaka" {
		t.Errorf("mapping = %v", mapping)
	}
}

func TestParseSpeakerMappingMalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "I could not identify the speakers."},
		{"truncated", `{"Speaker 1": "Tan`},
		{"array", `["Speaker 1"]`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := parseSpeakerMapping(tt.raw, []string{"Speaker 1"})
			if len(mapping) != 0 {
				t.Errorf("mapping = %v, want empty", mapping)
			}
		})
	}
}
