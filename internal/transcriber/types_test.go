package transcriber

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds", 42.7, "00:00:42"},
		{"minutes", 125, "00:02:05"},
		{"hours", 3723, "01:02:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := Segment{Start: tt.start}
			if got := seg.FormatTimestamp(); got != tt.want {
				t.Errorf("FormatTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextWithTimestamps(t *testing.T) {
	r := &Result{
		Segments: []Segment{
			{Start: 0, End: 5, Text: " hello "},
			{Start: 65, End: 70, Text: "world", Speaker: "Speaker 1"},
		},
	}

	want := "[00:00:00] hello\n[00:01:05] Speaker 1: world"
	if got := r.TextWithTimestamps(); got != want {
		t.Errorf("TextWithTimestamps() = %q, want %q", got, want)
	}
}

func TestFullText(t *testing.T) {
	r := &Result{
		Segments: []Segment{
			{Text: " one "},
			{Text: "two"},
		},
	}
	if got := r.FullText(); got != "one two" {
		t.Errorf("FullText() = %q", got)
	}
}

func TestSpeakers(t *testing.T) {
	r := &Result{
		Segments: []Segment{
			{Text: "a", Speaker: "Speaker 2"},
			{Text: "b", Speaker: "Speaker 1"},
			{Text: "c", Speaker: "Speaker 2"},
			{Text: "d"},
		},
	}

	speakers := r.Speakers()
	if len(speakers) != 2 || speakers[0] != "Speaker 1" || speakers[1] != "Speaker 2" {
		t.Errorf("Speakers() = %v, want sorted distinct [Speaker 1 Speaker 2]", speakers)
	}
	if !r.HasSpeakers() {
		t.Error("HasSpeakers() = false, want true")
	}

	empty := &Result{Segments: []Segment{{Text: "x"}}}
	if empty.HasSpeakers() {
		t.Error("HasSpeakers() = true for unlabeled transcript")
	}
}
