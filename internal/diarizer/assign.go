package diarizer

import (
	"fmt"
	"sort"

	"github.com/Aosanori/minutes-flow/internal/transcriber"
)

// SpeakerMapping builds a deterministic raw-label -> display-name mapping.
// Labels are sorted lexicographically and numbered from 1, so the same
// turn set always yields the same numbering.
func SpeakerMapping(turns []Turn) map[string]string {
	seen := make(map[string]bool)
	for _, turn := range turns {
		seen[turn.Speaker] = true
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	mapping := make(map[string]string, len(labels))
	for i, label := range labels {
		mapping[label] = fmt.Sprintf("Speaker %d", i+1)
	}
	return mapping
}

// AssignSpeakers attributes each transcript segment to the diarization turn
// with the greatest time overlap, writing the mapped display name into the
// segment in place. With no turns the segments are returned unchanged.
// A nil mapping is derived from the turn labels. Segments no turn overlaps
// keep an empty speaker; no nearest-neighbor guessing.
func AssignSpeakers(segments []transcriber.Segment, turns []Turn, mapping map[string]string) []transcriber.Segment {
	if len(turns) == 0 {
		return segments
	}

	if mapping == nil {
		mapping = SpeakerMapping(turns)
	}

	for i := range segments {
		bestSpeaker := ""
		bestOverlap := 0.0

		for _, turn := range turns {
			overlapStart := segments[i].Start
			if turn.Start > overlapStart {
				overlapStart = turn.Start
			}
			overlapEnd := segments[i].End
			if turn.End < overlapEnd {
				overlapEnd = turn.End
			}

			// Strictly greater: equal overlap keeps the earlier turn.
			if overlap := overlapEnd - overlapStart; overlap > bestOverlap {
				bestOverlap = overlap
				bestSpeaker = turn.Speaker
			}
		}

		if bestSpeaker != "" {
			if name, ok := mapping[bestSpeaker]; ok {
				segments[i].Speaker = name
			} else {
				segments[i].Speaker = bestSpeaker
			}
		}
	}

	return segments
}
