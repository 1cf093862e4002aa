package render

import (
	"regexp"
	"strings"
	"unicode"
)

// SegmentKind classifies a report line for presentation. The
// classification never changes the underlying text; PDF export parses
// the same raw report independently.
type SegmentKind string

const (
	SegmentHeading   SegmentKind = "heading"
	SegmentParagraph SegmentKind = "paragraph"
	SegmentBullet    SegmentKind = "bullet"
	SegmentSubBullet SegmentKind = "sub_bullet"
	SegmentNumbered  SegmentKind = "numbered"
	SegmentSeparator SegmentKind = "separator"
	SegmentAlert     SegmentKind = "alert"
	SegmentBreak     SegmentKind = "break"
	SegmentAdSlot    SegmentKind = "ad_slot"
)

// Segment is one typed unit of the rendered report. For ad slots,
// Announcement is nil when the position has no active placement and
// the renderer shows a neutral stub instead.
type Segment struct {
	Kind         SegmentKind   `json:"kind"`
	Text         string        `json:"text,omitempty"`
	Slot         int           `json:"slot,omitempty"`
	Announcement *Announcement `json:"announcement,omitempty"`
}

// slotTokenRe accepts both the plain and the accented marker spelling;
// reports produced before the encoding cleanup carry the latter.
var slotTokenRe = regexp.MustCompile(`^\[ESPA[CÇ]O_PUBLICITARIO_([1-4])\]$`)

const headingLengthBound = 80

// Resolve splits report text into segments and fills the four ad
// slots from the active set. Each slot resolves independently: a
// vacant position yields a stub segment, never an error, and never
// affects the other slots.
func Resolve(text string, active []Announcement) []Segment {
	byPosition := announcementsByPosition(active)

	var segments []Segment
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := slotTokenRe.FindStringSubmatch(trimmed); m != nil {
			slot := int(m[1][0] - '0')
			segments = append(segments, Segment{
				Kind:         SegmentAdSlot,
				Slot:         slot,
				Announcement: byPosition[slot],
			})
			continue
		}
		segments = append(segments, Segment{Kind: classifyLine(trimmed), Text: trimmed})
	}
	return segments
}

func classifyLine(trimmed string) SegmentKind {
	switch {
	case trimmed == "":
		return SegmentBreak
	case trimmed == "---":
		return SegmentSeparator
	case strings.Contains(trimmed, "⚠️"):
		return SegmentAlert
	case strings.HasPrefix(trimmed, "•"):
		return SegmentBullet
	case strings.HasPrefix(trimmed, "○"), strings.HasPrefix(trimmed, "- "):
		return SegmentSubBullet
	// Heading wins over numbered: an uppercase numbered line such as
	// "1. DOCUMENTAÇÃO NECESSÁRIA" is a section title, not a list item.
	case isHeading(trimmed):
		return SegmentHeading
	case numberedRe.MatchString(trimmed):
		return SegmentNumbered
	default:
		return SegmentParagraph
	}
}

var numberedRe = regexp.MustCompile(`^\d+\.\s`)

// announcementsByPosition keeps the first active placement per slot;
// positions outside 1..4 are ignored.
func announcementsByPosition(active []Announcement) map[int]*Announcement {
	byPosition := map[int]*Announcement{}
	for i := range active {
		a := active[i]
		if a.Position < 1 || a.Position > 4 {
			continue
		}
		if _, taken := byPosition[a.Position]; !taken {
			byPosition[a.Position] = &a
		}
	}
	return byPosition
}

// isHeading treats short lines with letters and no lowercase as
// section headings, which matches how the composer writes them.
func isHeading(line string) bool {
	if len([]rune(line)) > headingLengthBound {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
