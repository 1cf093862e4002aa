package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ReportHTML renders a raw report as an HTML fragment with the four
// advertisement slots filled from the active set. The local composer
// emits plain text, which goes through the line classifier. Remote
// generators sometimes return markdown despite instructions; those
// reports go through goldmark and keep their slot tokens working.
func ReportHTML(report string, active []Announcement) (string, error) {
	if !looksLikeMarkdown(report) {
		return HTML(Resolve(report, active)), nil
	}
	body, err := MarkdownHTML(report)
	if err != nil {
		return "", err
	}
	byPosition := announcementsByPosition(active)
	return slotParagraphRe.ReplaceAllStringFunc(body, func(m string) string {
		slot := int(slotParagraphRe.FindStringSubmatch(m)[1][0] - '0')
		return adSlotHTML(Segment{Kind: SegmentAdSlot, Slot: slot, Announcement: byPosition[slot]})
	}), nil
}

// A slot token on its own line comes out of goldmark as a bare
// paragraph; both marker spellings are accepted, as in Resolve.
var slotParagraphRe = regexp.MustCompile(`<p>\[ESPA[CÇ]O_PUBLICITARIO_([1-4])\]</p>`)

var markdownCueRe = regexp.MustCompile("(?m)^#{1,6} |^```|\\*\\*[^*\n]+\\*\\*")

// looksLikeMarkdown reports whether the text uses markdown structure
// (ATX headings, fenced code, bold spans) instead of the composer's
// plain-text layout.
func looksLikeMarkdown(text string) bool {
	return markdownCueRe.MatchString(text)
}

// HTML renders segments as a document fragment. Ad slots become
// either a linked image or the vacant-slot stub.
func HTML(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch s.Kind {
		case SegmentHeading:
			fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(s.Text))
		case SegmentBullet:
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(strings.TrimSpace(strings.TrimPrefix(s.Text, "•"))))
		case SegmentSubBullet:
			text := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(s.Text, "○"), "- "))
			fmt.Fprintf(&b, "<li class='sub'>%s</li>\n", html.EscapeString(text))
		case SegmentNumbered:
			fmt.Fprintf(&b, "<p class='numbered'>%s</p>\n", html.EscapeString(s.Text))
		case SegmentSeparator:
			fmt.Fprintf(&b, "<hr>\n")
		case SegmentAlert:
			fmt.Fprintf(&b, "<p class='alert'>%s</p>\n", html.EscapeString(s.Text))
		case SegmentBreak:
			// Breaks carry no markup; spacing comes from the block elements.
		case SegmentAdSlot:
			b.WriteString(adSlotHTML(s))
		default:
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(s.Text))
		}
	}
	return b.String()
}

func adSlotHTML(s Segment) string {
	if s.Announcement == nil {
		return fmt.Sprintf("<div class='ad-slot ad-slot-empty' data-slot='%d'>Espaço publicitário disponível</div>\n", s.Slot)
	}
	a := s.Announcement
	img := fmt.Sprintf("<img src='%s' alt='Anúncio'>", html.EscapeString(a.ImageURL))
	if a.WebsiteURL != "" {
		img = fmt.Sprintf("<a href='%s'>%s</a>", html.EscapeString(a.WebsiteURL), img)
	}
	return fmt.Sprintf("<div class='ad-slot' data-slot='%d'>%s</div>\n", s.Slot, img)
}

// MarkdownHTML converts remote-generated markdown to HTML. Slot
// tokens pass through as literal text; ReportHTML fills them.
func MarkdownHTML(markdown string) (string, error) {
	var out strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return out.String(), nil
}
