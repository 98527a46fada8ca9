package output

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*•・]\s*(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// markdownToDocx converts the rendered markdown minutes to a styled docx.
func markdownToDocx(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if reNumbered.MatchString(trimmed) {
			addRichText(doc.AddParagraph(""), trimmed)
			continue
		}

		addRichText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText renders **bold** spans as bold runs, everything else plain.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
