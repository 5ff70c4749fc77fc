package autofit

import (
	"strings"
)

// SplitColumns divides text into count segments for a multi-column layout.
// When the text has at least count blank-line-delimited paragraphs they are
// distributed whole, earlier columns taking the remainder. With fewer
// paragraphs than columns the split falls back to character offsets,
// preferring to break at a paragraph boundary, then a line break, then a
// space, each searched within a small window past the even split point.
func (e *Engine) SplitColumns(text string, count int) []string {
	if count <= 1 {
		return []string{text}
	}

	paragraphs := splitParagraphs(text)
	if len(paragraphs) >= count {
		perColumn := len(paragraphs) / count
		remainder := len(paragraphs) % count

		columns := make([]string, 0, count)
		idx := 0
		for col := 0; col < count; col++ {
			take := perColumn
			if col < remainder {
				take++
			}
			columns = append(columns, strings.Join(paragraphs[idx:idx+take], "\n\n"))
			idx += take
		}
		return columns
	}

	// Character-count fallback.
	charsPerColumn := len(text) / count
	columns := make([]string, 0, count)
	start := 0

	for col := 0; col < count; col++ {
		if col == count-1 {
			columns = append(columns, strings.TrimSpace(text[start:]))
			break
		}

		end := start + charsPerColumn
		if end > len(text) {
			end = len(text)
		}
		if cut := lastIndexWithin(text, "\n\n", start, end+50); cut > start {
			end = cut
		} else if cut := lastIndexWithin(text, "\n", start, end+20); cut > start {
			end = cut
		} else if cut := lastIndexWithin(text, " ", start, end+10); cut > start {
			end = cut
		}

		columns = append(columns, strings.TrimSpace(text[start:end]))
		start = end
	}
	return columns
}

// SplitSlides divides text into per-slide segments, greedily packing whole
// paragraphs until the estimated line count would exceed the per-slide
// budget. A single paragraph that alone exceeds the budget goes on its own
// slide unmodified. A non-positive maxLines uses the configured budget.
func (e *Engine) SplitSlides(text string, c Container, fontSize, maxLines int) []string {
	if maxLines <= 0 {
		maxLines = e.cfg.MaxLinesPerSlide
	}

	paragraphs := splitParagraphs(text)

	var slides []string
	var current []string
	currentLines := 0

	for _, para := range paragraphs {
		paraLines := e.EstimateLines(para, c.Width, fontSize)

		if currentLines+paraLines > maxLines {
			if len(current) > 0 {
				slides = append(slides, strings.Join(current, "\n\n"))
				current = []string{para}
				currentLines = paraLines
			} else {
				slides = append(slides, para)
				currentLines = 0
			}
		} else {
			current = append(current, para)
			currentLines += paraLines
		}
	}

	if len(current) > 0 {
		slides = append(slides, strings.Join(current, "\n\n"))
	}
	if len(slides) == 0 {
		return []string{text}
	}
	return slides
}

// splitParagraphs splits on blank lines, falling back to single lines when
// the text has no blank-line separators.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 0 {
		return paragraphs
	}
	for _, p := range strings.Split(text, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// lastIndexWithin finds the last occurrence of sep in text[start:end),
// returning its absolute offset or -1. end is clamped to the text length.
func lastIndexWithin(text, sep string, start, end int) int {
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return -1
	}
	i := strings.LastIndex(text[start:end], sep)
	if i < 0 {
		return -1
	}
	return start + i
}
