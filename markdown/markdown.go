// Package markdown converts the small markdown subset the model is
// instructed to emit into typed block nodes a client can lay out directly.
package markdown

import (
	"regexp"
	"strings"
)

type BlockType string

const (
	Heading1  BlockType = "h1"
	Heading2  BlockType = "h2"
	Heading3  BlockType = "h3"
	ListItem  BlockType = "li"
	Ordered   BlockType = "ol"
	Spacer    BlockType = "spacer"
	Paragraph BlockType = "p"
)

// Span is a run of text, optionally emphasized.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// Block is one rendered line. Ordered items keep their literal numeric
// prefix in Marker ("1.", "12.").
type Block struct {
	Type   BlockType `json:"type"`
	Marker string    `json:"marker,omitempty"`
	Spans  []Span    `json:"spans,omitempty"`
}

// Text flattens the block back to plain text, marker included.
func (b Block) Text() string {
	var sb strings.Builder
	if b.Marker != "" {
		sb.WriteString(b.Marker)
		sb.WriteString(" ")
	}
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var (
	bulletRe  = regexp.MustCompile(`^[-*]\s`)
	orderedRe = regexp.MustCompile(`^(\d+)\.\s(.*)`)
	boldRe    = regexp.MustCompile(`\*\*[^*]+\*\*`)
)

// Render classifies each input line into a block, in original order.
// The renderer holds no state between calls.
func Render(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, Block{Type: Heading3, Spans: Inline(line[4:])})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, Block{Type: Heading2, Spans: Inline(line[3:])})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, Block{Type: Heading1, Spans: Inline(line[2:])})
		case bulletRe.MatchString(line):
			blocks = append(blocks, Block{Type: ListItem, Spans: Inline(line[2:])})
		case orderedRe.MatchString(line):
			m := orderedRe.FindStringSubmatch(line)
			blocks = append(blocks, Block{Type: Ordered, Marker: m[1] + ".", Spans: Inline(m[2])})
		case line == "":
			blocks = append(blocks, Block{Type: Spacer})
		default:
			blocks = append(blocks, Block{Type: Paragraph, Spans: Inline(line)})
		}
	}

	return blocks
}

// Inline splits a line into spans, turning **bounded text** into bold
// spans. A ** with no closing marker is left as literal text.
func Inline(text string) []Span {
	matches := boldRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	spans := []Span{}
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			spans = append(spans, Span{Text: text[prev:m[0]]})
		}
		spans = append(spans, Span{Text: text[m[0]+2 : m[1]-2], Bold: true})
		prev = m[1]
	}
	if prev < len(text) {
		spans = append(spans, Span{Text: text[prev:]})
	}
	return spans
}
