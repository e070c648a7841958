package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const separator = "---\n"

// Note is a markdown document with YAML frontmatter.
type Note struct {
	Meta map[string]any
	Body string
}

// ParseNote splits content into frontmatter and body. Content without a
// leading separator is all body. One blank line after the closing separator
// belongs to the format, not the body.
func ParseNote(content string) (Note, error) {
	if !strings.HasPrefix(content, separator) {
		return Note{Meta: map[string]any{}, Body: content}, nil
	}
	rest := strings.TrimPrefix(content, separator)
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		return Note{}, fmt.Errorf("invalid frontmatter: missing closing separator")
	}
	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &meta); err != nil {
		return Note{}, fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	body := strings.TrimPrefix(rest[idx+len("\n---\n"):], "\n")
	return Note{Meta: meta, Body: body}, nil
}

func (n Note) Render() (string, error) {
	raw, err := yaml.Marshal(n.Meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(separator)
	buf.Write(raw)
	buf.WriteString(separator)
	buf.WriteString("\n")
	buf.WriteString(n.Body)
	return buf.String(), nil
}

// ReplaceBlock swaps the generated region delimited by HTML comment markers
// named after block, appending it when absent. Text outside the markers is
// left untouched so users can keep their own notes in the file.
func (n Note) ReplaceBlock(block, generated string) Note {
	startMarker := "<!-- " + block + ":start -->"
	endMarker := "<!-- " + block + ":end -->"
	region := startMarker + "\n" + generated + "\n" + endMarker

	body := n.Body
	start := strings.Index(body, startMarker)
	end := strings.Index(body, endMarker)
	switch {
	case start >= 0 && end > start:
		body = body[:start] + region + body[end+len(endMarker):]
	case strings.TrimSpace(body) == "":
		body = region + "\n"
	case strings.HasSuffix(body, "\n"):
		body = body + "\n" + region + "\n"
	default:
		body = body + "\n\n" + region + "\n"
	}
	return Note{Meta: n.Meta, Body: body}
}
