package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

// sanitize strips terminal escape sequences and other control characters
// from clipboard text so it is displayed, never interpreted.
func sanitize(text string) string {
	stripped := ansi.Strip(text)
	stripped = strings.ReplaceAll(stripped, "\r\n", "\n")
	stripped = strings.ReplaceAll(stripped, "\t", "    ")
	return strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, stripped)
}

// detectLanguage returns the lexer chroma guesses for text, or nil for
// plain prose.
func detectLanguage(text string) chroma.Lexer {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lexer := lexers.Analyse(text)
	if lexer == nil {
		return nil
	}
	cfg := lexer.Config()
	if cfg == nil || len(cfg.Aliases) == 0 {
		return nil
	}
	return lexer
}

// highlightCode colours sanitized text with chroma. It returns nil when the
// text does not look like code or highlighting fails, so callers fall back
// to plain lines.
func highlightCode(text, styleName string) ([]string, string) {
	lexer := detectLanguage(text)
	if lexer == nil {
		return nil, ""
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return nil, ""
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return nil, ""
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), lexer.Config().Aliases[0]
}

// highlightMatches styles the characters of line that fuzzy-match query.
// Lines without a match are returned as plain text rendered with base.
func highlightMatches(line, query string, base, match lipgloss.Style) string {
	if query == "" || line == "" {
		return base.Render(line)
	}
	matches := fuzzy.Find(query, []string{line})
	if len(matches) == 0 {
		return base.Render(line)
	}
	hit := make(map[int]struct{}, len(matches[0].MatchedIndexes))
	for _, idx := range matches[0].MatchedIndexes {
		hit[idx] = struct{}{}
	}

	var out strings.Builder
	var run strings.Builder
	runIsMatch := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runIsMatch {
			out.WriteString(match.Render(run.String()))
		} else {
			out.WriteString(base.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range line {
		_, isMatch := hit[i]
		if isMatch != runIsMatch {
			flush()
			runIsMatch = isMatch
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}
