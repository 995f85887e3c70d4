package logtail

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Level is the severity of a humanized line.
type Level int

const (
	LevelNone Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Line is a log record rewritten for display.
type Line struct {
	Text  string
	Level Level
}

// Humanize rewrites JSON log records into the compact console format
// ("15:04:05 INF message key=value"). Lines that are not JSON records are
// passed through unchanged.
func Humanize(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	var buf bytes.Buffer
	writer := zerolog.ConsoleWriter{
		Out:        &buf,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		buf.Reset()
		if !strings.HasPrefix(trimmed, "{") {
			out = append(out, Line{Text: raw, Level: LevelNone})
			continue
		}
		if _, err := writer.Write([]byte(trimmed)); err != nil {
			out = append(out, Line{Text: raw, Level: LevelNone})
			continue
		}
		text := strings.TrimRight(buf.String(), "\n")
		out = append(out, Line{Text: text, Level: levelOf(text)})
	}
	return out
}

func levelOf(text string) Level {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return LevelNone
	}
	switch fields[1] {
	case "DBG", "TRC":
		return LevelDebug
	case "INF":
		return LevelInfo
	case "WRN":
		return LevelWarn
	case "ERR", "FTL", "PNC":
		return LevelError
	default:
		return LevelNone
	}
}
