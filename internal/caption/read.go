package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// represents a supported caption file format
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
	FormatSBV Format = "sbv"
)

// ParserFor returns the parser for a format.
func ParserFor(format Format) (Parser, error) {
	switch format {
	case FormatVTT:
		return VTT{}, nil
	case FormatSRT:
		return SRT{}, nil
	case FormatSBV:
		return SBV{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// FormatFromExtension maps a file extension to its caption format.
func FormatFromExtension(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt", ".webvtt":
		return FormatVTT, nil
	case ".srt":
		return FormatSRT, nil
	case ".sbv":
		return FormatSBV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Open reads and parses a caption file, detecting the format from its
// extension.
func Open(path string) (*Track, error) {
	format, err := FormatFromExtension(path)
	if err != nil {
		return nil, err
	}
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return From(format, lines)
}

// From parses lines in an explicit format.
func From(format Format, lines []string) (*Track, error) {
	parser, err := ParserFor(format)
	if err != nil {
		return nil, err
	}
	return parser.Parse(lines)
}

// ReadLines reads a caption file fully into memory and returns its lines
// with any UTF-8 BOM and trailing line terminators removed. An empty file
// is malformed.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caption file: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	if text == "" {
		return nil, fmt.Errorf("%w: the file is empty", ErrMalformed)
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines, nil
}

// blocksOf groups nonblank lines into blocks separated by blank lines.
func blocksOf(lines []string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			current = append(current, line)
		} else if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}
