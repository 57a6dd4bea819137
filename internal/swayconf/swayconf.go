// Package swayconf extracts the preferred primary monitor from a Sway
// config file.
//
// The preference lives in a marker-delimited block, conventionally:
//
//	#! Primary Monitor Start !#
//	output "Acer Technologies Acer XF270H B 0x9372943C" resolution 2560x1440
//	#! Primary Monitor End !#
//
// The first uncommented output declaration across all blocks wins.
package swayconf

import (
	"os"
	"regexp"
	"strings"
)

// Default marker substrings recognized in a Sway config.
const (
	DefaultStartMarker = "Primary Monitor Start"
	DefaultEndMarker   = "Primary Monitor End"
)

// Block is an inclusive line range delimited by a start and end marker.
type Block struct {
	Start int
	End   int
}

// FindBlocks locates marker-delimited blocks, left to right. Markers
// match as substrings anywhere in a line. A start marker with no end
// marker after it aborts the scan; the remainder of the file belongs to
// no block. The next start search resumes strictly after the previous
// end line, so blocks never overlap.
func FindBlocks(lines []string, startMarker, endMarker string) []Block {
	var blocks []Block
	for i := 0; i < len(lines); {
		if !strings.Contains(lines[i], startMarker) {
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(lines); j++ {
			if strings.Contains(lines[j], endMarker) {
				end = j
				break
			}
		}
		if end < 0 {
			break
		}
		blocks = append(blocks, Block{Start: i, End: end})
		i = end + 1
	}
	return blocks
}

// The declaration value is whatever sits between the first pair of
// double quotes after the output keyword, spaces included.
var outputDeclRe = regexp.MustCompile(`^\s*output\s+"([^"]+)"`)

// Preference returns the first uncommented output declaration found
// inside any block, scanning blocks and lines top to bottom. Lines
// whose first non-whitespace byte is '#' are skipped, which also covers
// the marker lines themselves.
func Preference(content, startMarker, endMarker string) (string, bool) {
	lines := strings.Split(content, "\n")
	for _, b := range FindBlocks(lines, startMarker, endMarker) {
		for _, line := range lines[b.Start : b.End+1] {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			if m := outputDeclRe.FindStringSubmatch(line); m != nil {
				return m[1], true
			}
		}
	}
	return "", false
}

// PreferenceFromFile reads path and extracts the preference. An
// unreadable file means no preference is configured, not an error.
func PreferenceFromFile(path, startMarker, endMarker string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return Preference(string(content), startMarker, endMarker)
}
