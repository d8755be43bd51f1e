package delim

import (
	"strings"
)

// Sniffer detects the field delimiter of a sample of delimited data.
// For best results, provide at least 2-3 lines of data.
type Sniffer struct {
	sample    string
	delimiter byte
	analyzed  bool
}

// NewSniffer creates a new Sniffer with a sample of delimited data.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{
		sample:   sample,
		analyzed: false,
	}
}

// DetectDelimiter returns the detected field delimiter.
// Common delimiters checked: tab, comma, semicolon, pipe.
// When the sample is empty or no candidate scores, tab is returned.
func (s *Sniffer) DetectDelimiter() byte {
	if !s.analyzed {
		s.delimiter = s.detectDelimiter()
		s.analyzed = true
	}
	return s.delimiter
}

// detectDelimiter performs the actual delimiter detection.
func (s *Sniffer) detectDelimiter() byte {
	if s.sample == "" {
		return '\t'
	}

	candidates := []byte{'\t', ',', ';', '|'}
	scores := make(map[byte]int)

	lines := strings.Split(s.sample, "\n")

	// Score each candidate on how consistently it splits the lines.
	for _, delim := range candidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			if line == "" {
				continue
			}
			counts = append(counts, strings.Count(line, string(delim)))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}
		consistent := true
		for i := 1; i < len(counts); i++ {
			if counts[i] != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			scores[delim] = counts[0] * 10
		} else {
			scores[delim] = counts[0]
		}
	}

	best := byte('\t')
	bestScore := 0
	for _, delim := range candidates {
		if scores[delim] > bestScore {
			best = delim
			bestScore = scores[delim]
		}
	}
	return best
}
