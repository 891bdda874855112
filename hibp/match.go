package hibp

import (
	"fmt"
	"strconv"
	"strings"
)

// Candidate is one SUFFIX:COUNT record of a range response.
type Candidate struct {
	Suffix string
	Count  int
	Line   int
}

type CandidateList []Candidate

// ParseCandidates parses a range response body. CRLF line endings are
// accepted and blank lines are skipped. Any malformed record fails the whole
// body.
func ParseCandidates(body string) (CandidateList, error) {
	var list CandidateList
	for i, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		suffix, countText, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &ParseError{Line: i + 1, Err: ErrMissingDelimiter}
		}
		if suffix == "" {
			return nil, &ParseError{Line: i + 1, Err: ErrEmptySuffix}
		}
		count, err := strconv.Atoi(countText)
		if err != nil || count < 0 {
			return nil, &ParseError{Line: i + 1, Err: fmt.Errorf("%w %q", ErrInvalidCount, countText)}
		}
		list = append(list, Candidate{Suffix: suffix, Count: count, Line: i + 1})
	}
	return list, nil
}

// Index maps suffixes to counts. When a suffix repeats, the first record
// wins, same as an in-order scan.
func (l CandidateList) Index() map[string]int {
	index := make(map[string]int, len(l))
	for _, c := range l {
		if _, seen := index[c.Suffix]; !seen {
			index[c.Suffix] = c.Count
		}
	}
	return index
}

// Padded returns the number of zero-count records.
func (l CandidateList) Padded() int {
	n := 0
	for _, c := range l {
		if c.Count == 0 {
			n++
		}
	}
	return n
}

// Count parses body and returns the occurrence count recorded for suffix,
// or 0 when it is absent. Unless padded is set, a zero-count record is
// rejected since the service only emits those as padding.
func Count(body, suffix string, padded bool) (int, error) {
	list, err := ParseCandidates(body)
	if err != nil {
		return 0, err
	}
	if !padded {
		for _, c := range list {
			if c.Count == 0 {
				return 0, &ParseError{Line: c.Line, Err: ErrUnexpectedZeroCount}
			}
		}
	}
	return list.Index()[suffix], nil
}
