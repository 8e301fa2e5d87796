package localdocs

import (
	"regexp"
	"sort"
	"strings"
)

// Search runs a literal substring search over document names and contents.
// The query matches case-insensitively unless caseSensitive is set.
//
// Per document, a filename match is recorded first, then content matches in
// document order, capped at MaxMatchesPerDoc combined. Documents with a
// filename match rank before content-only documents; within each group
// documents with more total matches rank higher, and ties keep index order.
// At most MaxDocResults documents are returned; TotalResults counts every
// matching document before that truncation.
func (ix *Index) Search(query string, caseSensitive bool) SearchResponse {
	// Case-insensitive matching must report offsets valid in the original
	// bytes, so the needle is folded with a regexp rather than lowercasing
	// the haystack (lowercasing can change byte lengths and skew offsets).
	pattern := regexp.QuoteMeta(query)
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re := regexp.MustCompile(pattern)

	var results []DocumentResult
	for _, key := range ix.keys {
		doc := ix.docs[key]

		var matches []Match
		filenameHit := false

		if re.MatchString(doc.Name) {
			filenameHit = true
			matches = append(matches, Match{Type: MatchFilename, Context: doc.Name})
		}

		content := ix.content[key]
		for pos := 0; len(matches) < ix.opts.MaxMatchesPerDoc; {
			loc := re.FindStringIndex(content[pos:])
			if loc == nil {
				break
			}
			start, end := pos+loc[0], pos+loc[1]
			matches = append(matches, Match{
				Type:     MatchContent,
				Context:  matchContext(content, start, end-start, ix.opts.ContextWindow),
				Position: &start,
			})
			pos = end
		}

		if len(matches) == 0 {
			continue
		}
		results = append(results, DocumentResult{
			Document:     doc.Name,
			XcodeVersion: doc.XcodeVersion,
			Matches:      matches,
			TotalMatches: len(matches),
			filenameHit:  filenameHit,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].filenameHit != results[j].filenameHit {
			return results[i].filenameHit
		}
		return results[i].TotalMatches > results[j].TotalMatches
	})

	total := len(results)
	if total > ix.opts.MaxDocResults {
		results = results[:ix.opts.MaxDocResults]
	}
	return SearchResponse{Query: query, TotalResults: total, Results: results}
}

// matchContext extracts a window-byte context span centered on a match,
// half before and half after, and collapses runs of whitespace to single
// spaces.
func matchContext(content string, pos, matchLen, window int) string {
	side := window / 2
	start := pos - side
	if start < 0 {
		start = 0
	}
	end := pos + matchLen + side
	if end > len(content) {
		end = len(content)
	}
	return strings.Join(strings.Fields(content[start:end]), " ")
}
