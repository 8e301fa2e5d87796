package localdocs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index is an immutable snapshot of every discovered document. Built once
// at startup; all query methods are read-only and safe for concurrent use.
type Index struct {
	docs    map[DocKey]Document
	content map[DocKey]string
	// keys holds every DocKey sorted by (version, name) so that searches
	// and listings traverse the corpus in a deterministic order.
	keys    []DocKey
	roots   []Root
	skipped int
	opts    Options
}

// Build loads every markdown document under the given roots into a new
// Index. Unreadable files are skipped, logged, and counted rather than
// failing the build. An empty corpus yields a usable empty index.
func Build(roots []Root, opts Options, logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}

	ix := &Index{
		docs:    make(map[DocKey]Document),
		content: make(map[DocKey]string),
		roots:   roots,
		opts:    opts,
	}

	for _, root := range roots {
		paths, err := filepath.Glob(filepath.Join(root.Path, "*.md"))
		if err != nil {
			logger.Warn("failed to scan documentation root",
				slog.String("path", root.Path),
				slog.String("error", err.Error()))
			continue
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				ix.skipped++
				logger.Warn("skipping unreadable document",
					slog.String("path", path),
					slog.String("error", err.Error()))
				continue
			}

			text := string(data)
			name := strings.TrimSuffix(filepath.Base(path), ".md")
			key := DocKey{XcodeVersion: root.Tag, Name: name}
			ix.docs[key] = Document{
				Name:         name,
				Path:         path,
				Size:         int64(len(data)),
				XcodeVersion: root.Tag,
				Topics:       extractTopics(text, opts),
			}
			ix.content[key] = text
		}
	}

	ix.keys = make([]DocKey, 0, len(ix.docs))
	for key := range ix.docs {
		ix.keys = append(ix.keys, key)
	}
	sort.Slice(ix.keys, func(i, j int) bool {
		a, b := ix.keys[i], ix.keys[j]
		if a.XcodeVersion != b.XcodeVersion {
			return a.XcodeVersion < b.XcodeVersion
		}
		return a.Name < b.Name
	})

	logger.Info("documentation index built",
		slog.Int("documents", len(ix.docs)),
		slog.Int("installations", len(roots)),
		slog.Int("skipped", ix.skipped))
	return ix
}

// extractTopics collects up to MaxTopics heading titles (levels 1-3) from
// the first TopicPreviewBytes of the document.
func extractTopics(text string, opts Options) []string {
	preview := text
	if len(preview) > opts.TopicPreviewBytes {
		preview = preview[:opts.TopicPreviewBytes]
	}

	var topics []string
	for _, line := range strings.Split(preview, "\n") {
		if len(topics) >= opts.MaxTopics {
			break
		}
		hashes := 0
		for hashes < len(line) && line[hashes] == '#' {
			hashes++
		}
		if hashes < 1 || hashes > 3 || hashes == len(line) {
			continue
		}
		rest := line[hashes:]
		if rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		title := strings.TrimSpace(rest)
		if title == "" {
			continue
		}
		topics = append(topics, title)
	}
	return topics
}

// DocumentCount returns the number of indexed documents.
func (ix *Index) DocumentCount() int { return len(ix.docs) }

// Skipped returns how many files were skipped during the build because
// they could not be read.
func (ix *Index) Skipped() int { return ix.skipped }

// Roots returns the documentation roots the index was built from.
func (ix *Index) Roots() []Root { return ix.roots }

// XcodeVersions returns the sorted, unique installation tags that
// contributed at least one document.
func (ix *Index) XcodeVersions() []string {
	seen := make(map[string]bool)
	var versions []string
	for _, key := range ix.keys {
		if !seen[key.XcodeVersion] {
			seen[key.XcodeVersion] = true
			versions = append(versions, key.XcodeVersion)
		}
	}
	return versions
}

// GetDocument returns the full text of a document by name. With a non-empty
// xcodeVersion only that installation's copy is considered; otherwise the
// first copy in index order wins. If the in-memory content is missing the
// source file is re-read from disk. A human-readable not-found message is
// returned when no copy can be produced.
func (ix *Index) GetDocument(name, xcodeVersion string) string {
	for _, key := range ix.keys {
		if key.Name != name {
			continue
		}
		if xcodeVersion != "" && key.XcodeVersion != xcodeVersion {
			continue
		}
		if text, ok := ix.content[key]; ok && text != "" {
			return text
		}
		if data, err := os.ReadFile(ix.docs[key].Path); err == nil {
			return string(data)
		}
	}
	if xcodeVersion != "" {
		return fmt.Sprintf("Document '%s' not found in %s", name, xcodeVersion)
	}
	return fmt.Sprintf("Document '%s' not found", name)
}

// ListDocuments returns a catalog of all documents, deduplicated by name
// and sorted alphabetically. Each summary carries metadata from the first
// copy in index order and the sorted list of installations shipping it.
// A non-empty filter keeps only names containing it, case-insensitively.
func (ix *Index) ListDocuments(filter string) []DocumentSummary {
	filter = strings.ToLower(filter)

	byName := make(map[string]*DocumentSummary)
	var order []string
	for _, key := range ix.keys {
		if filter != "" && !strings.Contains(strings.ToLower(key.Name), filter) {
			continue
		}
		if s, ok := byName[key.Name]; ok {
			s.XcodeVersions = append(s.XcodeVersions, key.XcodeVersion)
			continue
		}
		doc := ix.docs[key]
		byName[key.Name] = &DocumentSummary{
			Name:          doc.Name,
			Topics:        doc.Topics,
			Size:          doc.Size,
			XcodeVersions: []string{key.XcodeVersion},
		}
		order = append(order, key.Name)
	}

	sort.Strings(order)
	summaries := make([]DocumentSummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		sort.Strings(s.XcodeVersions)
		summaries = append(summaries, *s)
	}
	return summaries
}
