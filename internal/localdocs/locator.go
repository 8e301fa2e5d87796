package localdocs

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appledeepdocs/appledocsmcp/internal/errors"
)

// LocatorOptions configures documentation root discovery.
type LocatorOptions struct {
	// ApplicationsDir is the directory searched for Xcode installations.
	ApplicationsDir string
	// XcodePatterns are glob patterns matched against ApplicationsDir
	// entries (e.g., "Xcode*.app").
	XcodePatterns []string
	// DocSubpath is the relative path from an Xcode bundle to its
	// documentation folder.
	DocSubpath string
	// OverridePath, when non-empty, is used as the only root and suppresses
	// discovery entirely. It must name an existing directory.
	OverridePath string
}

// ResolveRoots discovers documentation roots. With OverridePath set, that
// directory is the sole root; it must exist and be a directory (ERR_103
// otherwise). Otherwise every Xcode installation under ApplicationsDir is
// probed and only roots that exist and contain at least one markdown file
// are kept.
//
// Returns an ERR_102 configuration error when discovery finds nothing,
// naming the searched directory and the override mechanism.
func ResolveRoots(opts LocatorOptions, logger *slog.Logger) ([]Root, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if opts.OverridePath != "" {
		info, err := os.Stat(opts.OverridePath)
		if err != nil || !info.IsDir() {
			return nil, errors.ConfigError(errors.ErrCodeOverridePath,
				"documentation path override does not exist: "+opts.OverridePath).
				WithDetail("override_path", opts.OverridePath).
				WithSuggestion("Point XCODE_DOC_PATH at an existing directory of markdown documentation")
		}
		root := Root{Path: opts.OverridePath, Tag: installationTag(opts.OverridePath)}
		logger.Info("using documentation path override",
			slog.String("path", root.Path),
			slog.String("xcode_version", root.Tag))
		return []Root{root}, nil
	}

	var roots []Root
	seen := make(map[string]bool)
	for _, pattern := range opts.XcodePatterns {
		matches, err := filepath.Glob(filepath.Join(opts.ApplicationsDir, pattern))
		if err != nil {
			// Only malformed patterns error here; skip and keep probing.
			logger.Warn("bad xcode glob pattern", slog.String("pattern", pattern))
			continue
		}
		for _, app := range matches {
			if seen[app] {
				continue
			}
			seen[app] = true

			docDir := filepath.Join(app, filepath.FromSlash(opts.DocSubpath))
			if !hasMarkdown(docDir) {
				continue
			}
			root := Root{Path: docDir, Tag: filepath.Base(app)}
			roots = append(roots, root)
			logger.Info("found documentation root",
				slog.String("xcode_version", root.Tag),
				slog.String("path", root.Path))
		}
	}

	if len(roots) == 0 {
		return nil, errors.ConfigError(errors.ErrCodeNoDocRoots,
			"no Xcode documentation found under "+opts.ApplicationsDir).
			WithDetail("applications_dir", opts.ApplicationsDir).
			WithDetail("doc_subpath", opts.DocSubpath).
			WithSuggestion("Install Xcode 26 or later, or set XCODE_DOC_PATH to a directory of markdown documentation")
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].Tag < roots[j].Tag })
	return roots, nil
}

// installationTag derives an installation tag from a path by walking up to
// the nearest .app bundle segment. Paths with no .app ancestor fall back to
// the last path element, so override roots outside an Xcode bundle still
// get a stable, human-readable tag.
func installationTag(path string) string {
	clean := filepath.Clean(path)
	for _, part := range strings.Split(clean, string(filepath.Separator)) {
		if strings.HasSuffix(part, ".app") {
			return part
		}
	}
	if base := filepath.Base(clean); base != "." && base != string(filepath.Separator) {
		return base
	}
	return "Xcode"
}

// hasMarkdown reports whether dir exists and directly contains at least one
// .md file.
func hasMarkdown(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			return true
		}
	}
	return false
}
