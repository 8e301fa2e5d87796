// Package localdocs indexes and searches Xcode's bundled
// AdditionalDocumentation markdown corpora.
//
// The package is organized around an immutable Index snapshot:
//
//   - ResolveRoots discovers documentation roots across installed Xcode
//     versions (or honors the XCODE_DOC_PATH override).
//   - Build loads every document into memory once at startup, keyed by a
//     typed (xcode version, document name) composite key.
//   - Search, GetDocument, ListDocuments, and XcodeVersions are read-only
//     queries over the snapshot and are safe for concurrent use.
//
// A document name is not unique on its own: the same document commonly
// ships with several Xcode versions. The composite key keeps those entries
// distinct while the catalog view deduplicates them for browsing.
package localdocs
