// Package corpusq provides a local, CLI-based lookup tool for a corpus
// of Markdown advisory documents. It loads a directory of documents
// (category inferred from the top-level subdirectory), splits each into
// heading-delimited sections, builds an in-memory keyword index, and
// answers conjunctive keyword queries with matching excerpts.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// goldmark/, bloom/).
package corpusq
