package config

//go:generate go tool go-enum --nocase --marshal --names --mustparse

// Specification of requested output type.
// ENUM(yaml, tree)
type OutputFormat int
