package format

// Package format turns parsed article query results into display text: the
// summary reflowed into short paragraphs, an indented section outline, a
// numbered category list and the canonical article URL.
