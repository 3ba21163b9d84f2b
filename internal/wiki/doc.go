package wiki

// Package wiki is a small MediaWiki API client: it asks an edition for one
// random main-namespace title, then fetches that title's plain-text extract,
// visible categories and section list. Failures are reported as NetworkError
// or ParseError so callers can tell transport problems from bad payloads.
