package platform

// Package platform contains OS integration: opening article links in the
// system default browser.
