package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the reader service and renders the current
// article: title link, summary, section outline and categories. All UI strings
// are localized via Localization.
