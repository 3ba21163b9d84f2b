package model

// Package model defines domain data structures used across the app: parsed
// article query results, fetch cycles with their status enum, the language
// selection and theme state of a session, and the display-ready article view.
