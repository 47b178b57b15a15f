// Package domain defines core data models shared across the app.
// It contains plain types (addresses, boundary codecs) and the error
// taxonomy only.
package domain
