// Package ui holds the terminal color themes and styles shared by the CLI
// output paths.
package ui
