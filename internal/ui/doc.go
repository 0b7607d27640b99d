// Package ui holds the small terminal helpers shared by the CLI commands.
package ui
