// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI renders two tabs backed by the state controllers:
//  1. [HomeTab] : Browse the categorized catalog and toggle favorites
//  2. [LibraryTab] : Saved playlists and the favorited-songs list
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Controller reads and toggles run inside tea.Cmd closures and land
// as state messages, so the rendered frame always reflects a complete
// published state, never a partially applied one. Switching to the library
// tab refreshes it, which re-derives favorites from the latest catalog
// snapshot.
//
// Keyboard navigation uses vim-style bindings (j/k, f, tab, r, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
