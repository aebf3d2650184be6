// Package models defines the domain entities for the mixtape demo catalog.
//
// The package contains three value types:
//   - [Song] : A playable entry with a toggleable favorite flag
//   - [Category] : An ordered group of songs shown on the home tab
//   - [Playlist] : Static library metadata shown on the library tab
//
// All types carry TOML tags so the demo catalog can be seeded from a TOML
// document (see the stores package), and JSON tags for CLI output.
// None of the types hold references back into a store: every value handed out
// is a standalone snapshot.
package models
