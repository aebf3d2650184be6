// Package controllers implements the state controllers sitting between the
// stores and the rendering layer.
//
// Each controller owns a [Publisher] and follows the same unidirectional
// cycle: an event arrives, the controller reads a fresh snapshot from its
// store(s), and a complete new state is published. States move
// Loading → Ready | Failed; a Failed state is terminal for that load attempt
// only and the next Load/Refresh may recover.
//
//   - [Home] : Categories for the home tab, plus the favorite toggle relay
//   - [Library] : Playlists and favorited songs for the library tab
//
// Publishing is synchronous and ordered: subscribers observe states exactly in
// publish order and never a mix of two publishes. The TUI consumes state
// pull-style via State(), the Subscribe API serves push-style observers.
package controllers
