// Package stores implements the in-memory data layer for the demo catalog.
//
// Two stores back the application:
//   - [CatalogStore] : Ordered categories of songs with toggleable favorite
//     state. Mutation is copy-on-write: ToggleFavorite rebuilds the full
//     snapshot and swaps it atomically, so readers never see a torn mix of old
//     and new categories.
//   - [PlaylistStore] : A fixed, read-only playlist collection.
//
// Both stores are constructed once at startup from a [Seed], either the
// embedded seed.toml or an external TOML document via [LoadSeed]. There is no
// persistence: state lives for the process and is discarded on exit.
//
// Song ids are assumed unique across categories in the shipped seed, but this
// is not enforced. ToggleFavorite is defined as a mapped transform over every
// match, so duplicate ids would simply all flip.
package stores
