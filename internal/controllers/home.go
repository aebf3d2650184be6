package controllers

import (
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mixtape/internal/models"
)

// HomeState is the view state published for the home tab.
type HomeState struct {
	Phase      Phase
	Categories []models.Category
	Message    string
}

// Home mediates between the catalog store and the home tab. It loads
// categories, republishes them as view state, and relays favorite toggles
// back into the store.
type Home struct {
	catalog CatalogSource
	logger  *log.Logger
	pub     *Publisher[HomeState]
}

// NewHome creates the home controller and immediately runs the initial load,
// so the latest state after construction is Ready (or Failed).
func NewHome(catalog CatalogSource, logger *log.Logger) *Home {
	h := &Home{
		catalog: catalog,
		logger:  logger,
		pub:     NewPublisher(HomeState{Phase: Loading}),
	}
	h.Load()
	return h
}

// Load reads the category snapshot from the store and publishes a Ready
// state, or a Failed state carrying the failure message if the read throws.
func (h *Home) Load() {
	categories, err := h.readCategories()
	if err != nil {
		h.logger.Error("home load failed", "error", err)
		h.pub.Publish(HomeState{Phase: Failed, Message: err.Error()})
		return
	}

	h.pub.Publish(HomeState{Phase: Ready, Categories: categories})
}

// ToggleFavorite forwards the toggle to the catalog store, then re-runs the
// full load synchronously and republishes. There is no optimistic partial
// update. Returns whether any song matched the id; a miss leaves the catalog
// untouched but still republishes the (unchanged) snapshot.
func (h *Home) ToggleFavorite(songID string) bool {
	matched := h.catalog.ToggleFavorite(songID)
	if !matched {
		h.logger.Warn("toggle matched no song", "id", songID)
	}

	h.Load()
	return matched
}

// State returns the most recently published state.
func (h *Home) State() HomeState {
	return h.pub.Latest()
}

// Subscribe registers an observer for every subsequent published state.
func (h *Home) Subscribe(fn func(HomeState)) string {
	return h.pub.Subscribe(fn)
}

// Unsubscribe removes a previously registered observer.
func (h *Home) Unsubscribe(id string) {
	h.pub.Unsubscribe(id)
}

// readCategories converts a panicking catalog read into an error. The stores
// in this repo never throw, the recovery exists for alternate sources.
func (h *Home) readCategories() (categories []models.Category, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = loadError(r)
		}
	}()
	return h.catalog.Categories(), nil
}
