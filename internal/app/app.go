// Package app holds the application state shared by the event handlers:
// the item store, the current search text and the theme flag.
package app

import (
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
)

// App is created once at startup and passed by pointer to the TUI.
type App struct {
	Store  *store.Store
	Search string
	Dark   bool

	log *log.Logger
}

func New(s *store.Store, dark bool, logger *log.Logger) *App {
	return &App{Store: s, Dark: dark, log: logger}
}

// Seed imports entries through the regular add path, so blank texts are
// dropped the same way as typed ones. It returns the number added.
func (a *App) Seed(seeds []jsonstore.Seed) int {
	n := 0
	for _, sd := range seeds {
		if _, ok := a.Store.Add(sd.Text); !ok {
			a.log.Debug("seed entry skipped", "text", sd.Text)
			continue
		}
		if sd.Done {
			a.Store.ToggleCompleted(a.Store.Len() - 1)
		}
		n++
	}
	a.log.Info("seeded items", "count", n)
	return n
}

// Visible is the filtered view currently on screen.
func (a *App) Visible() []model.Item {
	return a.Store.Filter(a.Search)
}

func (a *App) AddItem(text string) bool {
	it, ok := a.Store.Add(text)
	if !ok {
		a.log.Debug("add ignored: blank text")
		return false
	}
	a.log.Debug("item added", "id", it.ID)
	return true
}

// ToggleVisible flips the item shown at row of the visible list.
func (a *App) ToggleVisible(row int) bool {
	pos := a.position(row)
	if !a.Store.ToggleCompleted(pos) {
		a.log.Debug("toggle ignored", "row", row)
		return false
	}
	a.log.Debug("item toggled", "position", pos)
	return true
}

// RemoveVisible removes the item shown at row of the visible list.
func (a *App) RemoveVisible(row int) bool {
	pos := a.position(row)
	if !a.Store.Remove(pos) {
		a.log.Debug("remove ignored", "row", row)
		return false
	}
	a.log.Debug("item removed", "position", pos)
	return true
}

func (a *App) SetSearch(s string) {
	a.Search = s
}

func (a *App) ToggleTheme() {
	a.Dark = !a.Dark
	a.log.Debug("theme toggled", "dark", a.Dark)
}

// position maps a visible row to the underlying store position, -1 if none.
func (a *App) position(row int) int {
	vis := a.Visible()
	if row < 0 || row >= len(vis) {
		return -1
	}
	return a.Store.IndexOf(vis[row].ID)
}
