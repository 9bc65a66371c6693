// Package ui implements roster's Bubble Tea interface: the user table with
// its header bar and footer, the per-column filter popover, the help
// overlay and the diagnostics view.
//
// All table state lives in a grid.State; the model only dispatches grid
// actions and renders the derived view.
package ui
