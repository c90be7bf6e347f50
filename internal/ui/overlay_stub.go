//go:build !ebiten

package ui

import "wireworld/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int, *Pen) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Cursor reports no hovered cell in headless builds.
func (o *Overlay) Cursor() (int, int, bool) { return 0, 0, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
