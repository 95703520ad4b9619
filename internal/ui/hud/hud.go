// Package hud provides the in-game heads-up display: the hotbar at the
// bottom of the screen and the warden's resource readout.
package hud

import (
	"fmt"
	"image/color"

	"github.com/SamuelWeese/rabbit-prison/internal/entity"
	"github.com/SamuelWeese/rabbit-prison/internal/item"
	"github.com/SamuelWeese/rabbit-prison/internal/render"
)

// Hotbar layout constants, in pixels.
const (
	SlotSize    = 50
	SlotSpacing = 4
	slotMargin  = 20 // gap between hotbar and the bottom screen edge
	iconMargin  = 8
)

// Config defines what the HUD displays.
type Config struct {
	ShowResources bool    // show the warden's carrots and money
	ShowDebug     bool    // show TPS and camera position
	Opacity       float64 // background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowResources: true,
		ShowDebug:     false,
		Opacity:       0.6,
	}
}

// HUD manages the heads-up display.
type HUD struct {
	config       *Config
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	// Data sources
	hotbar    *item.Hotbar
	resources *entity.Resources

	// Debug info
	tps              float64
	cameraX, cameraY float64
}

// New creates a HUD with the given configuration.
func New(config *Config, renderer render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     renderer,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetHotbar sets the hotbar to display.
func (h *HUD) SetHotbar(hb *item.Hotbar) {
	h.hotbar = hb
}

// SetResources sets the warden resources to display.
func (h *HUD) SetResources(res *entity.Resources) {
	h.resources = res
}

// SetScreenSize updates the screen dimensions.
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// SetDebugInfo updates the debug readout values.
func (h *HUD) SetDebugInfo(tps, cameraX, cameraY float64) {
	h.tps = tps
	h.cameraX = cameraX
	h.cameraY = cameraY
}

// Draw renders the HUD to the screen.
func (h *HUD) Draw(screen render.Image) {
	h.drawHotbar(screen)

	if h.config.ShowResources && h.resources != nil {
		text := fmt.Sprintf("Carrots: %d  Money: %d", h.resources.Carrots, h.resources.Money)
		h.renderer.DrawText(screen, text, 8, 8, color.White, 1.0)
	}

	if h.config.ShowDebug {
		text := fmt.Sprintf("TPS: %0.1f  Camera: (%0.0f, %0.0f)", h.tps, h.cameraX, h.cameraY)
		h.renderer.DrawText(screen, text, 8, h.screenHeight-20, color.White, 1.0)
	}
}

// drawHotbar draws the slot row centered at the bottom of the screen.
func (h *HUD) drawHotbar(screen render.Image) {
	if h.hotbar == nil {
		return
	}

	totalWidth := (SlotSize+SlotSpacing)*item.SlotCount - SlotSpacing
	startX := (h.screenWidth - totalWidth) / 2
	startY := h.screenHeight - SlotSize - slotMargin

	// Background bar behind the slots
	bgAlpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen,
		float32(startX-5), float32(startY-5),
		float32(totalWidth+10), float32(SlotSize+10),
		color.RGBA{0, 0, 0, bgAlpha})

	for i := 0; i < item.SlotCount; i++ {
		slotX := startX + i*(SlotSize+SlotSpacing)
		slotY := startY

		if i == h.hotbar.Selected() {
			h.renderer.FillRect(screen, float32(slotX), float32(slotY), SlotSize, SlotSize,
				color.RGBA{100, 100, 100, 200})
			h.renderer.StrokeRect(screen, float32(slotX), float32(slotY), SlotSize, SlotSize, 3,
				color.RGBA{255, 255, 255, 255})
		} else {
			h.renderer.FillRect(screen, float32(slotX), float32(slotY), SlotSize, SlotSize,
				color.RGBA{50, 50, 50, 200})
			h.renderer.StrokeRect(screen, float32(slotX), float32(slotY), SlotSize, SlotSize, 2,
				color.RGBA{150, 150, 150, 255})
		}

		if it := h.hotbar.Slot(i); it != nil {
			h.drawItemIcon(screen, it, slotX, slotY)
		}

		// Slot numeral (1-9)
		h.renderer.DrawText(screen, fmt.Sprintf("%d", i+1),
			slotX+SlotSize-15, slotY+SlotSize-15, color.White, 1.0)
	}
}

// drawItemIcon draws a simplified icon for an item inside a slot.
func (h *HUD) drawItemIcon(screen render.Image, it *item.Item, slotX, slotY int) {
	iconX := float32(slotX + iconMargin)
	iconY := float32(slotY + iconMargin)
	iconSize := float32(SlotSize - iconMargin*2)

	switch it.Kind {
	case item.KindWallBlock:
		h.renderer.FillRect(screen, iconX, iconY, iconSize, iconSize, color.RGBA{120, 120, 120, 255})
		h.renderer.StrokeRect(screen, iconX, iconY, iconSize, iconSize, 2, color.RGBA{80, 80, 80, 255})
	case item.KindDoorBlock:
		h.renderer.FillRect(screen, iconX, iconY, iconSize, iconSize, color.RGBA{101, 67, 33, 255})
		h.renderer.StrokeRect(screen, iconX, iconY, iconSize, iconSize, 2, color.RGBA{80, 50, 30, 255})
	case item.KindFoodBlock:
		h.renderer.FillCircle(screen, iconX+iconSize/2, iconY+iconSize/2, iconSize/2, color.RGBA{255, 100, 100, 255})
	case item.KindWaterBlock:
		h.renderer.FillRect(screen, iconX, iconY, iconSize, iconSize, color.RGBA{100, 180, 255, 255})
		h.renderer.StrokeRect(screen, iconX, iconY, iconSize, iconSize, 1, color.RGBA{80, 150, 255, 255})
	case item.KindShotgun:
		// Barrel and stock
		h.renderer.FillRect(screen, iconX, iconY+iconSize/3, iconSize, iconSize/3, color.RGBA{80, 80, 80, 255})
		h.renderer.FillRect(screen, iconX-iconSize/4, iconY+iconSize/3, iconSize/4, iconSize/3, color.RGBA{101, 67, 33, 255})
	case item.KindKey:
		h.renderer.FillCircle(screen, iconX+iconSize/4, iconY+iconSize/4, iconSize/4, color.RGBA{255, 215, 0, 255})
		h.renderer.FillRect(screen, iconX+iconSize/4-1, iconY+iconSize/2, 2, iconSize/2, color.RGBA{255, 215, 0, 255})
	}
}
