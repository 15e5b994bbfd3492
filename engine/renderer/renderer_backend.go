package renderer

import "github.com/Carmen-Shannon/constellations/common"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the GPU API behind a Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given pixel size.
	// Zero sizes (minimized window) leave the current configuration untouched.
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// ClearFrame acquires the next surface image, clears it to color and presents it.
	//
	// Parameters:
	//   - color: linear RGBA clear color
	//
	// Returns:
	//   - error: error if the surface image could not be acquired or recorded
	ClearFrame(color common.Color) error

	// Release frees every GPU object owned by the backend.
	Release()
}
