package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/sandbox/internal/openglhelper"
)

// Renderer handles the window, the scene and the frame loop
type Renderer struct {
	window *openglhelper.Window
	state  *State
	scene  *Scene
}

// NewRenderer creates the window and GL context and loads the scene
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	// Create window
	window, err := openglhelper.NewWindow(openglhelper.WindowConfig{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		VSync:   cfg.VSync,
		Samples: cfg.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}

	renderer := &Renderer{
		window: window,
		state:  NewState(cfg),
	}

	// Set up callbacks
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(renderer.scrollCallback)
	window.SetMouseCaptured(true)

	scene, err := NewScene(cfg)
	if err != nil {
		window.Close()
		return nil, err
	}
	renderer.scene = scene

	Logger().Info("scene loaded", "assets", cfg.AssetRoot)
	return renderer, nil
}

// State returns the mutable per-run state
func (r *Renderer) State() *State {
	return r.state
}

// Run starts the main rendering loop and blocks until the window closes
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.state.Tick(glfw.GetTime())

		if r.state.ProcessInput(r.window.GLFWWindow()) {
			r.window.SetShouldClose(true)
		}

		r.window.Clear(ClearColor)
		r.scene.Draw(r.state.Frame(r.window.AspectRatio()))

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	Logger().Info("window closed")
	r.Cleanup()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.scene != nil {
		r.scene.Delete()
		r.scene = nil
	}
	r.window.Close()
}

// Callback functions
func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.window.IsMouseCaptured() {
		r.state.HandleCursor(xpos, ypos)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.state.HandleScroll(yoffset)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	Logger().Debug("framebuffer resized", "width", width, "height", height)
}
