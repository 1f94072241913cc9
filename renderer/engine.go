package renderer

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"ssao-renderer/capture"
	"ssao-renderer/core"
	"ssao-renderer/internal/logger"
	"ssao-renderer/internal/opengl"
	"ssao-renderer/scene"
	"ssao-renderer/ssao"
)

// Engine owns the window, the GL pipeline, the scene and the frame state,
// and drives the frame loop.
type Engine struct {
	cfg Config

	window *core.Window
	gl     *opengl.Renderer
	scene  *scene.Scene
	frame  *scene.FrameContext

	frames     uint64
	captureSeq int

	fpsFrames int
	fpsStart  float64
}

// NewEngine brings every subsystem up. Any failure is a *SetupError and
// leaves nothing allocated.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, setupErr("config", err)
	}

	sc, err := BuildScene(cfg)
	if err != nil {
		return nil, setupErr("mesh", err)
	}
	logger.Log.Info("scene loaded",
		zap.String("path", cfg.MeshPath),
		zap.Int("objects", len(sc.Objects)),
		zap.Int("triangles", sc.Triangles()),
	)

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return nil, setupErr("window", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	samples := ssao.NewSampleSet(seed)
	logger.Log.Debug("ssao sample set generated",
		zap.Int64("seed", seed),
		zap.Int("kernel", samples.Kernel().Len()),
		zap.Int("noise", samples.Noise().Size()),
	)

	fbWidth, fbHeight := window.GetFramebufferSize()
	width, height := targetSize(fbWidth, fbHeight, cfg.Window)
	glr, err := opengl.NewRenderer(opengl.Options{
		Width:           width,
		Height:          height,
		SSAO:            cfg.SSAO,
		AmbientStrength: cfg.AmbientStrength,
		Shininess:       cfg.Shininess,
		ClearColor:      cfg.ClearColor,
	}, samples)
	if err != nil {
		window.Destroy()
		return nil, setupErr("opengl", err)
	}

	e := &Engine{
		cfg:    cfg,
		window: window,
		gl:     glr,
		scene:  sc,
		frame:  scene.NewFrameContext(scene.NewCamera(cfg.CameraStart), fbWidth, fbHeight, window.Time()),
	}
	window.SetInputHandler(e.frame)
	e.fpsStart = window.Time()
	return e, nil
}

// targetSize is the size to allocate render targets at. A window that opens
// minimized reports a 0x0 framebuffer; the configured size stands in until
// the first framebuffer-size event resizes the targets.
func targetSize(fbWidth, fbHeight int, cfg core.WindowConfig) (int, int) {
	if fbWidth <= 0 || fbHeight <= 0 {
		logger.Log.Warn("framebuffer is zero-sized at startup, using configured size",
			zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
		return cfg.Width, cfg.Height
	}
	return fbWidth, fbHeight
}

// Run drives the loop until the window closes or a resize fails.
func (e *Engine) Run() error {
	for !e.window.ShouldClose() {
		e.window.PollEvents()
		if e.frame.CloseRequested() {
			e.window.SetShouldClose(true)
			break
		}

		now := e.window.Time()
		e.frame.Tick(now)

		if w, h, ok := e.frame.TakeResize(); ok && w > 0 && h > 0 {
			if err := e.gl.Resize(w, h); err != nil {
				return setupErr("render-targets", err)
			}
		}
		if e.frame.Minimized() {
			// zero-size framebuffer: skip the frame and sleep until an event
			e.window.WaitEvents()
			continue
		}

		e.gl.RenderFrame(BuildFrame(e.frame.Camera, e.frame.Aspect(), e.scene))
		e.handleCaptures()
		e.window.SwapBuffers()

		e.frames++
		e.updateTitle(now)
	}
	logger.Log.Info("frame loop finished", zap.Uint64("frames", e.frames))
	return nil
}

// handleCaptures writes any requested captures. Failures are logged only.
func (e *Engine) handleCaptures() {
	req := e.frame.TakeCaptures()
	if !req.Any() {
		return
	}
	e.captureSeq++
	if req.Frame {
		e.save(fmt.Sprintf("frame-%04d", e.captureSeq), e.gl.ReadFrame())
	}
	if req.Occlusion {
		e.save(fmt.Sprintf("occlusion-%04d", e.captureSeq), e.gl.ReadOcclusion())
	}
}

func (e *Engine) save(name string, img image.Image) {
	path, err := capture.Save(e.cfg.CaptureDir, name, e.cfg.CaptureFormat, img)
	if err != nil {
		logger.Log.Warn("capture failed", zap.String("name", name), zap.Error(err))
		return
	}
	logger.Log.Info("capture saved", zap.String("path", path))
}

func (e *Engine) updateTitle(now float64) {
	e.fpsFrames++
	elapsed := now - e.fpsStart
	if elapsed < 1 {
		return
	}
	w, h := e.gl.Size()
	e.window.SetTitle(fmt.Sprintf("%s | %.0f fps | %dx%d", e.cfg.Window.Title, float64(e.fpsFrames)/elapsed, w, h))
	e.fpsFrames = 0
	e.fpsStart = now
}

// Destroy releases GPU resources, then the window.
func (e *Engine) Destroy() {
	if e.gl != nil {
		e.gl.Destroy()
		e.gl = nil
	}
	if e.window != nil {
		e.window.Destroy()
		e.window = nil
	}
}
