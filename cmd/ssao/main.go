package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"ssao-renderer/internal/logger"
	"ssao-renderer/internal/opengl"
	"ssao-renderer/renderer"
)

func main() {
	cfg := renderer.DefaultConfig()
	cfg.Debug = os.Getenv("SSAO_DEBUG") != ""

	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Log.Error("fatal", failureFields(err)...)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg renderer.Config) error {
	engine, err := renderer.NewEngine(cfg)
	if err != nil {
		return err
	}
	defer engine.Destroy()

	logger.Log.Info("controls: WASD/arrows move, mouse looks, scroll zooms, F12 frame capture, F11 occlusion capture, Esc quits")
	return engine.Run()
}

// failureFields names the failing subsystem and, for GPU setup errors, the
// program stage or framebuffer involved.
func failureFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var setup *renderer.SetupError
	if errors.As(err, &setup) {
		fields = append(fields, zap.String("subsystem", setup.Subsystem))
	}
	var shader *opengl.ShaderError
	if errors.As(err, &shader) {
		fields = append(fields, zap.String("program", shader.Program), zap.String("stage", shader.Stage))
	}
	var link *opengl.LinkError
	if errors.As(err, &link) {
		fields = append(fields, zap.String("program", link.Program), zap.String("stage", "link"))
	}
	var fb *opengl.FramebufferError
	if errors.As(err, &fb) {
		fields = append(fields, zap.String("framebuffer", fb.Name))
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		fields = append(fields, zap.String("path", pathErr.Path))
	}
	return fields
}
