package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"reefworld/internal/config"
	"reefworld/internal/reef"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfgPath := flag.String("config", "", "path to YAML configuration (defaults when empty)")
	fps := flag.Int("fps", 120, "frame rate cap, 0 for unlimited")
	flag.Parse()

	if err := run(*cfgPath, *fps); err != nil {
		slog.Error("reefview failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath string, fps int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log := reef.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(log)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}

	session, err := reef.NewSession(cfg, log)
	if err != nil {
		return err
	}
	defer session.Close()

	v, err := newViewer(window, session, fps, log)
	if err != nil {
		return err
	}
	defer v.dispose()

	v.loop()
	return nil
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "reefview", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// pacing is done by the FPS limiter
	glfw.SwapInterval(0)
	return window, nil
}

func frameLoop(window *glfw.Window, update func(dt float64), draw func()) {
	frames := 0
	lastFPSCheck := time.Now()
	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		update(dt)
		draw()
		frames++

		window.SwapBuffers()
		glfw.PollEvents()

		if time.Since(lastFPSCheck) >= time.Second {
			window.SetTitle(fmt.Sprintf("reefview  %d fps", frames))
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}
