package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andewx/riot"
	"github.com/andewx/riot/device"
	_ "github.com/andewx/riot/device/opengl/driver"
	"github.com/andewx/riot/internal/config"
	"github.com/andewx/riot/internal/logging"
	"github.com/andewx/riot/internal/window"
)

// display is the part of window.Display the game loop needs.
type display interface {
	Surface() device.Surface
	GetSize() (int, int)
	ShouldClose() bool
	PollEvents()
	Close()
}

// openDisplay is replaced in tests.
var openDisplay = func(opts window.Options) (display, error) {
	return window.Open(opts)
}

type runFlags struct {
	device   string
	frames   int
	windowed bool
}

func newRunCommand(opts *Options) *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the game loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("device") {
				cfg.Device = flags.device
			}
			if cmd.Flags().Changed("frames") {
				cfg.Frames = flags.frames
			}
			if cmd.Flags().Changed("windowed") {
				cfg.Windowed = flags.windowed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := LoggerFromContext(cmd.Context())
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				logger = loggerFor(cmd, cfg.LogLevel)
			}
			return run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&flags.device, "device", "", "Device backend (null, opengl)")
	cmd.Flags().IntVar(&flags.frames, "frames", 0, "Number of frames to render, 0 runs until the window closes")
	cmd.Flags().BoolVar(&flags.windowed, "windowed", true, "Run in a window instead of fullscreen")
	return cmd
}

// run drives one engine session: Initialize, CreateDevice, the frame loop
// and Shutdown.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (err error) {
	typ, err := cfg.DeviceType()
	if err != nil {
		return err
	}

	c := cfg.ClearColor
	engine := riot.New(
		riot.WithLogger(logger),
		riot.WithClearColor(c[0], c[1], c[2], c[3]),
		riot.WithClearDepth(cfg.ClearDepth),
	)
	if err := engine.Initialize(cfg.Windowed); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, engine.Shutdown())
	}()

	var disp display
	if typ != device.TypeNull {
		disp, err = openDisplay(window.Options{
			Title:    cfg.Title,
			Width:    cfg.Width,
			Height:   cfg.Height,
			Windowed: cfg.Windowed,
		})
		if err != nil {
			return err
		}
		defer disp.Close()
		w, h := disp.GetSize()
		logger.Info("display opened", "width", w, "height", h, "windowed", cfg.Windowed)

		if err := engine.CreateDevice(disp.Surface(), typ); err != nil {
			if !cfg.FallbackToNull {
				return err
			}
			logger.Warn("falling back to null device", "device", typ, "error", err)
			if err := engine.CreateDevice(device.NullSurface, device.TypeNull); err != nil {
				return err
			}
		}
	}

	if err := loadShaders(engine, cfg); err != nil {
		return err
	}

	frames, err := loop(ctx, engine, disp, cfg.Frames)
	logger.Info("game loop finished", "frames", frames)
	return err
}

// loadShaders compiles the configured shader files and pairs them into a
// material.
func loadShaders(engine *riot.Engine, cfg *config.Config) error {
	if cfg.VertexShader == "" || cfg.PixelShader == "" {
		return nil
	}
	vsrc, err := os.ReadFile(cfg.VertexShader)
	if err != nil {
		return fmt.Errorf("read vertex shader: %w", err)
	}
	psrc, err := os.ReadFile(cfg.PixelShader)
	if err != nil {
		return fmt.Errorf("read pixel shader: %w", err)
	}
	vs, err := engine.CreateVertexShader(string(vsrc))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.VertexShader, err)
	}
	ps, err := engine.CreatePixelShader(string(psrc))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.PixelShader, err)
	}
	_, err = engine.CreateMaterial(vs, ps)
	return err
}

// loop calls Frame until limit frames are done (never when limit is 0), the
// display closes or ctx is cancelled.
func loop(ctx context.Context, engine *riot.Engine, disp display, limit int) (int, error) {
	n := 0
	for limit == 0 || n < limit {
		select {
		case <-ctx.Done():
			return n, nil
		default:
		}
		if disp != nil {
			if disp.ShouldClose() {
				return n, nil
			}
			disp.PollEvents()
		}
		if err := engine.Frame(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func loggerFor(cmd *cobra.Command, level string) *slog.Logger {
	return logging.NewLogger(cmd.ErrOrStderr(), logging.ParseLevel(level))
}
