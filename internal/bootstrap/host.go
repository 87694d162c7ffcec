package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/application/usecase"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/infrastructure/config"
	"github.com/bnema/gridterm/internal/infrastructure/eventbus"
	"github.com/bnema/gridterm/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/gridterm/internal/infrastructure/pty"
	"github.com/bnema/gridterm/internal/infrastructure/snapshot"
	"github.com/bnema/gridterm/internal/infrastructure/thumbnail"
	"github.com/bnema/gridterm/internal/logging"
	"github.com/bnema/gridterm/internal/ui/coordinator"
	"github.com/bnema/gridterm/internal/ui/input"
	"github.com/bnema/gridterm/internal/ui/mainloop"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Host. Frontend ports left nil get headless stand-ins.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// WorkingDirectory is where the first session starts.
	WorkingDirectory string
	// Shell overrides $SHELL for new sessions.
	Shell string
	// LayoutName is the saved layout to restore. Naming one restores it even
	// when layout.restore_on_startup is off; empty means the autosaved one.
	LayoutName string
	// NoRestore starts with a single fresh workspace.
	NoRestore bool
	// Watch reloads the keymap when the config file changes.
	Watch bool

	Notifier  port.Notifier
	Confirmer port.Confirmer
	Window    port.WindowCommander
	Capturer  port.ScreenCapturer
}

// Host owns the dispatch loop and everything running on it.
type Host struct {
	opts    Options
	ctx     context.Context
	cfgMgr  *config.Manager
	cfg     *config.Config
	logFile *os.File

	loop     *mainloop.Loop
	reloads  *mainloop.Coalescer
	bus      *eventbus.Bus
	db       *sqlite.LazyDB
	spawner  *pty.Spawner
	autosave *snapshot.Service
	coord    *coordinator.Coordinator
}

// New loads the configuration and assembles the core. Nothing runs until Run.
func New(ctx context.Context, opts Options) (*Host, error) {
	timer := NewStartupTimer()

	cfgMgr, err := newConfigManager(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	if err := cfgMgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := cfgMgr.Get()
	timer.Mark("config")

	h := &Host{opts: opts, cfgMgr: cfgMgr, cfg: cfg}
	h.ctx = h.initLogger(ctx)
	timer.Mark("logger")

	h.loop = mainloop.New()
	h.reloads = mainloop.NewCoalescer(h.loop.Post)
	h.bus = eventbus.New(logging.WithComponent(h.ctx, "eventbus"))
	h.spawner = pty.NewSpawner(h.loop.Post, opts.Shell)
	h.db = sqlite.NewLazyDB(cfg.Database.Path)
	layouts := sqlite.NewLazyLayoutRepository(h.db)

	if opts.Notifier == nil {
		opts.Notifier = logNotifier{}
	}
	if opts.Confirmer == nil {
		opts.Confirmer = autoConfirmer{post: h.loop.Post}
	}
	if opts.Window == nil {
		opts.Window = logWindow{}
	}

	thumbHeight := cfg.Layout.ThumbnailHeight
	if thumbHeight <= 0 {
		thumbHeight = entity.ThumbnailHeight
	}
	panesUC := usecase.NewManagePanesUseCase(h.spawner, cfgMgr)
	workspacesUC := usecase.NewManageWorkspacesUseCase(h.spawner, cfgMgr, opts.Confirmer, opts.Capturer, thumbnail.NewScaler(), thumbHeight)
	layoutsUC := usecase.NewSnapshotLayoutUseCase(layouts, h.spawner, cfgMgr, uuid.NewString)

	h.coord = coordinator.New(logging.WithComponent(h.ctx, "coordinator"), coordinator.Config{
		Panes:             panesUC,
		Workspaces:        workspacesUC,
		Switcher:          usecase.NewWorkspaceSwitcherUseCase(workspacesUC, h.bus),
		Layouts:           layoutsUC,
		Sessions:          h.spawner,
		Confirmer:         opts.Confirmer,
		Window:            opts.Window,
		Notifier:          opts.Notifier,
		Events:            h.bus,
		Subscriber:        h.bus,
		Keymap:            input.NewKeymap(h.ctx, cfg.Keybind),
		HandleGap:         cfg.Layout.HandleGap,
		ResizeStepPercent: cfg.Layout.ResizeStepPercent,
		MinPanePercent:    cfg.Layout.MinPanePercent,
	})

	h.autosave = snapshot.NewService(layoutsUC, h.coord, h.loop.Post, cfg.Layout.AutosaveIntervalMs)
	h.coord.SetOnStateChanged(h.autosave.MarkDirty)

	// Editors fire several writes per save; only the last config rebuilds the keymap.
	cfgMgr.OnConfigChange(func(next *config.Config) {
		h.reloads.Post("keymap", func() {
			h.coord.SetKeymap(input.NewKeymap(h.ctx, next.Keybind))
			logging.FromContext(h.ctx).Info().Msg("keymap reloaded")
		})
	})
	timer.Mark("wiring")
	timer.Log(h.ctx)

	h.opts = opts
	return h, nil
}

func newConfigManager(dir string) (*config.Manager, error) {
	if dir != "" {
		return config.NewManagerAt(dir)
	}
	return config.NewManager()
}

// initLogger builds the logger from the config, teeing into a per-run log
// file when enabled.
func (h *Host) initLogger(ctx context.Context) context.Context {
	lc := logging.ConfigFromValues(h.cfg.Logging.Level, h.cfg.Logging.Format)
	var fileErr error
	if h.cfg.Logging.EnableFileLog {
		dir := h.cfg.Logging.LogDir
		if dir == "" {
			dir, fileErr = config.GetLogDir()
		}
		if fileErr == nil {
			h.logFile, fileErr = logging.OpenSessionLog(dir, logging.GenerateRunID(), h.cfg.Logging.MaxFiles)
		}
		if h.logFile != nil {
			lc.Extra = h.logFile
		}
	}
	ctx = logging.WithContext(ctx, logging.New(lc))
	if fileErr != nil {
		logging.FromContext(ctx).Warn().Err(fileErr).Msg("file logging disabled")
	}
	return ctx
}

// Coordinator returns the coordinator frontends feed input into.
// Its methods must be called through Post.
func (h *Host) Coordinator() *coordinator.Coordinator {
	return h.coord
}

// Spawner returns the PTY spawner, for frontends that render sessions.
func (h *Host) Spawner() *pty.Spawner {
	return h.spawner
}

// Post queues fn on the dispatch loop.
func (h *Host) Post(fn func()) {
	h.loop.Post(fn)
}

// Run starts the first workspaces and dispatches until a quit is requested
// or ctx ends. SIGINT and SIGTERM request a quit like the close command does.
func (h *Host) Run(ctx context.Context) error {
	log := logging.FromContext(h.ctx)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	unsubscribe := h.bus.Subscribe(port.EventQuitRequested{}.EventName(), func(port.Event) {
		log.Info().Msg("quitting")
		h.loop.Stop()
	})
	defer unsubscribe()

	if h.opts.Watch {
		if err := h.cfgMgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}
	h.autosave.Start(h.ctx)

	var startErr error
	h.loop.Post(func() {
		startErr = h.coord.Start(h.ctx, coordinator.StartInput{
			WorkingDirectory: h.opts.WorkingDirectory,
			RestoreLayout:    !h.opts.NoRestore && (h.cfg.Layout.RestoreOnStartup || h.opts.LayoutName != ""),
			LayoutName:       h.opts.LayoutName,
		})
		if startErr != nil {
			h.loop.Stop()
		}
	})

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		err := h.loop.Run(gctx)
		if errors.Is(err, mainloop.ErrStopped) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(signals)
		for {
			select {
			case sig := <-signals:
				log.Info().Str("signal", sig.String()).Msg("quit requested by signal")
				h.loop.Post(func() { h.coord.RequestQuit(h.ctx) })
			case <-gctx.Done():
				return nil
			}
		}
	})

	err := g.Wait()
	if shutdownErr := h.shutdown(); err == nil {
		err = shutdownErr
	}
	if startErr != nil {
		return fmt.Errorf("start: %w", startErr)
	}
	return err
}

// shutdown saves the final layout and hangs up every session.
// The loop has stopped, so coordinator state is safe to read here.
func (h *Host) shutdown() error {
	log := logging.FromContext(h.ctx)
	ctx, cancel := context.WithTimeout(h.ctx, shutdownTimeout)
	defer cancel()

	h.reloads.Destroy()
	var errs []error
	if err := h.autosave.Stop(ctx); err != nil {
		log.Warn().Err(err).Msg("final layout save failed")
		errs = append(errs, err)
	}
	h.coord.Shutdown()
	if err := h.spawner.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Int("live", h.spawner.Live()).Msg("sessions still running at exit")
	}
	if err := h.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if h.logFile != nil {
		_ = h.logFile.Close()
	}
	return errors.Join(errs...)
}
