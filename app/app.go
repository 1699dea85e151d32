package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/gripframe/capture"
	"github.com/soocke/gripframe/config"
	"github.com/soocke/gripframe/domain/action"
	"github.com/soocke/gripframe/ui/presenter"
	"github.com/soocke/gripframe/ui/theme"
	"github.com/soocke/gripframe/ui/view"
)

const tick = 30 * time.Millisecond

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	afterID string
}

// NewApp sizes the main window and builds the container.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{logger: logger}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	a.c = BuildContainer(cfg, logger, cfgPath)
	return a
}

// Start builds the UI, schedules the update loop and blocks in the Tk event loop.
func (a *app) Start() {
	theme.InitStyles()
	c := a.c
	c.RootView.Build(view.Handlers{
		OnCapture:      a.captureRegion,
		OnToggleAspect: a.toggleAspect,
		OnToggleFollow: a.toggleFollow,
		OnExit:         a.exitHandler,
		OnStep: func(dx, dy float64) {
			c.Keys.Step(dx, dy)
			c.Region.NeedsRepaint()
		},
		OnToggle: c.Keys.Toggle,
		OnClick:  c.Keys.Click,
		OnCancel: func() {
			c.Keys.Lift()
			c.Recognizer.Cancel()
		},
		OnApplied: a.applyConfig,
	})
	c.Loop = presenter.NewLoop(c.Region, c.Follower.Poll, a.scheduleUpdate)
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps every engine call on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) toggleAspect() {
	e := a.c.Engine
	if !e.SetAspectLock(!e.AspectLocked()) && a.logger != nil {
		a.logger.Warn("aspect lock unchanged")
	}
	a.c.Config.AspectLock = e.AspectLocked()
	a.c.Region.NeedsRepaint()
}

// toggleFollow switches between the keyboard pointer and the OS pointer.
// Entering follow mode warps the OS pointer onto the region.
func (a *app) toggleFollow() {
	c := a.c
	on := !c.Follower.Enabled()
	if on {
		c.Keys.Lift()
		c.Recognizer.Cancel()
		center := c.Engine.Frame().Center()
		action.MoveCursor(int(center.X), int(center.Y))
	}
	c.Follower.SetEnabled(on)
	c.Region.NeedsRepaint()
	if a.logger != nil {
		a.logger.Info("pointer source", "follow", on)
	}
}

// applyConfig pushes edited constraint values into the engine. Minimums are
// refused by the engine while the aspect lock is held.
func (a *app) applyConfig(cfg *config.Config) {
	e := a.c.Engine
	okW := e.SetMinWidth(cfg.MinWidth)
	okH := e.SetMinHeight(cfg.MinHeight)
	e.SetHitMargin(cfg.HitMargin)
	if (!okW || !okH) && a.logger != nil {
		a.logger.Warn("minimum size not applied", "aspect_lock", e.AspectLocked())
	}
	a.c.Region.SetGripSize(cfg.GripSize)
	a.c.Region.NeedsRepaint()
}

// captureRegion grabs the screen pixels under the region and saves them.
func (a *app) captureRegion() {
	cfg := a.c.Config
	img, err := capture.GrabRegion(a.c.Engine.Frame())
	if err != nil {
		a.c.RootView.ClearCapture()
		if a.logger != nil {
			a.logger.Error("capture failed", "error", err)
		}
		return
	}
	a.c.RootView.ShowCapture(img)
	if _, err := capture.SavePNG(img, cfg.CaptureDir, time.Now(), a.logger); err != nil && a.logger != nil {
		a.logger.Error("save capture failed", "error", err)
	}
}
