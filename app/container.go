package app

import (
	"log/slog"

	"github.com/soocke/gripframe/capture"
	"github.com/soocke/gripframe/config"
	"github.com/soocke/gripframe/domain/action"
	"github.com/soocke/gripframe/domain/geometry"
	"github.com/soocke/gripframe/domain/gesture"
	"github.com/soocke/gripframe/domain/resize"
	"github.com/soocke/gripframe/ui/model"
	"github.com/soocke/gripframe/ui/presenter"
	"github.com/soocke/gripframe/ui/view"
)

// fallbackParent is used when the screen size cannot be queried.
var fallbackParent = geometry.R(0, 0, 1920, 1080)

// AppContainer assembles the engine, models, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Engine     *resize.Engine
	Model      *model.RegionModel
	Recognizer *gesture.Recognizer
	Keys       *presenter.KeyPointer
	Follower   *presenter.PointerFollower
	RootView   *view.RootView

	Region *presenter.RegionPresenter
	Loop   *presenter.Loop
}

// BuildContainer constructs all components. The parent is the primary screen
// so the region can be mirrored and captured in screen pixels.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}

	parent, err := capture.ScreenBounds()
	if err != nil || parent.IsEmpty() {
		if logger != nil {
			logger.Warn("screen bounds unavailable, using fallback", "error", err)
		}
		parent = fallbackParent
	}

	c.Engine = resize.NewEngine(cfg.Region(), cfg.EngineOptions(), logger)
	c.Engine.SetParent(parent)
	c.Model = model.NewRegionModel(c.Engine.Frame())
	c.Recognizer = gesture.NewRecognizer(c.Engine, nil, cfg.GestureOptions())
	c.Keys = presenter.NewKeyPointer(parent, c.Recognizer)
	c.Follower = presenter.NewPointerFollower(action.Cursor, c.Recognizer, logger)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.RootView.Cursor = func() (geometry.Point, bool) {
		return c.Keys.Position(), !c.Follower.Enabled()
	}
	c.Region = presenter.NewRegionPresenter(c.Engine, c.Model, c.RootView, cfg.GripSize, logger)
	c.Engine.SetObserver(c.Region)
	return c
}
