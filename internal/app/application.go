package app

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/nextword/internal/client"
	"github.com/Rorical/nextword/internal/config"
	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/dispatcher"
	"github.com/Rorical/nextword/internal/eventbus"
	"github.com/Rorical/nextword/internal/logging"
	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/internal/update"
)

// Options tweak how the application is assembled
type Options struct {
	Profile  string     // Overrides the active profile for this run
	LogLevel slog.Level // Minimum level written to the log file
}

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.PredictService
	model      *AppModel
	logger     *slog.Logger
	logCloser  io.Closer
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	keys       update.KeyMap
	examples   []string
	baseURL    string
}

func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.Profile != "" {
		if err := cfg.UseProfile(opts.Profile); err != nil {
			return nil, err
		}
	}

	baseURL, err := cfg.BaseURL()
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log directory: %w", err)
	}
	logger, logCloser := logging.InitForTUI(dir, opts.LogLevel)
	logger = logger.With("profile", cfg.ActiveProfile)

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb, logger)

	backend := client.New(baseURL, cfg.Timeout(), logger)
	service := core.NewPredictService(backend, eb, cfg.PollInterval(), logger)

	model := newAppModel(disp, cfg.Examples(), baseURL)

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
		logger:     logger,
		logCloser:  logCloser,
	}, nil
}

func newAppModel(disp *dispatcher.EventDispatcher, examples []string, baseURL string) *AppModel {
	keys := update.DefaultKeyMap()
	// only examples with a shortcut are offered
	if len(examples) > len(keys.Examples) {
		examples = examples[:len(keys.Examples)]
	}
	return &AppModel{
		appModel:   models.NewAppModel(core.PromptLimit),
		dispatcher: disp,
		keys:       keys,
		examples:   examples,
		baseURL:    baseURL,
	}
}

func (app *Application) Start() error {
	app.logger.Info("starting", "base_url", app.model.baseURL)
	app.service.Start()

	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.eventBus.Close()
	app.logger.Info("stopped")
	_ = app.logCloser.Close()
}
