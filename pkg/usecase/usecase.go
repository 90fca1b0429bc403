package usecase

import (
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/interfaces"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/service/notify"
)

// DefaultReloadDelay is the pause between a successful save and the
// read-back reload that refreshes local state from the service.
const DefaultReloadDelay = time.Second

// UseCases wires the canvas, edit session and persistence flows together.
// One instance serves one workspace.
type UseCases struct {
	repo        interfaces.Repository
	backend     interfaces.ScenarioBackend
	notifier    interfaces.Notifier
	bus         interfaces.EventBus
	icons       model.IconResolver
	saveLock    bool
	reloadDelay time.Duration

	Canvas   *CanvasUseCase
	Session  *SessionUseCase
	Scenario *ScenarioUseCase
}

type Option func(*UseCases)

func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

func WithEventBus(bus interfaces.EventBus) Option {
	return func(uc *UseCases) {
		uc.bus = bus
	}
}

// WithSaveLock rejects a save for a file while a previous save of the
// same file is still in flight. Off by default: the service accepts
// concurrent writes and last-write-wins.
func WithSaveLock(enabled bool) Option {
	return func(uc *UseCases) {
		uc.saveLock = enabled
	}
}

func WithReloadDelay(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.reloadDelay = d
	}
}

func WithIconResolver(r model.IconResolver) Option {
	return func(uc *UseCases) {
		uc.icons = r
	}
}

func New(repo interfaces.Repository, backend interfaces.ScenarioBackend, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:        repo,
		backend:     backend,
		reloadDelay: DefaultReloadDelay,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.notifier == nil {
		uc.notifier = notify.NewLog()
	}

	uc.Canvas = newCanvasUseCase(uc)
	uc.Session = newSessionUseCase(uc)
	uc.Scenario = newScenarioUseCase(uc)

	return uc
}
