package preview

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/0010capacity/oxinot/internal/logging"
	"github.com/0010capacity/oxinot/pkg/syntax"
)

// Registry is an ordered list of handlers. Dispatch walks the handlers
// in registration order and returns the first claiming handler's output:
// first-match-wins, not first-applicable-union.
//
// Order is a contract, not an accident: task list detection must precede
// generic list handling, strong must precede emphasis so a run of "**"
// is never partially consumed as "*", and block embeds must precede
// inline block refs. RegisterAll callers fix that order.
//
// A Registry is read-only after startup and safe to share across
// rebuilds.
type Registry struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *log.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: logging.ForComponent("registry"),
	}
}

// SetLogger replaces the registry's fault logger. Intended for tests
// capturing handler-fault output.
func (r *Registry) SetLogger(logger *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register appends a handler to the dispatch order.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, h)
}

// RegisterAll appends handlers preserving the given order.
func (r *Registry) RegisterAll(handlers []Handler) {
	for _, h := range handlers {
		r.Register(h)
	}
}

// Handlers returns the handlers in dispatch order.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handler, len(r.handlers))
	copy(out, r.handlers)
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// HandleNode dispatches a node to the first handler that claims it and
// returns that handler's decorations.
//
// A panicking handler is caught, logged, and treated as producing no
// decorations: a single malformed node must never abort the rebuild.
func (r *Registry) HandleNode(node *syntax.Node, ctx *Context) []Decoration {
	r.mu.RLock()
	handlers := r.handlers
	logger := r.logger
	r.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(node) {
			continue
		}
		decs, handled := r.safeHandle(h, node, ctx, logger)
		if handled {
			return decs
		}
	}
	return nil
}

func (r *Registry) safeHandle(h Handler, node *syntax.Node, ctx *Context, logger *log.Logger) (decs []Decoration, handled bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Warn("handler fault, node skipped",
				logging.FieldHandler, h.Name(),
				logging.FieldNode, node.TypeName,
				logging.FieldFrom, node.From,
				logging.FieldTo, node.To,
				logging.FieldError, fmt.Sprint(rec))
			// A faulting handler still claims the node; its output is
			// empty rather than deferred to a later handler.
			decs, handled = nil, true
		}
	}()
	decs, handled = h.Handle(node, ctx)
	return decs, handled
}

// registry singleton support. The engine takes the registry by explicit
// reference; the lazy default exists for test convenience only.
//
//nolint:gochecknoglobals // Lazily-built default registry, reset via ResetDefault
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
	defaultRegistryMu   sync.Mutex
	defaultFactory      func() *Registry
)

// SetDefaultFactory installs the function used to build the lazy default
// registry. Called once by the application wiring.
func SetDefaultFactory(factory func() *Registry) {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	defaultFactory = factory
}

// DefaultRegistry returns the lazily-initialized default registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistryMu.Lock()
		factory := defaultFactory
		defaultRegistryMu.Unlock()
		if factory != nil {
			defaultRegistry = factory()
		} else {
			defaultRegistry = NewRegistry()
		}
	})
	return defaultRegistry
}

// ResetDefault discards the default registry so the next DefaultRegistry
// call rebuilds it. Test hook.
func ResetDefault() {
	defaultRegistryMu.Lock()
	defer defaultRegistryMu.Unlock()
	defaultRegistry = nil
	defaultRegistryOnce = sync.Once{}
}
