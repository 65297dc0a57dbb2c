package dropdown

import tea "github.com/charmbracelet/bubbletea"

// Managed wraps a Controller with a private open cell for callers that do
// not want to own the flag themselves. It forwards the stored value into
// the controlled core on every change and intercepts the toggle callback:
// the cell is updated first, then any caller-supplied callback (passed via
// WithOnToggle) is invoked with the same arguments. The core state machine
// stays a pure function of its inputs and remains testable on its own.
type Managed struct {
	*Controller
	open bool
	cfg  Config
	user OnToggleFunc
}

// NewManaged creates a self-managed dropdown starting from cfg. Options are
// passed through to the underlying Controller.
func NewManaged(cfg Config, opts ...Option) *Managed {
	m := &Managed{cfg: cfg}
	ctrl := New(opts...)
	m.open = ctrl.open
	m.user = ctrl.onToggle
	ctrl.onToggle = m.handleToggle
	m.Controller = ctrl
	ctrl.Update(m.open, cfg)
	return m
}

// handleToggle honors every request immediately: store, feed back, then
// call through.
func (m *Managed) handleToggle(open bool, msg tea.Msg, src Source) {
	m.open = open
	m.Controller.Update(open, m.cfg)
	if m.user != nil {
		m.user(open, msg, src)
	}
}

// SetConfig applies a new toggle configuration, re-running the update step
// with the stored open flag.
func (m *Managed) SetConfig(cfg Config) {
	m.cfg = cfg
	m.Controller.Update(m.open, cfg)
}

// Config returns the current toggle configuration.
func (m *Managed) Config() Config { return m.cfg }

// SetOpen forces the stored flag, as if the host had honored a request.
func (m *Managed) SetOpen(open bool) {
	m.open = open
	m.Controller.Update(open, m.cfg)
}
