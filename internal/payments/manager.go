package payments

import "context"

// Manager routes checkout orders to the registered gateway adapters.
type Manager struct {
	cfg      Config
	gateways map[string]Gateway
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, gateways: make(map[string]Gateway)}
}

func (m *Manager) Register(method string, gateway Gateway) {
	m.gateways[method] = gateway
}

// CreateSession checks the deployment configuration, then dispatches to the
// adapter registered for method.
func (m *Manager) CreateSession(ctx context.Context, method string, order Order) (*Session, error) {
	if err := m.cfg.Validate(); err != nil {
		return nil, err
	}
	gateway, ok := m.gateways[method]
	if !ok {
		return nil, ErrUnknownMethod
	}
	return gateway.CreateSession(ctx, order)
}
