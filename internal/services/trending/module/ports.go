package module

import (
	"context"

	trendingdom "sentimenttech/internal/services/trending/domain"
	trendingsvc "sentimenttech/internal/services/trending/service"
)

// Ports exposed by the trending module
type Ports struct {
	Query trendingdom.QueryPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptQueryPort adapts the trending service to the domain port interface
type adaptQueryPort struct{ svc trendingsvc.Service }

// Stocks implements the domain QueryPort interface
func (a adaptQueryPort) Stocks(ctx context.Context) (trendingdom.StocksPage, error) {
	return a.svc.Stocks(ctx)
}

// Topics implements the domain QueryPort interface
func (a adaptQueryPort) Topics(ctx context.Context) (trendingdom.TopicsPage, error) {
	return a.svc.Topics(ctx)
}
