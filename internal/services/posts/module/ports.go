package module

import (
	"context"

	postsdom "sentimenttech/internal/services/posts/domain"
	postssvc "sentimenttech/internal/services/posts/service"
)

// Ports exposed by the posts module
type Ports struct {
	Service postsdom.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the posts service to the domain port interface
type adaptServicePort struct{ svc postssvc.Service }

// Normalize implements the domain ServicePort interface
func (a adaptServicePort) Normalize(ctx context.Context, raw postsdom.RawComment) (postsdom.Post, error) {
	return a.svc.Normalize(ctx, raw)
}

// NormalizeAll implements the domain ServicePort interface
func (a adaptServicePort) NormalizeAll(ctx context.Context, raws []postsdom.RawComment) ([]postsdom.Post, error) {
	return a.svc.NormalizeAll(ctx, raws)
}

// PostsFor implements the domain ServicePort interface
func (a adaptServicePort) PostsFor(ctx context.Context, ticker string) ([]postsdom.Post, error) {
	return a.svc.PostsFor(ctx, ticker)
}
