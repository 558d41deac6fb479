// Package module wires posts into the API using modkit
package module

import (
	"net/http"

	modkit "sentimenttech/internal/modkit"
	"sentimenttech/internal/modkit/httpkit"
	str "sentimenttech/internal/platform/strings"
	"sentimenttech/internal/services/posts/domain"
	postshttp "sentimenttech/internal/services/posts/http"
	postssvc "sentimenttech/internal/services/posts/service"
)

// PortsIn lists the cross module ports posts consumes
type PortsIn struct {
	Fetcher domain.FetcherPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc postssvc.Service
}

// New constructs a posts module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("posts"), modkit.WithPrefix("/posts")}, opts...)...)

	in, ok := b.Ports.(PortsIn)
	if !ok || in.Fetcher == nil {
		panic("posts module requires PortsIn with a Fetcher")
	}
	svc := postssvc.New(in.Fetcher)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Service: adaptServicePort{svc: svc}}

	external := b.Register
	m.register = func(r httpkit.Router) {
		postshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
