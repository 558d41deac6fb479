package module_test

import (
	"testing"

	"sentimenttech/internal/modkit/httpkit"
	"sentimenttech/internal/modkit/module"
	"sentimenttech/internal/platform/testkit"
)

type greeter interface{ Greet() string }

type greeterImpl struct{}

func (greeterImpl) Greet() string { return "hi" }

type fakeModule struct{ ports any }

func (fakeModule) Name() string                 { return "fake" }
func (fakeModule) Prefix() string               { return "/fake" }
func (f fakeModule) Ports() any                 { return f.ports }
func (fakeModule) MountRoutes(r httpkit.Router) {}

type portBundle struct {
	Greeter greeter
}

func TestPortsOf_DirectAndFieldLookup(t *testing.T) {
	direct := fakeModule{ports: greeterImpl{}}
	if g, ok := module.PortsOf[greeter](direct); !ok || g.Greet() != "hi" {
		t.Fatalf("expected direct port lookup to succeed, ok=%v", ok)
	}

	bundled := fakeModule{ports: portBundle{Greeter: greeterImpl{}}}
	if g, ok := module.PortsOf[greeter](bundled); !ok || g.Greet() != "hi" {
		t.Fatalf("expected struct field lookup to succeed, ok=%v", ok)
	}
}

func TestPortsOf_MissingPort(t *testing.T) {
	empty := fakeModule{ports: nil}
	if _, ok := module.PortsOf[greeter](empty); ok {
		t.Fatal("expected lookup on nil ports to fail")
	}

	testkit.MustPanic(t, func() { module.MustPortsOf[greeter](empty) })
}

func TestRegistry_RoundTrip(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)

	module.Register("posts", portBundle{Greeter: greeterImpl{}})

	got, ok := module.PortsAs[portBundle]("posts")
	if !ok || got.Greeter.Greet() != "hi" {
		t.Fatalf("expected registered bundle back, ok=%v", ok)
	}

	if _, ok := module.PortsAs[portBundle]("missing"); ok {
		t.Fatal("expected unknown name to miss")
	}
}
