// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type helloCommand struct{ greeting string }

func TestRegistry_RegisterAndNew(t *testing.T) {
	t.Parallel()

	r := New()
	RegisterType[helloCommand](r, `App\Command\HelloCommand`)

	if !r.Has(`App\Command\HelloCommand`) {
		t.Fatal("Has() = false after Register")
	}
	a, err := r.New(`App\Command\HelloCommand`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := r.New(`App\Command\HelloCommand`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := a.(*helloCommand); !ok {
		t.Fatalf("New() returned %T, want *helloCommand", a)
	}
	if a == b {
		t.Error("New() must construct a fresh instance on every call")
	}
}

func TestRegistry_CaseInsensitiveAndLeadingSeparator(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(`App\Command\HTTPServerCommand`, func() Command { return &helloCommand{} })

	for _, name := range []string{
		`App\Command\HTTPServerCommand`,
		`App\Command\HttpServerCommand`,
		`\App\Command\HttpServerCommand`,
	} {
		if !r.Has(name) {
			t.Errorf("Has(%q) = false", name)
		}
	}
}

func TestRegistry_NotRegistered(t *testing.T) {
	t.Parallel()

	_, err := New().New(`App\Command\MissingCommand`)
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got: %v", err)
	}
	var nrErr *NotRegisteredError
	if !errors.As(err, &nrErr) || nrErr.TypeName != `App\Command\MissingCommand` {
		t.Errorf("unexpected error value: %#v", err)
	}
}

func TestRegistry_NilInstance(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("NilCommand", func() Command { return nil })
	if _, err := r.New("NilCommand"); err == nil {
		t.Fatal("expected error for factory returning nil")
	}
}

func TestRegistry_RegisterPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(r *Registry)
	}{
		{"duplicate", func(r *Registry) {
			RegisterType[helloCommand](r, "HelloCommand")
			RegisterType[helloCommand](r, "HelloCommand")
		}},
		{"duplicate ignoring case", func(r *Registry) {
			RegisterType[helloCommand](r, "HelloCommand")
			RegisterType[helloCommand](r, "helloCOMMAND")
		}},
		{"empty name", func(r *Registry) { RegisterType[helloCommand](r, `\`) }},
		{"nil factory", func(r *Registry) { r.Register("HelloCommand", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			tt.fn(New())
		})
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	r := New()
	RegisterType[helloCommand](r, `App\Command\ZCommand`)
	RegisterType[helloCommand](r, `App\Command\ACommand`)
	RegisterType[helloCommand](r, `\App\Command\MCommand`)

	want := []string{`App\Command\ACommand`, `App\Command\MCommand`, `App\Command\ZCommand`}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := New()
	RegisterType[helloCommand](r, "HelloCommand")

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if _, err := r.New("HelloCommand"); err != nil {
				t.Errorf("New() error = %v", err)
			}
			_ = r.Names()
		})
	}
	wg.Wait()
}
