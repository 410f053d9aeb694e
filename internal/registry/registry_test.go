package registry

import (
	"errors"
	"testing"
)

func TestDefaultRegistryCoversEveryAppID(t *testing.T) {
	r := Default()
	ids := r.IDs()
	if len(ids) != 9 {
		t.Fatalf("expected 9 applications, got %d", len(ids))
	}
	for _, id := range ids {
		if !id.IsValid() {
			t.Fatalf("registry contains invalid id %q", id)
		}
		d, ok := r.Lookup(id)
		if !ok {
			t.Fatalf("lookup %q failed", id)
		}
		if d.Title == "" || d.Icon == "" || d.Label == "" {
			t.Fatalf("descriptor %q missing display metadata: %+v", id, d)
		}
	}
}

func TestDefaultMaximizeAllowList(t *testing.T) {
	r := Default()
	var allowed []AppID
	for _, d := range r.Descriptors() {
		if d.Maximizable {
			allowed = append(allowed, d.ID)
		}
	}
	if len(allowed) != 2 || allowed[0] != AppProjects || allowed[1] != AppTerminal {
		t.Fatalf("unexpected maximize allow-list: %v", allowed)
	}
}

func TestWithMaximizableOverridesFlags(t *testing.T) {
	r, err := Default().WithMaximizable([]AppID{AppMusic})
	if err != nil {
		t.Fatalf("with maximizable: %v", err)
	}
	music, _ := r.Lookup(AppMusic)
	term, _ := r.Lookup(AppTerminal)
	if !music.Maximizable || term.Maximizable {
		t.Fatalf("expected only music maximizable, got music=%v terminal=%v", music.Maximizable, term.Maximizable)
	}

	if _, err := Default().WithMaximizable([]AppID{"paint"}); !errors.Is(err, ErrUnknownApp) {
		t.Fatalf("expected ErrUnknownApp, got %v", err)
	}
}

func TestNewRejectsDuplicatesAndBadLayout(t *testing.T) {
	d := Descriptor{ID: AppAbout, Title: "ABOUT", Size: Size{W: 10, H: 5}}
	if _, err := New([]Descriptor{d, d}); !errors.Is(err, ErrDuplicateApp) {
		t.Fatalf("expected ErrDuplicateApp, got %v", err)
	}
	bad := d
	bad.Size = Size{}
	if _, err := New([]Descriptor{bad}); !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
}

func TestParseAppID(t *testing.T) {
	id, err := ParseAppID("  Terminal ")
	if err != nil || id != AppTerminal {
		t.Fatalf("parse terminal = %q, %v", id, err)
	}
	if _, err := ParseAppID("solitaire"); !errors.Is(err, ErrUnknownApp) {
		t.Fatalf("expected ErrUnknownApp, got %v", err)
	}
}
