package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownApp    = errors.New("registry: unknown application id")
	ErrDuplicateApp  = errors.New("registry: duplicate application id")
	ErrInvalidLayout = errors.New("registry: invalid window layout")
)

// AppID names one of the portfolio's pseudo-applications.
type AppID string

const (
	AppAbout     AppID = "about"
	AppProjects  AppID = "projects"
	AppTerminal  AppID = "terminal"
	AppResume    AppID = "resume"
	AppContact   AppID = "contact"
	AppGames     AppID = "games"
	AppWebsites  AppID = "websites"
	AppDocuments AppID = "documents"
	AppMusic     AppID = "music"
)

func (id AppID) IsValid() bool {
	switch id {
	case AppAbout, AppProjects, AppTerminal, AppResume, AppContact, AppGames, AppWebsites, AppDocuments, AppMusic:
		return true
	default:
		return false
	}
}

func ParseAppID(raw string) (AppID, error) {
	id := AppID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownApp, raw)
	}
	return id, nil
}

type ContentKind string

const (
	ContentMarkdown ContentKind = "markdown"
	ContentTerminal ContentKind = "terminal"
	ContentMusic    ContentKind = "music"
)

type Point struct {
	X int
	Y int
}

type Size struct {
	W int
	H int
}

// Descriptor is the static display metadata of one window. Descriptors are
// built once at startup and never mutated afterwards.
type Descriptor struct {
	ID              AppID
	Title           string
	Icon            string
	Label           string
	Description     string
	DefaultPosition Point
	Size            Size
	IconPosition    Point
	Kind            ContentKind
	Markdown        string
	Maximizable     bool
}

func (d Descriptor) Validate() error {
	if !d.ID.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownApp, d.ID)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("registry: title is required for %q", d.ID)
	}
	if d.Size.W <= 0 || d.Size.H <= 0 {
		return fmt.Errorf("%w: %q has size %dx%d", ErrInvalidLayout, d.ID, d.Size.W, d.Size.H)
	}
	if d.DefaultPosition.X < 0 || d.DefaultPosition.Y < 0 {
		return fmt.Errorf("%w: %q has negative default position", ErrInvalidLayout, d.ID)
	}
	return nil
}

type Registry struct {
	order []AppID
	byID  map[AppID]Descriptor
}

func New(descriptors []Descriptor) (*Registry, error) {
	r := &Registry{
		order: make([]AppID, 0, len(descriptors)),
		byID:  make(map[AppID]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byID[d.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateApp, d.ID)
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d
	}
	return r, nil
}

// Default returns the built-in portfolio registry.
func Default() *Registry {
	r, err := New(defaultDescriptors())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Lookup(id AppID) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

func (r *Registry) Has(id AppID) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *Registry) IDs() []AppID {
	out := make([]AppID, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// WithMaximizable returns a copy of the registry where exactly the given ids
// carry the maximize toggle. Unknown ids are rejected.
func (r *Registry) WithMaximizable(ids []AppID) (*Registry, error) {
	allowed := make(map[AppID]bool, len(ids))
	for _, id := range ids {
		if !r.Has(id) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownApp, id)
		}
		allowed[id] = true
	}
	descriptors := r.Descriptors()
	for i := range descriptors {
		descriptors[i].Maximizable = allowed[descriptors[i].ID]
	}
	return New(descriptors)
}
