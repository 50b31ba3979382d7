package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-payforms/pkg/i18n"
	"github.com/goliatone/go-payforms/pkg/render"
)

// Option customises a Component.
type Option func(*Component)

// WithLogger sets the logger shared by the view-model.
func WithLogger(logger *log.Logger) Option {
	return func(c *Component) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTranslator replaces the embedded message catalog.
func WithTranslator(t render.Translator) Option {
	return func(c *Component) {
		if t != nil {
			c.translator = t
		}
	}
}

// Component holds the collaborators of one sheet session and the view-model
// built from them.
type Component struct {
	app        Application
	state      SavedState
	args       Args
	logger     *log.Logger
	translator render.Translator
	viewModel  *ViewModel
}

// NewComponent validates args and builds the view-model. state must be
// non-nil; it is shared with the caller so values saved by the view-model
// outlive the component.
func NewComponent(app Application, state SavedState, args Args, options ...Option) (*Component, error) {
	if state == nil {
		return nil, errors.New("sheet: saved state is required")
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}

	c := &Component{
		app:        app,
		state:      state,
		args:       args,
		logger:     log.New(io.Discard),
		translator: i18n.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	c.logger = c.logger.WithPrefix(loggerPrefix(app))

	c.viewModel = &ViewModel{
		method:       args.Method(),
		merchantName: merchantName(app, args),
		locale:       locale(app, args),
		state:        state,
		translator:   c.translator,
		logger:       c.logger,
	}
	c.logger.Debug("sheet component built", "method", c.viewModel.method, "locale", c.viewModel.locale)
	return c, nil
}

// ViewModel returns the view-model built for this session.
func (c *Component) ViewModel() *ViewModel {
	return c.viewModel
}

// Args returns the launch arguments.
func (c *Component) Args() Args {
	return c.args
}

func loggerPrefix(app Application) string {
	if name := strings.TrimSpace(app.Name); name != "" {
		return fmt.Sprintf("%s/sheet", name)
	}
	return "sheet"
}

func merchantName(app Application, args Args) string {
	if name := strings.TrimSpace(args.MerchantName); name != "" {
		return name
	}
	return strings.TrimSpace(app.Name)
}

func locale(app Application, args Args) string {
	if l := strings.TrimSpace(args.Locale); l != "" {
		return l
	}
	if l := strings.TrimSpace(app.DefaultLocale); l != "" {
		return l
	}
	return i18n.DefaultLocale
}
