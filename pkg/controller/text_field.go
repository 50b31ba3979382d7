package controller

import "sync"

// TextFieldController holds the value and validation state of a text input.
type TextFieldController struct {
	mu       sync.RWMutex
	cfg      TextFieldConfig
	optional bool
	initial  string
	value    string
}

// NewTextFieldController seeds a controller with initial. The seed passes
// through the config filter but is not re-capitalised; capitalization applies
// to keyboard input only.
func NewTextFieldController(cfg TextFieldConfig, initial string, optional bool) *TextFieldController {
	if cfg == nil {
		cfg = SimpleTextConfig{Caps: CapitalizationNone, Keyboard: KeyboardText}
	}
	c := &TextFieldController{
		cfg:      cfg,
		optional: optional,
		initial:  initial,
	}
	c.store(cfg.Filter(initial))
	return c
}

// SetRawValue applies the keyboard filter and capitalization rule to raw and
// stores the result.
func (c *TextFieldController) SetRawValue(raw string) {
	filtered := c.cfg.Filter(Capitalize(c.cfg.Capitalization(), raw))
	c.store(filtered)
}

func (c *TextFieldController) store(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
}

// Value returns the stored value.
func (c *TextFieldController) Value() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// DisplayValue returns the stored value formatted for presentation.
func (c *TextFieldController) DisplayValue() string {
	return c.cfg.Display(c.Value())
}

// InitialValue returns the value the controller was seeded with.
func (c *TextFieldController) InitialValue() string {
	return c.initial
}

// State returns the validation state of the current value. It is derived on
// every call, so rules that read other fields (the postal code reads the
// selected country) stay current.
func (c *TextFieldController) State() FieldState {
	return c.cfg.Determine(c.Value())
}

// Optional reports whether a blank value is acceptable.
func (c *TextFieldController) Optional() bool {
	return c.optional
}

// IsComplete reports whether the value can be submitted.
func (c *TextFieldController) IsComplete() bool {
	state := c.State()
	return state.IsValid() || (c.optional && state.IsBlank())
}

// Error returns the translation key describing why the field is not
// complete, or "" when it is.
func (c *TextFieldController) Error() string {
	if c.IsComplete() {
		return ""
	}
	state := c.State()
	if state.ErrorKey != "" {
		return state.ErrorKey
	}
	return ErrKeyRequired
}

func (c *TextFieldController) Capitalization() Capitalization { return c.cfg.Capitalization() }
func (c *TextFieldController) KeyboardType() KeyboardType     { return c.cfg.KeyboardType() }

var _ Controller = (*TextFieldController)(nil)
