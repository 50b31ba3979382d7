package controller

import (
	"strings"
	"sync"
)

// DropdownOption is a single selectable entry.
type DropdownOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DropdownController restricts its value to a fixed option list.
type DropdownController struct {
	mu      sync.RWMutex
	options []DropdownOption
	initial string
	value   string
}

// NewDropdownController seeds the controller with initial when it matches an
// option and falls back to fallback otherwise.
func NewDropdownController(options []DropdownOption, initial, fallback string) *DropdownController {
	c := &DropdownController{
		options: append([]DropdownOption(nil), options...),
		initial: initial,
	}
	if match, ok := c.match(initial); ok {
		c.value = match
	} else if match, ok := c.match(fallback); ok {
		c.value = match
	}
	return c
}

// Options returns a copy of the option list.
func (c *DropdownController) Options() []DropdownOption {
	return append([]DropdownOption(nil), c.options...)
}

// SetRawValue selects the option whose value or label matches raw
// (case-insensitive). Unknown input leaves the selection untouched.
func (c *DropdownController) SetRawValue(raw string) {
	match, ok := c.match(raw)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = match
}

func (c *DropdownController) match(raw string) (string, bool) {
	needle := strings.TrimSpace(raw)
	if needle == "" {
		return "", false
	}
	for _, opt := range c.options {
		if strings.EqualFold(opt.Value, needle) || strings.EqualFold(opt.Label, needle) {
			return opt.Value, true
		}
	}
	return "", false
}

// Value returns the selected option value.
func (c *DropdownController) Value() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SelectedIndex returns the index of the selected option or -1.
func (c *DropdownController) SelectedIndex() int {
	value := c.Value()
	for i, opt := range c.options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// InitialValue returns the value the controller was seeded with.
func (c *DropdownController) InitialValue() string {
	return c.initial
}

// IsComplete reports whether an option is selected.
func (c *DropdownController) IsComplete() bool {
	return c.Value() != ""
}

// Error returns a translation key when no option is selected.
func (c *DropdownController) Error() string {
	if c.IsComplete() {
		return ""
	}
	return ErrKeyCountryInvalid
}

var _ Controller = (*DropdownController)(nil)
