package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payforms/pkg/controller"
	"github.com/goliatone/go-payforms/pkg/elements"
)

// View is the localized, renderer-neutral projection of a Form. Renderers
// build their output from a View so label resolution, error mapping and
// controller state are handled once.
type View struct {
	ID         string        `json:"id"`
	Method     string        `json:"method"`
	Locale     string        `json:"locale,omitempty"`
	Action     string        `json:"action,omitempty"`
	Complete   bool          `json:"complete"`
	Nodes      []Node        `json:"elements"`
	FormErrors []string      `json:"errors,omitempty"`
	Hidden     []HiddenField `json:"hidden,omitempty"`
	Theme      *ThemeView    `json:"theme,omitempty"`
}

// Node is one element of a View.
type Node struct {
	ID             string       `json:"id"`
	Kind           string       `json:"kind"`
	Label          string       `json:"label,omitempty"`
	Text           string       `json:"text,omitempty"`
	Value          string       `json:"value,omitempty"`
	Display        string       `json:"display,omitempty"`
	Keyboard       string       `json:"keyboard,omitempty"`
	Capitalization string       `json:"capitalization,omitempty"`
	Optional       bool         `json:"optional,omitempty"`
	Input          bool         `json:"input"`
	Complete       bool         `json:"complete"`
	Status         string       `json:"status,omitempty"`
	Errors         []string     `json:"errors,omitempty"`
	Options        []OptionView `json:"options,omitempty"`
	Children       []Node       `json:"children,omitempty"`
}

// OptionView is a dropdown option.
type OptionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// ThemeView carries the selected theme and its resolved tokens.
type ThemeView struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant,omitempty"`
	Tokens  map[string]string `json:"tokens,omitempty"`
	CSSVars []CSSVar          `json:"-"`
}

// CSSVar is a custom property derived from a theme token.
type CSSVar struct {
	Name  string
	Value string
}

// BuildView resolves labels, values and errors for form.
func BuildView(form Form, opts RenderOptions) View {
	mapping := MapErrorPayload(form, opts.Errors)
	builder := viewBuilder{opts: opts, fieldErrors: mapping.Fields}

	view := View{
		ID:         strings.TrimSpace(opts.FormID),
		Method:     form.Method,
		Locale:     opts.Locale,
		Action:     opts.Action,
		Complete:   true,
		FormErrors: mapping.Form,
		Hidden:     SortedHiddenFields(opts.Hidden),
		Theme:      BuildThemeView(opts.Theme),
	}
	view.Nodes = builder.nodes(form.Elements, &view.Complete)
	return view
}

type viewBuilder struct {
	opts        RenderOptions
	fieldErrors map[string][]string
}

func (b viewBuilder) nodes(items []elements.FormElement, complete *bool) []Node {
	if len(items) == 0 {
		return nil
	}
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		node := b.node(item, complete)
		out = append(out, node)
	}
	return out
}

func (b viewBuilder) node(item elements.FormElement, complete *bool) Node {
	node := Node{
		ID:       item.Identifier().String(),
		Kind:     string(item.Kind()),
		Complete: true,
	}

	switch e := item.(type) {
	case *elements.TextFieldElement:
		node.Label = b.text(e.Label)
		node.Input = true
		if ctrl := e.Controller; ctrl != nil {
			state := ctrl.State()
			node.Value = ctrl.Value()
			node.Display = ctrl.DisplayValue()
			node.Keyboard = string(ctrl.KeyboardType())
			node.Capitalization = string(ctrl.Capitalization())
			node.Optional = ctrl.Optional()
			node.Complete = ctrl.IsComplete()
			node.Status = string(state.Status)
			node.Errors = b.errorsFor(node.ID, ctrl)
		}
	case *elements.DropdownElement:
		node.Label = b.text(e.Label)
		node.Input = true
		if ctrl := e.Controller; ctrl != nil {
			node.Value = ctrl.Value()
			node.Display = controller.CountryName(node.Value)
			node.Complete = ctrl.IsComplete()
			for _, opt := range ctrl.Options() {
				node.Options = append(node.Options, OptionView{
					Value:    opt.Value,
					Label:    opt.Label,
					Selected: opt.Value == node.Value,
				})
			}
			node.Errors = b.errorsFor(node.ID, ctrl)
		}
	case *elements.StaticTextElement:
		node.Text = b.text(e.Text)
	case *elements.MandateTextElement:
		node.Text = b.text(e.Text, e.MerchantName)
	case *elements.SectionElement:
		node.Label = b.text(e.Title)
		node.Errors = b.fieldErrors[node.ID]
		node.Children = b.nodes(e.Fields, complete)
	case *elements.AddressElement:
		node.Errors = b.fieldErrors[node.ID]
		node.Children = b.nodes(e.Fields, complete)
	}

	if !node.Complete || (node.Input && len(b.fieldErrors[node.ID]) > 0) {
		*complete = false
	}
	return node
}

func (b viewBuilder) text(id elements.TranslationID, args ...any) string {
	return Text(b.opts, string(id), args...)
}

func (b viewBuilder) errorsFor(id string, ctrl controller.Controller) []string {
	messages := append([]string(nil), b.fieldErrors[id]...)
	if b.opts.ShowValidation {
		if key := ctrl.Error(); key != "" {
			messages = append(messages, Text(b.opts, key))
		}
	}
	return normalizeMessages(messages)
}

// BuildThemeView flattens a theme selection into tokens: manifest tokens
// overlaid with the selected variant's tokens.
func BuildThemeView(selection *theme.Selection) *ThemeView {
	if selection == nil {
		return nil
	}
	view := &ThemeView{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  map[string]string{},
	}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			view.Tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				view.Tokens[key] = value
			}
		}
	}

	keys := make([]string, 0, len(view.Tokens))
	for key := range view.Tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name := strings.Trim(strings.NewReplacer(".", "-", "_", "-", " ", "-").Replace(key), "-")
		if name == "" {
			continue
		}
		view.CSSVars = append(view.CSSVars, CSSVar{Name: "--" + name, Value: view.Tokens[key]})
	}
	if len(view.Tokens) == 0 {
		view.Tokens = nil
	}
	return view
}
