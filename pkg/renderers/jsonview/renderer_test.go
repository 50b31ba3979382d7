package jsonview_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payforms/pkg/elements"
	"github.com/goliatone/go-payforms/pkg/forms"
	"github.com/goliatone/go-payforms/pkg/i18n"
	"github.com/goliatone/go-payforms/pkg/render"
	"github.com/goliatone/go-payforms/pkg/renderers/jsonview"
	"github.com/goliatone/go-payforms/pkg/transform"
)

func TestRenderer_ElementTree(t *testing.T) {
	out := transform.Transform(forms.AfterpayClearpayForm, transform.InitialValues{
		elements.IdentifierEmail: "jane@example.com",
	}, transform.WithDefaultCountry("AU"))

	renderer := jsonview.New(jsonview.WithIDGenerator(func() string { return "fixed" }), jsonview.WithIndent("  "))
	payload, err := renderer.Render(context.Background(), render.Form{Method: "afterpay_clearpay", Elements: out}, render.RenderOptions{
		Locale:     "en",
		Translator: i18n.Default(),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var view render.View
	if err := json.Unmarshal(payload, &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.ID != "fixed" || view.Method != "afterpay_clearpay" || view.Complete {
		t.Fatalf("unexpected view header: %+v", view)
	}

	var kinds []string
	for _, node := range view.Nodes {
		kinds = append(kinds, node.Kind)
	}
	if diff := cmp.Diff([]string{"static_text", "name", "email", "section"}, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
	if view.Nodes[0].Text != "Pay in 4 interest-free payments" || view.Nodes[0].Input {
		t.Fatalf("unexpected header node: %+v", view.Nodes[0])
	}
	if view.Nodes[2].Value != "jane@example.com" || !view.Nodes[2].Complete {
		t.Fatalf("unexpected email node: %+v", view.Nodes[2])
	}

	address := view.Nodes[3].Children[0]
	var ids []string
	for _, child := range address.Children {
		ids = append(ids, child.ID)
	}
	want := []string{
		string(elements.IdentifierCountry),
		string(elements.IdentifierLine1),
		string(elements.IdentifierLine2),
		string(elements.IdentifierCity),
		string(elements.IdentifierPostalCode),
		string(elements.IdentifierState),
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("address order mismatch (-want +got):\n%s", diff)
	}
	if address.Children[0].Value != "AU" || !address.Children[2].Optional {
		t.Fatalf("unexpected address children: %+v", address.Children[:3])
	}
}

func TestRenderer_Metadata(t *testing.T) {
	renderer := jsonview.New()
	if renderer.Name() != "json" || renderer.ContentType() != "application/json" {
		t.Fatalf("unexpected metadata")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := renderer.Render(ctx, render.Form{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
