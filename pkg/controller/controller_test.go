package controller

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmailConfig_Determine(t *testing.T) {
	cases := map[string]Status{
		"":                 StatusBlank,
		"jane":             StatusIncomplete,
		"jane@example":     StatusIncomplete,
		"jane@example.com": StatusValid,
		"jane@@example.co": StatusInvalid,
		"jane@exa mple.co": StatusInvalid,
	}
	for input, want := range cases {
		if got := (EmailConfig{}).Determine(input).Status; got != want {
			t.Fatalf("Determine(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestBsbConfig(t *testing.T) {
	cfg := BsbConfig{}
	if got := cfg.Filter("06-2a111 99"); got != "062111" {
		t.Fatalf("filter: got %q", got)
	}
	if got := cfg.Display("062111"); got != "062-111" {
		t.Fatalf("display: got %q", got)
	}
	if state := cfg.Determine("0621"); state.Status != StatusIncomplete || state.ErrorKey != ErrKeyBsbIncomplete {
		t.Fatalf("expected incomplete, got %+v", state)
	}
	if state := cfg.Determine("001234"); state.Status != StatusInvalid {
		t.Fatalf("expected invalid, got %+v", state)
	}
	if state := cfg.Determine("062111"); !state.IsValid() || !state.Full {
		t.Fatalf("expected full valid state, got %+v", state)
	}
}

func TestAuAccountNumberConfig(t *testing.T) {
	cfg := AuAccountNumberConfig{}
	if state := cfg.Determine("1234"); state.Status != StatusIncomplete {
		t.Fatalf("expected incomplete, got %+v", state)
	}
	if state := cfg.Determine("12345"); !state.IsValid() || state.Full {
		t.Fatalf("expected valid non-full, got %+v", state)
	}
	if got := cfg.Filter("1234567890123"); got != "123456789" {
		t.Fatalf("filter should cap at nine digits, got %q", got)
	}
}

func TestIbanConfig(t *testing.T) {
	cfg := IbanConfig{}
	if got := cfg.Filter("de89 3704-0044 0532 0130 00"); got != "DE89370400440532013000" {
		t.Fatalf("filter: got %q", got)
	}
	if got := cfg.Display("DE89370400440532013000"); got != "DE89 3704 0044 0532 0130 00" {
		t.Fatalf("display: got %q", got)
	}

	cases := map[string]Status{
		"DE89370400440532013000": StatusValid,
		"GB82WEST12345698765432": StatusValid,
		"DE89370400440532013001": StatusInvalid,
		"12345678":               StatusInvalid,
		"ZZ123456":               StatusInvalid,
		"DE89":                   StatusIncomplete,
	}
	for input, want := range cases {
		if got := cfg.Determine(input).Status; got != want {
			t.Fatalf("Determine(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestPostalCodeConfig_FollowsCountry(t *testing.T) {
	country := "US"
	cfg := PostalCodeConfig{Country: func() string { return country }}

	if !cfg.Determine("94107").IsValid() {
		t.Fatalf("expected US zip to be valid")
	}
	if got := cfg.Determine("941").Status; got != StatusIncomplete {
		t.Fatalf("expected incomplete, got %s", got)
	}
	country = "CA"
	if got := cfg.Determine("94107").Status; got != StatusIncomplete {
		t.Fatalf("expected CA rule to reject US zip as incomplete, got %s", got)
	}
	if !cfg.Determine("K1A 0B1").IsValid() {
		t.Fatalf("expected CA postal code to be valid")
	}
	country = "JP"
	if !cfg.Determine("100-0001").IsValid() {
		t.Fatalf("unknown country should accept any non-blank value")
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct {
		rule  Capitalization
		input string
		want  string
	}{
		{CapitalizationNone, "jane doe", "jane doe"},
		{CapitalizationCharacters, "jane doe", "JANE DOE"},
		{CapitalizationWords, "jane  van der doe", "Jane  Van Der Doe"},
		{CapitalizationSentences, "hello. world? yes", "Hello. World? Yes"},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.rule, tc.input); got != tc.want {
			t.Fatalf("Capitalize(%s, %q) = %q, want %q", tc.rule, tc.input, got, tc.want)
		}
	}
}

func TestTextFieldController_SeedAndInput(t *testing.T) {
	ctrl := NewTextFieldController(NameConfig(), "jane doe", false)
	if ctrl.InitialValue() != "jane doe" || ctrl.Value() != "jane doe" {
		t.Fatalf("seed should be stored without capitalization, got %q", ctrl.Value())
	}

	ctrl.SetRawValue("john smith")
	if ctrl.Value() != "John Smith" {
		t.Fatalf("keyboard input should be capitalised, got %q", ctrl.Value())
	}
	if ctrl.InitialValue() != "jane doe" {
		t.Fatalf("initial value must not change after input")
	}
	if !ctrl.IsComplete() || ctrl.Error() != "" {
		t.Fatalf("expected complete controller, error=%q", ctrl.Error())
	}
}

func TestTextFieldController_RequiredAndOptional(t *testing.T) {
	required := NewTextFieldController(NameConfig(), "", false)
	if required.IsComplete() {
		t.Fatalf("blank required field must not be complete")
	}
	if required.Error() != ErrKeyRequired {
		t.Fatalf("expected required error, got %q", required.Error())
	}

	optional := NewTextFieldController(NameConfig(), "", true)
	if !optional.IsComplete() {
		t.Fatalf("blank optional field should be complete")
	}

	email := NewTextFieldController(EmailConfig{}, "jane@", false)
	if email.Error() != ErrKeyEmailIncomplete {
		t.Fatalf("expected incomplete email error, got %q", email.Error())
	}
}

func TestTextFieldController_ConcurrentWrites(t *testing.T) {
	ctrl := NewTextFieldController(EmailConfig{}, "", false)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctrl.SetRawValue("jane@example.com")
			_ = ctrl.State()
		}()
	}
	wg.Wait()
	if !ctrl.State().IsValid() {
		t.Fatalf("expected valid state after concurrent writes")
	}
}

func TestDropdownController(t *testing.T) {
	options := CountryOptions([]string{"us", "AU", "xx", "AU"})
	want := []DropdownOption{
		{Value: "AU", Label: "Australia"},
		{Value: "US", Label: "United States"},
	}
	if diff := cmp.Diff(want, options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	ctrl := NewDropdownController(options, "nowhere", "US")
	if ctrl.Value() != "US" || ctrl.InitialValue() != "nowhere" {
		t.Fatalf("expected fallback selection, got %q", ctrl.Value())
	}
	ctrl.SetRawValue("australia")
	if ctrl.Value() != "AU" || ctrl.SelectedIndex() != 0 {
		t.Fatalf("expected AU selected by label, got %q", ctrl.Value())
	}
	ctrl.SetRawValue("Atlantis")
	if ctrl.Value() != "AU" {
		t.Fatalf("unknown input should keep selection, got %q", ctrl.Value())
	}

	empty := NewDropdownController(options, "", "")
	if empty.IsComplete() || empty.Error() != ErrKeyCountryInvalid {
		t.Fatalf("expected incomplete dropdown")
	}
}

func TestTextFieldController_PostalStateFollowsCountryChange(t *testing.T) {
	country := NewDropdownController(CountryOptions([]string{"US", "DE"}), "US", "")
	postal := NewTextFieldController(PostalCodeConfig{Country: country.Value}, "", false)

	postal.SetRawValue("94107-1234")
	if !postal.IsComplete() {
		t.Fatalf("expected US zip to be complete, got %+v", postal.State())
	}

	country.SetRawValue("DE")
	if postal.IsComplete() || postal.Error() != ErrKeyPostalInvalid {
		t.Fatalf("expected stale zip to be invalid for DE, got %+v", postal.State())
	}

	country.SetRawValue("US")
	if !postal.IsComplete() {
		t.Fatalf("expected zip valid again after switching back, got %+v", postal.State())
	}
}
