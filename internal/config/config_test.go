package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-payforms/pkg/forms"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "en", cfg.Locale)
	require.Equal(t, "vanilla", cfg.Renderer)
	require.Equal(t, log.InfoLevel, cfg.Level())
	require.Equal(t, forms.Methods(), cfg.EnabledMethods())
	require.Nil(t, cfg.ThemeManifest())
}

func TestLoad_FileEnvAndFlagPrecedence(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
locale: de
merchant_name: File GmbH
default_country: de
log_level: debug
methods: [sepa_debit, bancontact, sepa_debit]
theme:
  name: acme
  variant: dark
  tokens:
    brand: "#123456"
  variants:
    dark:
      brand: "#654321"
`)
	t.Setenv("PAYFORMS_MERCHANT_NAME", "Env Ltd")
	t.Setenv("PAYFORMS_ADDR", ":9100")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	flags.String("merchant", "", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":9200"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, ":9200", cfg.Addr, "explicit flag wins")
	require.Equal(t, "Env Ltd", cfg.MerchantName, "env beats file")
	require.Equal(t, "de", cfg.Locale)
	require.Equal(t, log.DebugLevel, cfg.Level())
	require.Equal(t, []forms.Method{forms.MethodBancontact, forms.MethodSepaDebit}, cfg.EnabledMethods())

	manifest := cfg.ThemeManifest()
	require.NotNil(t, manifest)
	require.Equal(t, "acme", manifest.Name)
	require.Equal(t, "#123456", manifest.Tokens["brand"])
	require.Equal(t, "#654321", manifest.Variants["dark"].Tokens["brand"])
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"unknown method":  "methods: [klarna]",
		"unknown country": "default_country: XX",
		"bad log level":   "log_level: loud",
		"missing variant": "theme:\n  name: acme\n  variant: dark",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body), nil)
		require.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
