package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/uncal-lab/flowcanvas/pkg/cli/config"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

const validCatalog = `
[[component]]
id = "smtp-agent"
label = "SMTP Agent"
category = "Sender"
icon = "📤"

[component.schema]
title = "SMTP Agent Settings"

[[component.schema.tab]]
id = "general"
label = "General"

[[component.schema.tab.field]]
key = "name"
type = "text"
label = "Name"

[[component.schema.tab.field]]
key = "mode"
type = "select"
label = "Mode"
options = ["direct", "relay"]

[[component.schema.tab.field]]
key = "relayHost"
type = "text"
label = "Relay Host"

[component.schema.tab.field.conditional]
field = "mode"
value = "relay"

[[component]]
id = "imap-agent"
label = "IMAP Agent"
category = "Receiver"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadCatalog(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		catalog, err := config.LoadCatalog(writeCatalog(t, validCatalog))
		gt.NoError(t, err).Required()
		gt.Value(t, catalog.Len()).Equal(2)

		smtp, ok := catalog.Get("smtp-agent")
		gt.Value(t, ok).Equal(true)
		gt.Value(t, smtp.Category).Equal(types.CategorySender)
		gt.Value(t, smtp.Schema.Title).Equal("SMTP Agent Settings")
		gt.Array(t, smtp.Schema.FieldKeys()).Equal([]string{"name", "mode", "relayHost"})

		relay := smtp.Schema.FindField("relayHost")
		gt.Value(t, relay.Conditional).NotNil()
		gt.Value(t, relay.Conditional.Field).Equal("mode")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Value(t, errors.Is(err, config.ErrConfigNotFound)).Equal(true)
	})

	t.Run("broken TOML", func(t *testing.T) {
		_, err := config.LoadCatalog(writeCatalog(t, "[[component]\nid ="))
		gt.Value(t, errors.Is(err, config.ErrInvalidConfig)).Equal(true)
	})

	t.Run("duplicate IDs are rejected", func(t *testing.T) {
		dup := `
[[component]]
id = "a"
label = "A"
category = "Object"

[[component]]
id = "a"
label = "B"
category = "Object"
`
		_, err := config.LoadCatalog(writeCatalog(t, dup))
		gt.Error(t, err)
	})

	t.Run("select field without options is rejected", func(t *testing.T) {
		bad := `
[[component]]
id = "a"
label = "A"
category = "Object"

[[component.schema.tab]]
id = "t"

[[component.schema.tab.field]]
key = "mode"
type = "select"
label = "Mode"
`
		_, err := config.LoadCatalog(writeCatalog(t, bad))
		gt.Error(t, err)
	})
}
