package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
)

func placedAgent(t *testing.T) *model.PlacedComponent {
	t.Helper()
	canvas := model.NewCanvas()
	pc := gt.R1(canvas.Add(receiverType(), nil)).NoError(t)
	return pc
}

func TestEditSessionOpen(t *testing.T) {
	t.Run("seeds every declared field", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()

		values := session.Values()
		gt.Value(t, values["name"]).Equal("")
		gt.Value(t, values["retries"]).Equal(3)
		gt.Value(t, values["secure"]).Equal(false)
		gt.Value(t, session.ActiveTab()).Equal("general")
	})

	t.Run("existing data wins over defaults", func(t *testing.T) {
		pc := placedAgent(t)
		pc.Data = model.FieldMap{"retries": 7}

		session := model.NewEditSession()
		gt.NoError(t, session.Open(pc)).Required()
		gt.Value(t, session.Values()["retries"]).Equal(7)
	})

	t.Run("hidden fields are seeded too", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()

		values := session.Values()
		_, hasHost := values["host"]
		_, hasPort := values["port"]
		gt.Value(t, hasHost).Equal(true)
		gt.Value(t, hasPort).Equal(true)
	})

	t.Run("legacy critical keys are force-inserted", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()

		values := session.Values()
		gt.Value(t, values["renameTo"]).Equal("")
		gt.Value(t, values["moveTo"]).Equal("")
	})

	t.Run("second open is rejected while editing", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()

		err := session.Open(placedAgent(t))
		gt.Error(t, err)
		gt.Value(t, errors.Is(err, model.ErrSessionBusy)).Equal(true)
	})

	t.Run("open after close succeeds", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()
		session.Close()
		gt.NoError(t, session.Open(placedAgent(t)))
	})

	t.Run("component without schema is rejected", func(t *testing.T) {
		pc := placedAgent(t)
		pc.Schema = nil
		gt.Error(t, model.NewEditSession().Open(pc))
	})
}

func TestEditSessionVisibility(t *testing.T) {
	session := model.NewEditSession()
	gt.NoError(t, session.Open(placedAgent(t))).Required()

	gt.NoError(t, session.SetValue("mode", "x"))
	keys := fieldKeys(session.VisibleFields("general"))
	gt.Array(t, keys).Equal([]string{"name", "mode", "host"})

	gt.NoError(t, session.SetValue("mode", "y"))
	keys = fieldKeys(session.VisibleFields("general"))
	gt.Array(t, keys).Equal([]string{"name", "mode", "port"})
}

func fieldKeys(fields []model.Field) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	return keys
}

func TestEditSessionSelectTab(t *testing.T) {
	session := model.NewEditSession()
	gt.NoError(t, session.Open(placedAgent(t))).Required()

	gt.NoError(t, session.SelectTab("advanced"))
	gt.Value(t, session.ActiveTab()).Equal("advanced")

	err := session.SelectTab("nope")
	gt.Value(t, errors.Is(err, model.ErrUnknownTab)).Equal(true)
	gt.Value(t, session.ActiveTab()).Equal("advanced")
}

func TestEditSessionCommit(t *testing.T) {
	t.Run("returns values and resets", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()
		gt.NoError(t, session.SetValue("name", "inbox"))

		data, err := session.Commit()
		gt.NoError(t, err).Required()
		gt.Value(t, data["name"]).Equal("inbox")
		gt.Value(t, data["renameTo"]).Equal("")
		gt.Value(t, data["moveTo"]).Equal("")
		gt.Value(t, session.State()).Equal(model.SessionIdle)
	})

	t.Run("idle commit is rejected", func(t *testing.T) {
		_, err := model.NewEditSession().Commit()
		gt.Value(t, errors.Is(err, model.ErrSessionIdle)).Equal(true)
	})

	t.Run("set value after commit is rejected", func(t *testing.T) {
		session := model.NewEditSession()
		gt.NoError(t, session.Open(placedAgent(t))).Required()
		gt.R1(session.Commit()).NoError(t)

		err := session.SetValue("name", "late")
		gt.Value(t, errors.Is(err, model.ErrSessionIdle)).Equal(true)
	})
}

func TestPatchLegacyKeys(t *testing.T) {
	t.Run("inserts missing keys as empty strings", func(t *testing.T) {
		m := model.PatchLegacyKeys(model.FieldMap{"name": "x"})
		gt.Value(t, m["renameTo"]).Equal("")
		gt.Value(t, m["moveTo"]).Equal("")
	})

	t.Run("keeps existing values", func(t *testing.T) {
		m := model.PatchLegacyKeys(model.FieldMap{"renameTo": "target"})
		gt.Value(t, m["renameTo"]).Equal("target")
	})

	t.Run("nil map is replaced", func(t *testing.T) {
		m := model.PatchLegacyKeys(nil)
		gt.Value(t, m).NotNil()
		gt.Value(t, m["moveTo"]).Equal("")
	})
}
