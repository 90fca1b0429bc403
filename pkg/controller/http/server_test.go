package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/gt"
	httpctrl "github.com/uncal-lab/flowcanvas/pkg/controller/http"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/repository/memory"
	"github.com/uncal-lab/flowcanvas/pkg/service/backend"
	"github.com/uncal-lab/flowcanvas/pkg/usecase"
)

func newTestServer(t *testing.T, opts ...httpctrl.Options) (*httptest.Server, *usecase.UseCases) {
	t.Helper()
	uc := usecase.New(memory.New(), nil)
	srv := httptest.NewServer(httpctrl.New(uc, opts...))
	t.Cleanup(srv.Close)
	return srv, uc
}

func TestSaveScenarioRoundTrip(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	client := backend.New(srv.URL)
	fileID := types.FileID("file-1")

	// Before any save the canvas document does not exist.
	payload, err := client.LoadCanvas(ctx, fileID)
	gt.NoError(t, err)
	gt.Value(t, payload).Nil()

	req := &model.SaveRequest{
		Components: []model.WireComponent{
			{
				ID: "1700000000001", Type: "Sender", Label: "SMTP Agent", Icon: "📤",
				Config: &model.ConfigSection{
					Data: model.FieldMap{"renameTo": "x", "moveTo": ""},
				},
			},
		},
		Project:   "proj",
		Scenarios: "main",
		Metadata: model.SaveMetadata{
			Author: "alice", UserID: "u1",
			Timestamp: time.Now().UTC(), Version: 1,
		},
	}
	gt.NoError(t, client.SaveScenario(ctx, fileID, req)).Required()

	// The saved canvas reads back with both sub-trees populated.
	payload, err = client.LoadCanvas(ctx, fileID)
	gt.NoError(t, err).Required()
	gt.Value(t, payload).NotNil()
	gt.Value(t, len(payload.Components)).Equal(1)

	wc := payload.Components[0]
	gt.Value(t, wc.Label).Equal("SMTP Agent")
	gt.Value(t, wc.Config).NotNil()
	gt.Value(t, wc.Form).NotNil()
	gt.Value(t, wc.Config.Data["renameTo"]).Equal("x")
	gt.Value(t, wc.Form.Data["renameTo"]).Equal("x")
}

func TestPutCanvasDirect(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx := context.Background()
	client := backend.New(srv.URL)
	fileID := types.FileID("file-2")

	encoded, err := model.EncodeCanvasData(&model.WirePayload{
		Version:    1,
		Components: []model.WireComponent{{ID: "5", Type: "Receiver", Label: "IMAP"}},
	})
	gt.NoError(t, err).Required()

	gt.NoError(t, client.PutCanvas(ctx, fileID, encoded, `{"author":"bob"}`)).Required()

	payload, err := client.LoadCanvas(ctx, fileID)
	gt.NoError(t, err).Required()
	gt.Value(t, len(payload.Components)).Equal(1)
	gt.Value(t, payload.Components[0].Label).Equal("IMAP")
}

func TestComponentTypeEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	ct := model.ComponentType{
		ID: "smtp-agent", Label: "SMTP Agent", Category: types.CategorySender, Icon: "📤",
	}
	body, err := json.Marshal(ct)
	gt.NoError(t, err).Required()

	resp, err := http.Post(srv.URL+"/api/components/", "application/json", bytes.NewReader(body))
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/components/")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	var list struct {
		Components []model.ComponentType `json:"components"`
	}
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&list)).Required()
	gt.Value(t, len(list.Components)).Equal(1)
	gt.Value(t, list.Components[0].Label).Equal("SMTP Agent")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/components/smtp-agent", nil)
	gt.NoError(t, err).Required()
	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	resp.Body.Close()

	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	resp.Body.Close()
}

func TestExecutionEndpoint(t *testing.T) {
	srv, uc := newTestServer(t)
	ctx := context.Background()
	fileID := types.FileID("file-3")

	for _, status := range []model.ExecutionStatus{model.ExecutionSuccess, model.ExecutionFailed} {
		_, err := uc.RecordExecution(ctx, &model.ExecutionLog{FileID: fileID, Status: status})
		gt.NoError(t, err).Required()
		time.Sleep(2 * time.Millisecond)
	}

	resp, err := http.Get(srv.URL + "/api/projects/files/file-3/executions")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	var body struct {
		Executions []model.ExecutionLog `json:"executions"`
	}
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body)).Required()
	gt.Value(t, len(body.Executions)).Equal(2)
	// Most recent first.
	gt.Value(t, body.Executions[0].Status).Equal(model.ExecutionFailed)
}

func TestWorkspaceEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/workspace/")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	resp.Body.Close()

	snap := model.WorkspaceSnapshot{
		OpenFiles:  []string{"file-1"},
		ActiveFile: "file-1",
	}
	body, err := json.Marshal(snap)
	gt.NoError(t, err).Required()

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/workspace/", bytes.NewReader(body))
	gt.NoError(t, err).Required()
	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/workspace/")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	var restored model.WorkspaceSnapshot
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&restored)).Required()
	gt.Value(t, restored.ActiveFile).Equal("file-1")
	gt.Value(t, restored.SavedAt.IsZero()).Equal(false)
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	srv, _ := newTestServer(t, httpctrl.WithAuthSecret(secret))

	t.Run("request without token is rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/components/")
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusUnauthorized)
		resp.Body.Close()
	})

	t.Run("request with a bad token is rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/components/", nil)
		gt.NoError(t, err).Required()
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := http.DefaultClient.Do(req)
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusUnauthorized)
		resp.Body.Close()
	})

	t.Run("request with a signed token passes", func(t *testing.T) {
		token, err := jwt.NewBuilder().
			Subject("u1").
			IssuedAt(time.Now()).
			Expiration(time.Now().Add(time.Hour)).
			Build()
		gt.NoError(t, err).Required()

		signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
		gt.NoError(t, err).Required()

		req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/components/", nil)
		gt.NoError(t, err).Required()
		req.Header.Set("Authorization", "Bearer "+string(signed))

		resp, err := http.DefaultClient.Do(req)
		gt.NoError(t, err).Required()
		gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
		resp.Body.Close()
	})

	t.Run("backend client carries the token through", func(t *testing.T) {
		token, err := jwt.NewBuilder().
			Subject("u1").
			Expiration(time.Now().Add(time.Hour)).
			Build()
		gt.NoError(t, err).Required()
		signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, secret))
		gt.NoError(t, err).Required()

		client := backend.New(srv.URL, backend.WithTokenSource(backend.StaticTokenSource(string(signed))))
		payload, err := client.LoadCanvas(context.Background(), "nope")
		gt.NoError(t, err)
		gt.Value(t, payload).Nil()
	})
}
