package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/uncal-lab/flowcanvas/pkg/domain/model"
	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
	"github.com/uncal-lab/flowcanvas/pkg/usecase"
	"github.com/uncal-lab/flowcanvas/pkg/utils/errutil"
	"github.com/uncal-lab/flowcanvas/pkg/utils/safe"
)

type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w,
			goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnknownComponentType):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func fileIDParam(r *http.Request) types.FileID {
	return types.FileID(chi.URLParam(r, "fileID"))
}

func getCanvasHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		CanvasData string `json:"canvasData"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := uc.CanvasDocument(r.Context(), fileIDParam(r))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, response{CanvasData: doc.CanvasData})
	}
}

func putCanvasHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		CanvasData string `json:"canvasData"`
		Metadata   string `json:"metadata"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w,
				goerr.Wrap(err, "failed to decode request body"), http.StatusBadRequest)
			return
		}

		if err := uc.PutCanvasDocument(r.Context(), fileIDParam(r), req.CanvasData, req.Metadata); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, successResponse{Success: true})
	}
}

func saveScenarioHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
		Version int    `json:"version"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req model.SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w,
				goerr.Wrap(err, "failed to decode save request"), http.StatusBadRequest)
			return
		}

		rec, err := uc.StoreScenario(r.Context(), fileIDParam(r), &req)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, response{Success: true, ID: rec.ID, Version: rec.Version})
	}
}

func listExecutionsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Executions []*model.ExecutionLog `json:"executions"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := uc.Executions(r.Context(), fileIDParam(r))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		if logs == nil {
			logs = []*model.ExecutionLog{}
		}
		respondJSON(w, r, http.StatusOK, response{Executions: logs})
	}
}

func listComponentTypesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Components []*model.ComponentType `json:"components"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := uc.ComponentTypes(r.Context())
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		if entries == nil {
			entries = []*model.ComponentType{}
		}
		respondJSON(w, r, http.StatusOK, response{Components: entries})
	}
}

func createComponentTypeHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ct model.ComponentType
		if err := json.NewDecoder(r.Body).Decode(&ct); err != nil {
			errutil.HandleHTTP(r.Context(), w,
				goerr.Wrap(err, "failed to decode component type"), http.StatusBadRequest)
			return
		}

		created, err := uc.AddComponentType(r.Context(), &ct)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		respondJSON(w, r, http.StatusCreated, created)
	}
}

func deleteComponentTypeHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.RemoveComponentType(r.Context(), chi.URLParam(r, "typeID")); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, successResponse{Success: true})
	}
}

func getWorkspaceHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := uc.RestoreWorkspace(r.Context(), subjectFrom(r.Context()))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, snap)
	}
}

func putWorkspaceHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snap model.WorkspaceSnapshot
		if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
			errutil.HandleHTTP(r.Context(), w,
				goerr.Wrap(err, "failed to decode workspace snapshot"), http.StatusBadRequest)
			return
		}

		if err := uc.SaveWorkspace(r.Context(), subjectFrom(r.Context()), &snap); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, statusFor(err))
			return
		}
		respondJSON(w, r, http.StatusOK, successResponse{Success: true})
	}
}
