package generator

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alovak/sepaqr/epc"
	"github.com/alovak/sepaqr/generator/models"
)

// API is the HTTP API for the payload generator service
type API struct {
	generator *Service
}

func NewAPI(generator *Service) *API {
	return &API{
		generator: generator,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/payloads", func(r chi.Router) {
		r.Post("/", a.createPayload)
		r.Get("/", a.listPayloads)
		r.Route("/{payloadID}", func(r chi.Router) {
			r.Get("/", a.getPayload)
			r.Get("/text", a.getPayloadText)
			r.Get("/qr", a.getPayloadQR)
		})
	})
}

func (a *API) createPayload(w http.ResponseWriter, r *http.Request) {
	create := models.CreatePayload{}
	err := json.NewDecoder(r.Body).Decode(&create)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := a.generator.CreatePayload(r.Context(), create)
	if err != nil {
		if errors.Is(err, epc.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payload)
}

func (a *API) getPayload(w http.ResponseWriter, r *http.Request) {
	payloadID := chi.URLParam(r, "payloadID")

	payload, err := a.generator.GetPayload(r.Context(), payloadID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}

func (a *API) listPayloads(w http.ResponseWriter, r *http.Request) {
	payloads, err := a.generator.ListPayloads(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payloads)
}

// getPayloadText serves the raw line-oriented payload, exactly the bytes a
// QR renderer should embed.
func (a *API) getPayloadText(w http.ResponseWriter, r *http.Request) {
	payloadID := chi.URLParam(r, "payloadID")

	payload, err := a.generator.GetPayload(r.Context(), payloadID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(payload.Text))
}

func (a *API) getPayloadQR(w http.ResponseWriter, r *http.Request) {
	payloadID := chi.URLParam(r, "payloadID")

	size := 0
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v <= 0 || v > 4096 {
			http.Error(w, "size must be a positive integer up to 4096", http.StatusBadRequest)
			return
		}
		size = v
	}

	png, err := a.generator.RenderQR(r.Context(), payloadID, size)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
