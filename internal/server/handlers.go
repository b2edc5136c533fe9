package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/breedsnap/breedsnap-go/internal/llm"
)

// maxUploadBytes is the upload size cap. Matches the 10 MB limit the
// web client advertises.
const maxUploadBytes = 10 << 20

// multipartOverhead leaves room for the multipart framing around a
// maximum-size file before the body reader cuts the connection off.
const multipartOverhead = 1 << 20

// deviceID extracts the client-generated device identifier. It is an
// opaque correlation key, not an identity; absent means "unknown".
func deviceID(r *http.Request) string {
	if id := r.Header.Get("X-Device-Id"); id != "" {
		return id
	}
	return "unknown"
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, "Image exceeds the 10MB size limit", http.StatusBadRequest)
			return
		}
		respondError(w, "No image file provided", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, "No image file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		respondError(w, "Image exceeds the 10MB size limit", http.StatusBadRequest)
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		respondError(w, "Only image files are allowed", http.StatusBadRequest)
		return
	}

	sighting, err := s.svc.Identify(r.Context(), deviceID(r), image, mimeType)
	if err != nil {
		var notACat *llm.NotACatError
		if errors.As(err, &notACat) {
			respondJSON(w, map[string]string{
				"error":  "MEOWRRER 404: Not a cat",
				"reason": notACat.Reason,
			}, http.StatusBadRequest)
			return
		}
		respondError(w, "Failed to identify cat breed. Please try again.", http.StatusInternalServerError)
		return
	}

	respondJSON(w, toResponse(*sighting), http.StatusOK)
}

func (s *Server) handleListCats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sightings, err := s.svc.History(r.Context(), deviceID(r))
	if err != nil {
		respondError(w, "Failed to fetch cats", http.StatusInternalServerError)
		return
	}

	responses := make([]SightingResponse, 0, len(sightings))
	for _, sighting := range sightings {
		responses = append(responses, toResponse(sighting))
	}
	respondJSON(w, responses, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	respondJSON(w, s.metrics.GetSnapshot(), http.StatusOK)
}
