package webutils

import (
	"encoding/json"
	"net/http"

	"github.com/mogaika/gltf_browser/logger"
)

func WriteResult(w http.ResponseWriter, data []byte) {
	if _, err := w.Write(data); err != nil {
		logger.Sugar.Errorf("[web] error writing response: %v", err)
	}
}

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	WriteResult(w, res)
}

// WriteError renders err as a json body. The message buffer is allocated per
// call, never shared.
func WriteError(w http.ResponseWriter, err error) {
	type jError struct {
		Error string `json:"error"`
	}
	data, merr := json.Marshal(&jError{Error: err.Error()})
	if merr != nil {
		logger.Sugar.Errorf("[web] error marshaling error %q: %v", err, merr)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	WriteResult(w, data)
}

// WriteNotFound renders a 404 with a json body.
func WriteNotFound(w http.ResponseWriter, what string) {
	type jError struct {
		Error string `json:"error"`
	}
	data, _ := json.Marshal(&jError{Error: what + " not found"})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	WriteResult(w, data)
}
