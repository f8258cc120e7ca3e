package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/gltf_browser/gpuformat"
	"github.com/mogaika/gltf_browser/inspect"
	"github.com/mogaika/gltf_browser/webutils"
)

func HandlerAjaxModel(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, ServerModel)
}

func findMesh(name string) *inspect.Mesh {
	for _, mesh := range ServerModel.Meshes {
		if mesh.Name == name {
			return mesh
		}
	}
	return nil
}

func HandlerAjaxMesh(w http.ResponseWriter, r *http.Request) {
	mesh := findMesh(mux.Vars(r)["mesh"])
	if mesh == nil {
		webutils.WriteNotFound(w, "mesh "+mux.Vars(r)["mesh"])
		return
	}
	webutils.WriteJson(w, mesh)
}

func HandlerAjaxPrimitive(w http.ResponseWriter, r *http.Request) {
	mesh := findMesh(mux.Vars(r)["mesh"])
	if mesh == nil {
		webutils.WriteNotFound(w, "mesh "+mux.Vars(r)["mesh"])
		return
	}

	param := mux.Vars(r)["prim"]
	iPrim, err := strconv.Atoi(param)
	if err != nil {
		webutils.WriteError(w, errors.Errorf("param %q is not integer", param))
		return
	}
	if iPrim < 0 || iPrim >= len(mesh.Primitives) {
		webutils.WriteNotFound(w, "primitive "+param)
		return
	}
	webutils.WriteJson(w, mesh.Primitives[iPrim])
}

// HandlerAjaxFormats lists the element formats the pipeline recognizes.
func HandlerAjaxFormats(w http.ResponseWriter, r *http.Request) {
	type jFormat struct {
		Name     string `json:"name"`
		ByteSize uint32 `json:"byteSize"`
	}
	formats := []gpuformat.ElementFormat{
		gpuformat.FormatR32G32B32Float,
		gpuformat.FormatR32Uint,
		gpuformat.FormatR16Uint,
	}
	out := make([]jFormat, 0, len(formats))
	for _, f := range formats {
		out = append(out, jFormat{Name: f.String(), ByteSize: f.ByteSize()})
	}
	webutils.WriteJson(w, out)
}
