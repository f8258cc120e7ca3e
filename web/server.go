package web

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/gltf_browser/inspect"
	"github.com/mogaika/gltf_browser/logger"
	"github.com/mogaika/gltf_browser/status"
)

var ServerModel *inspect.Model

func Router(model *inspect.Model) *mux.Router {
	ServerModel = model

	r := mux.NewRouter()
	r.HandleFunc("/json/model", HandlerAjaxModel)
	r.HandleFunc("/json/model/{mesh}", HandlerAjaxMesh)
	r.HandleFunc("/json/model/{mesh}/{prim}", HandlerAjaxPrimitive)
	r.HandleFunc("/json/formats", HandlerAjaxFormats)
	r.HandleFunc("/ws/status", status.Handler)
	return r
}

func StartServer(addr string, model *inspect.Model) error {
	r := Router(model)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	logger.Sugar.Infof("[web] starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
