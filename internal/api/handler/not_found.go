package handler

import (
	"net/http"

	"github.com/vfg2006/expense-insights-api/pkg/apiErrors"
)

const MsgEndpointNotFound = "Endpoint not found"

func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, MsgEndpointNotFound)
	})
}
