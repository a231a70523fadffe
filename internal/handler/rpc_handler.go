package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"viewify/internal/errors"
	"viewify/internal/rpc"
)

// RPCHandler dispatches calls on the merged procedure namespace.
type RPCHandler struct {
	registry *rpc.Registry
	contexts *rpc.ContextBuilder
	log      *zap.Logger
}

// NewRPCHandler creates a new RPC handler.
func NewRPCHandler(registry *rpc.Registry, contexts *rpc.ContextBuilder, log *zap.Logger) *RPCHandler {
	return &RPCHandler{registry: registry, contexts: contexts, log: log}
}

// Query godoc
// @Summary Call a query procedure
// @Description Dispatches a query on the merged namespace, e.g. products.getMany or user.me.
// @Tags rpc
// @Produce json
// @Param procedure path string true "Procedure name (router.procedure)"
// @Param input query string false "JSON-encoded input"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 405 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rpc/{procedure} [get]
func (h *RPCHandler) Query(c echo.Context) error {
	proc, ok := h.registry.Lookup(c.Param("procedure"))
	if !ok {
		return h.notFound()
	}
	if proc.Kind != rpc.KindQuery {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, errors.ErrorResponse{
			Error: "mutations must be called with POST",
			Code:  "METHOD_NOT_ALLOWED",
		})
	}
	return h.dispatch(c, proc, json.RawMessage(c.QueryParam("input")))
}

// Call godoc
// @Summary Call a procedure
// @Description Dispatches a query or mutation on the merged namespace with a JSON body as input.
// @Tags rpc
// @Accept json
// @Produce json
// @Param procedure path string true "Procedure name (router.procedure)"
// @Param input body interface{} false "Procedure input"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rpc/{procedure} [post]
func (h *RPCHandler) Call(c echo.Context) error {
	proc, ok := h.registry.Lookup(c.Param("procedure"))
	if !ok {
		return h.notFound()
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unreadable request body",
			Code:  "INVALID_REQUEST",
		})
	}
	return h.dispatch(c, proc, body)
}

func (h *RPCHandler) dispatch(c echo.Context, proc rpc.Procedure, input json.RawMessage) error {
	rctx, err := h.contexts.Build(c.Request().Context(), c.Request().Header)
	if err != nil {
		// Session resolution failures are not translated here.
		h.log.Error("session resolution failed", zap.Error(err))
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out, err := proc.Call(c.Request().Context(), rctx, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			h.log.Error("procedure failed",
				zap.String("procedure", proc.Name),
				zap.Error(err))
		}
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RPCHandler) notFound() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrProcedureNotFound)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
