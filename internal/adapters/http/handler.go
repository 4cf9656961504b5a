package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/setdaily/internal/app"
	"github.com/randomtoy/setdaily/internal/domain"
)

type Handler struct {
	svc *app.PuzzleService
}

func NewHandler(svc *app.PuzzleService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/puzzle", h.Today)
	e.GET("/v1/puzzle/:day", h.ForDay)
	e.POST("/v1/puzzle/:day/check", h.Check)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Today(c echo.Context) error {
	p, err := h.svc.Today(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toPuzzleResponse(p, requestID(c)))
}

func (h *Handler) ForDay(c echo.Context) error {
	p, err := h.svc.ForDay(c.Request().Context(), c.Param("day"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toPuzzleResponse(p, requestID(c)))
}

func (h *Handler) Check(c echo.Context) error {
	var req CheckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be JSON like {\"cards\": [\"0000\", \"0011\", \"0022\"]}"})
	}

	res, err := h.svc.Check(c.Request().Context(), c.Param("day"), req.Cards)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, CheckResponse{
		Set:   domain.FormatCards(res.Set.Cards()),
		IsSet: res.IsSet,
		Found: res.Found,
	})
}

func toPuzzleResponse(p domain.Puzzle, requestID string) PuzzleResponse {
	sets := make([][]string, len(p.Sets))
	for i, s := range p.Sets {
		sets[i] = domain.FormatCards(s.Cards())
	}
	return PuzzleResponse{
		Day:   p.Day,
		Board: domain.FormatCards(p.Board),
		Sets:  sets,
		Meta: MetaResp{
			RequestID: requestID,
			Attempts:  p.Attempts,
			Fallback:  p.Fallback,
		},
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrInvalidCard),
		errors.Is(err, domain.ErrSelectionSize),
		errors.Is(err, domain.ErrDuplicateCard):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCardNotOnBoard):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
