package handler

import (
	"errors"
	"net/http"

	"framecast/internal/application/usecase/abstraction"
	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/presentation"

	"github.com/labstack/echo/v4"
)

type CompletionHandler struct {
	ingestor abstraction.Ingestor
}

func NewCompletionHandler(ingestor abstraction.Ingestor) *CompletionHandler {
	return &CompletionHandler{
		ingestor: ingestor,
	}
}

// HandleCompletion handles POST /internal/completions requests from the
// processing worker.
func (h *CompletionHandler) HandleCompletion(c echo.Context) error {
	var result dto.ProcessingResult
	if err := c.Bind(&result); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed result payload")

		return c.JSON(http.StatusBadRequest, dto.CompletionResponse{Success: false})
	}

	if err := h.ingestor.Complete(c.Request().Context(), result); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, dto.CompletionResponse{Success: false})
		}

		return c.JSON(http.StatusInternalServerError, dto.CompletionResponse{Success: false})
	}

	return c.JSON(http.StatusOK, dto.CompletionResponse{Success: true})
}
