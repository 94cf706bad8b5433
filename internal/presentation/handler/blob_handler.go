package handler

import (
	"errors"
	"net/http"

	"framecast/internal/application/usecase/abstraction"
	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/repository/database"
	"framecast/internal/presentation"

	"github.com/labstack/echo/v4"
)

type BlobHandler struct {
	blobs    database.BlobStore
	deleter  abstraction.Deleter
	enricher abstraction.Enricher
}

func NewBlobHandler(blobs database.BlobStore, deleter abstraction.Deleter,
	enricher abstraction.Enricher,
) *BlobHandler {
	return &BlobHandler{
		blobs:    blobs,
		deleter:  deleter,
		enricher: enricher,
	}
}

// HandleGet handles GET /blobs/:sha256 requests.
func (h *BlobHandler) HandleGet(c echo.Context) error {
	hash := c.Param(presentation.Sha256Param)
	if hash == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing sha256 hash")

		return c.NoContent(http.StatusBadRequest)
	}

	blob, err := h.blobs.GetByHash(c.Request().Context(), hash)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, blob)
}

// HandleDelete handles DELETE /blobs/:sha256 requests.
func (h *BlobHandler) HandleDelete(c echo.Context) error {
	hash := c.Param(presentation.Sha256Param)
	if hash == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing sha256 hash")

		return c.NoContent(http.StatusBadRequest)
	}

	found, err := h.deleter.DeleteBlob(c.Request().Context(), hash)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}

	return c.NoContent(http.StatusOK)
}

// HandleDeleteAll handles DELETE /blobs requests. The caller must opt in
// with confirm=true; anything else is rejected.
func (h *BlobHandler) HandleDeleteAll(c echo.Context) error {
	if c.QueryParam(presentation.ConfirmQuery) != "true" {
		c.Response().Header().Set(presentation.ReasonTag, "confirm=true required")

		return c.NoContent(http.StatusBadRequest)
	}

	res, err := h.deleter.DeleteAll(c.Request().Context())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, dto.DeleteAllResponse{
		Blobs:    res.Blobs,
		Variants: res.Variants,
	})
}

// HandleReanalyze handles POST /blobs/reanalyze requests.
func (h *BlobHandler) HandleReanalyze(c echo.Context) error {
	res, err := h.enricher.ReanalyzeAll(c.Request().Context())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, dto.ReanalyzeResponse{
		Analyzed: res.Analyzed,
		Skipped:  res.Skipped,
		Failed:   res.Failed,
	})
}
