package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"framecast/internal/application/usecase/abstraction"
	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/presentation"

	"github.com/labstack/echo/v4"
)

type SessionHandler struct {
	sessions abstraction.SessionManager
	poller   abstraction.Scheduler
}

func NewSessionHandler(sessions abstraction.SessionManager, poller abstraction.Scheduler) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		poller:   poller,
	}
}

type createSessionRequest struct {
	UserID string `json:"userId"`
}

// HandleCreate handles POST /picker/sessions requests. The background poll
// loop is started here; its lifetime is the session's, not the request's.
func (h *SessionHandler) HandleCreate(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed request body")

		return c.NoContent(http.StatusBadRequest)
	}

	session, err := h.sessions.Create(c.Request().Context(), req.UserID)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadGateway)
	}

	h.poller.Start(context.Background(), session.ID,
		time.Duration(session.PollIntervalMillis)*time.Millisecond)

	return c.JSON(http.StatusCreated, dto.SessionResponse{
		ID:                 session.ID,
		PickerURI:          session.PickerURI,
		PollIntervalMillis: session.PollIntervalMillis,
		ExpireTime:         session.ExpireTime,
	})
}

// HandlePoll handles GET /picker/sessions/:id requests with a one-shot
// status check, independent of the background loop.
func (h *SessionHandler) HandlePoll(c echo.Context) error {
	sessionID := c.Param(presentation.SessionIDParam)
	if sessionID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing session id")

		return c.NoContent(http.StatusBadRequest)
	}

	res, err := h.sessions.Poll(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.Response().Header().Set(presentation.ReasonTag, "unknown session")

			return c.NoContent(http.StatusNotFound)
		}
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadGateway)
	}

	if res.State == entity.SessionExpired {
		h.poller.Stop(sessionID)

		return c.JSON(http.StatusGone, dto.PollResponse{State: string(res.State)})
	}

	return c.JSON(http.StatusOK, dto.PollResponse{
		State:              string(res.State),
		PollIntervalMillis: res.PollIntervalMillis,
	})
}

// HandleIngest handles POST /picker/sessions/:id/ingest requests.
func (h *SessionHandler) HandleIngest(c echo.Context) error {
	sessionID := c.Param(presentation.SessionIDParam)
	if sessionID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing session id")

		return c.NoContent(http.StatusBadRequest)
	}

	res, err := h.sessions.Ingest(c.Request().Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.Response().Header().Set(presentation.ReasonTag, "unknown session")

			return c.NoContent(http.StatusNotFound)
		case errors.Is(err, entity.ErrSessionExpired):
			c.Response().Header().Set(presentation.ReasonTag, "session expired")

			return c.NoContent(http.StatusGone)
		default:
			c.Response().Header().Set(presentation.ReasonTag, err.Error())

			return c.NoContent(http.StatusBadGateway)
		}
	}

	h.poller.Stop(sessionID)

	return c.JSON(http.StatusOK, dto.IngestResponse{
		Queued: res.Queued,
		Failed: res.Failed,
	})
}

// HandleDelete handles DELETE /picker/sessions/:id requests.
func (h *SessionHandler) HandleDelete(c echo.Context) error {
	sessionID := c.Param(presentation.SessionIDParam)
	if sessionID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing session id")

		return c.NoContent(http.StatusBadRequest)
	}

	h.poller.Stop(sessionID)

	if err := h.sessions.Delete(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}
