package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/api/response"
	deliverycontext "vitrine/internal/delivery/context"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/usecase/board"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminListingHandlerParams holds dependencies for AdminListingHandler, injected by Fx.
type AdminListingHandlerParams struct {
	fx.In

	Boards *board.Registry
	Logger *slog.Logger
}

// AdminListingHandler drives the signed-in operator's board.
type AdminListingHandler struct {
	boards *board.Registry
	logger *slog.Logger
}

func NewAdminListingHandler(params AdminListingHandlerParams) *AdminListingHandler {
	return &AdminListingHandler{
		boards: params.Boards,
		logger: params.Logger,
	}
}

// MutationResponse is returned by every board mutation.
type MutationResponse struct {
	Listing *ListingResponse `json:"listing,omitempty"`
	Board   BoardResponse    `json:"board"`
}

func (h *AdminListingHandler) operatorBoard(ctx context.Context) (*board.Board, error) {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return h.boards.ForOperator(userID), nil
}

func boardView(b *board.Board) BoardResponse {
	return toBoardResponse(b.Snapshot(), b.TakeNotifications())
}

// fail drops the notifications of a failed mutation; the error envelope replaces them.
func fail(b *board.Board, err error) error {
	b.TakeNotifications()

	return errors.WithStack(err)
}

// ListListings applies the query filters and page to the board and renders it.
// A filter change resets to page 1. Load failures keep the previous page and
// are reported through the notifications.
func (h *AdminListingHandler) ListListings(c echo.Context) error {
	var query ListingQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing query")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	b, err := h.operatorBoard(ctx)
	if err != nil {
		return err
	}

	filters := query.filters()
	page := query.Page
	if filters != b.Snapshot().Filters {
		b.SetFilters(filters)
		if page == 0 {
			page = 1
		}
	}

	if page > 0 {
		err = b.SetPage(ctx, page)
	} else {
		err = b.Reload(ctx)
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Board load failed", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, boardView(b))
}

func (h *AdminListingHandler) CreateListing(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	b, err := h.operatorBoard(ctx)
	if err != nil {
		return err
	}

	listing, err := b.Create(ctx, req.toForm())
	if err != nil {
		return fail(b, err)
	}
	created := toListingResponse(listing)

	return response.Success(c, http.StatusCreated, MutationResponse{Listing: &created, Board: boardView(b)})
}

func (h *AdminListingHandler) UpdateListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	patch := req.toPatch()
	if patch.IsEmpty() {
		return domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	ctx := c.Request().Context()
	b, err := h.operatorBoard(ctx)
	if err != nil {
		return err
	}

	if err := b.Update(ctx, id, patch); err != nil {
		return fail(b, err)
	}

	return response.Success(c, http.StatusOK, MutationResponse{Board: boardView(b)})
}

func (h *AdminListingHandler) DeleteListing(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	ctx := c.Request().Context()
	b, err := h.operatorBoard(ctx)
	if err != nil {
		return err
	}

	if err := b.Delete(ctx, id); err != nil {
		return fail(b, err)
	}

	return response.Success(c, http.StatusOK, MutationResponse{Board: boardView(b)})
}

// ToggleStatus flips a listing held on the board between active and paused.
func (h *AdminListingHandler) ToggleStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	ctx := c.Request().Context()
	b, err := h.operatorBoard(ctx)
	if err != nil {
		return err
	}

	if err := b.ToggleStatus(ctx, id); err != nil {
		return fail(b, err)
	}

	return response.Success(c, http.StatusOK, MutationResponse{Board: boardView(b)})
}
