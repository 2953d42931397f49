package handler

import (
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/api/response"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"
	"vitrine/internal/usecase/board"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Contact channels a QR code can be rendered for.
const (
	QRKindWhatsApp  = "whatsapp"
	QRKindPhone     = "phone"
	QRKindInstagram = "instagram"
	QRKindMaps      = "maps"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	Listings usecase.ListingUsecase
	QRCodes  service.QRCodeService
	Logger   *slog.Logger
}

// ListingHandler serves the public landing endpoints.
type ListingHandler struct {
	listings usecase.ListingUsecase
	qrcodes  service.QRCodeService
	logger   *slog.Logger
}

func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listings: params.Listings,
		qrcodes:  params.QRCodes,
		logger:   params.Logger,
	}
}

// QRCodeQuery selects the contact channel of GET /listings/:id/qrcode.
type QRCodeQuery struct {
	Kind string `query:"kind" json:"kind" validate:"required,oneof=whatsapp phone instagram maps"`
}

// ListListings renders one page through a board that lives for this request only.
func (h *ListingHandler) ListListings(c echo.Context) error {
	var query ListingQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing query")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	b := board.New(h.listings, h.logger)
	b.SetFilters(query.filters())
	if err := b.SetPage(ctx, query.Page); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBoardResponse(b.Snapshot(), nil))
}

// ListFeatured returns the featured listings, closest first when near=lat,lng is given.
func (h *ListingHandler) ListFeatured(c echo.Context) error {
	near, err := parseNear(c.QueryParam("near"))
	if err != nil {
		return response.Validation(c, &entity.ValidationError{
			Fields: []entity.FieldError{{Field: "near", Reason: "must be lat,lng"}},
		})
	}

	featured := h.listings.LoadFeatured(c.Request().Context(), near)

	return response.Success(c, http.StatusOK, toListingResponses(featured))
}

// ContactQRCode renders the requested deep link of a listing as a PNG.
func (h *ListingHandler) ContactQRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	var query QRCodeQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid QR code query")
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	listing, err := h.listings.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	link := contactLink(entity.ContactLinksFor(listing), query.Kind)
	if link == "" {
		return domainerrors.ErrNotFound.WithDetails("listing has no " + query.Kind + " contact")
	}

	png, err := h.qrcodes.GenerateContactQR(link)
	if err != nil {
		return errors.Wrapf(err, "failed to render %s QR code for %s", query.Kind, listing)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")

	return c.Blob(http.StatusOK, "image/png", png)
}

func contactLink(links entity.ContactLinks, kind string) string {
	switch kind {
	case QRKindWhatsApp:
		return links.WhatsApp
	case QRKindPhone:
		return links.Phone
	case QRKindInstagram:
		return links.Instagram
	case QRKindMaps:
		return links.Maps
	default:
		return ""
	}
}
