package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"vitrine/internal/delivery/api/response"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	photoFormField  = "photos"
	maxPhotosPerReq = 10
)

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	Photos usecase.PhotoUsecase
	Logger *slog.Logger
}

type PhotoHandler struct {
	photos usecase.PhotoUsecase
	logger *slog.Logger
}

func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photos: params.Photos,
		logger: params.Logger,
	}
}

type UploadPhotosResponse struct {
	URLs []string `json:"urls"`
}

// UploadPhotos stores every file of the "photos" multipart field and returns their public URLs in order.
func (h *PhotoHandler) UploadPhotos(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("expected a multipart form")
	}

	headers := form.File[photoFormField]
	if len(headers) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("no files in field " + photoFormField)
	}
	if len(headers) > maxPhotosPerReq {
		return domainerrors.ErrPhotoRejected.WithDetails("too many files in one request")
	}

	files := make([]usecase.PhotoFile, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			return errors.Wrapf(err, "failed to read upload %q", fh.Filename)
		}
		files = append(files, usecase.PhotoFile{Filename: fh.Filename, Data: data})
	}

	urls, err := h.photos.UploadPhotos(c.Request().Context(), files)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, UploadPhotosResponse{URLs: urls})
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)

	return data, errors.WithStack(err)
}
