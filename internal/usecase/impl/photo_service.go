package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"vitrine/config"
	deliverycontext "vitrine/internal/delivery/context"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxPhotoSize = 5 << 20
	photoKeyHashLength  = 16
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// photoService implements the PhotoUsecase interface.
type photoService struct {
	storage      service.PhotoStorage
	users        service.CurrentUserProvider
	maxPhotoSize int64
	logger       *slog.Logger
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Storage service.PhotoStorage
	Users   service.CurrentUserProvider
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	maxPhotoSize := int64(defaultMaxPhotoSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxPhotoSize > 0 {
		maxPhotoSize = params.Config.Storage.MaxPhotoSize
	}

	return &photoService{
		storage:      params.Storage,
		users:        params.Users,
		maxPhotoSize: maxPhotoSize,
		logger:       params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *photoService) UploadPhotos(ctx context.Context, files []usecase.PhotoFile) ([]string, error) {
	user, err := srv.users.CurrentUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve current user")
	}

	urls := make([]string, 0, len(files))
	for i, file := range files {
		contentType, err := srv.checkPhoto(file)
		if err != nil {
			srv.log(ctx).Warn("Photo rejected", slog.String("filename", file.Filename), slog.Any("error", err))

			return nil, err
		}

		key := photoKey(user.ID.String(), file, contentType)
		storedPath, err := srv.storage.Upload(ctx, key, file.Data, contentType)
		if err != nil {
			srv.log(ctx).Error("Photo upload failed, aborting remaining uploads",
				slog.String("filename", file.Filename),
				slog.Int("uploaded", i),
				slog.Int("total", len(files)),
				slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPhotoUploadFailed.WithDetails(file.Filename), err.Error())
		}

		urls = append(urls, srv.storage.PublicURL(storedPath))
	}

	srv.log(ctx).Info("Photos uploaded", slog.Int("count", len(urls)), slog.Any("ownerID", user.ID))

	return urls, nil
}

// checkPhoto sniffs the content type and enforces the size limit.
func (srv *photoService) checkPhoto(file usecase.PhotoFile) (string, error) {
	if len(file.Data) == 0 {
		return "", domainerrors.ErrPhotoRejected.WithDetails(file.Filename + " is empty")
	}

	if size := int64(len(file.Data)); size > srv.maxPhotoSize {
		return "", domainerrors.ErrPhotoRejected.WithDetails(fmt.Sprintf("%s is %s, the limit is %s",
			file.Filename, util.FormatBytes(size), util.FormatBytes(srv.maxPhotoSize)))
	}

	contentType := http.DetectContentType(file.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrPhotoRejected.WithDetails(file.Filename + " is not an image")
	}

	return contentType, nil
}

// photoKey names the object after its content so re-uploading the same file is idempotent.
func photoKey(ownerID string, file usecase.PhotoFile, contentType string) string {
	ext := strings.ToLower(path.Ext(file.Filename))
	if ext == "" {
		ext = photoExtensions[contentType]
	}

	return "listings/" + ownerID + "/" + util.ContentChecksum(file.Data)[:photoKeyHashLength] + ext
}
