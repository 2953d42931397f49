package impl

import (
	"bytes"
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	mockService "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func pngFile(name string, payload string) usecase.PhotoFile {
	return usecase.PhotoFile{Filename: name, Data: append(bytes.Clone(pngHeader), payload...)}
}

type photoServiceFixtures struct {
	service  usecase.PhotoUsecase
	storage  *mockService.MockPhotoStorage
	users    *mockService.MockCurrentUserProvider
	operator *entity.User
}

func createTestPhotoService(t *testing.T) photoServiceFixtures {
	fx := photoServiceFixtures{
		storage:  mockService.NewMockPhotoStorage(t),
		users:    mockService.NewMockCurrentUserProvider(t),
		operator: &entity.User{ID: uuid.New()},
	}
	fx.service = NewPhotoService(PhotoServiceParams{
		Storage: fx.storage,
		Users:   fx.users,
		Config:  newTestConfig(6),
		Logger:  newDiscardLogger(),
	})

	return fx
}

func (fx photoServiceFixtures) keyFor(file usecase.PhotoFile, ext string) string {
	return "listings/" + fx.operator.ID.String() + "/" + util.ContentChecksum(file.Data)[:16] + ext
}

func TestPhotoService_UploadPhotos_Success(t *testing.T) {
	fx := createTestPhotoService(t)
	ctx := context.Background()
	first := pngFile("Fachada.PNG", "a")
	second := pngFile("quarto", "b")

	fx.users.EXPECT().CurrentUser(ctx).Return(fx.operator, nil)
	fx.storage.EXPECT().Upload(ctx, fx.keyFor(first, ".png"), first.Data, "image/png").Return(fx.keyFor(first, ".png"), nil)
	fx.storage.EXPECT().Upload(ctx, fx.keyFor(second, ".png"), second.Data, "image/png").Return(fx.keyFor(second, ".png"), nil)
	fx.storage.EXPECT().PublicURL(mock.AnythingOfType("string")).RunAndReturn(func(path string) string {
		return "https://cdn.example.com/" + path
	})

	urls, err := fx.service.UploadPhotos(ctx, []usecase.PhotoFile{first, second})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example.com/" + fx.keyFor(first, ".png"),
		"https://cdn.example.com/" + fx.keyFor(second, ".png"),
	}, urls)
}

func TestPhotoService_UploadPhotos_AbortsOnFirstFailure(t *testing.T) {
	fx := createTestPhotoService(t)
	ctx := context.Background()
	first := pngFile("a.png", "a")
	second := pngFile("b.png", "b")
	third := pngFile("c.png", "c")

	fx.users.EXPECT().CurrentUser(ctx).Return(fx.operator, nil)
	fx.storage.EXPECT().Upload(ctx, fx.keyFor(first, ".png"), first.Data, "image/png").Return("a", nil).Once()
	fx.storage.EXPECT().PublicURL("a").Return("https://cdn.example.com/a").Once()
	fx.storage.EXPECT().Upload(ctx, fx.keyFor(second, ".png"), second.Data, "image/png").Return("", errors.New("bucket unavailable")).Once()

	urls, err := fx.service.UploadPhotos(ctx, []usecase.PhotoFile{first, second, third})
	require.Error(t, err)
	assert.Nil(t, urls)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoUploadFailed)
	fx.storage.AssertNumberOfCalls(t, "Upload", 2)
}

func TestPhotoService_UploadPhotos_Rejected(t *testing.T) {
	tests := []struct {
		name string
		file usecase.PhotoFile
	}{
		{name: "not an image", file: usecase.PhotoFile{Filename: "notes.txt", Data: []byte("hello world")}},
		{name: "empty", file: usecase.PhotoFile{Filename: "empty.png"}},
		{name: "too large", file: pngFile("huge.png", string(make([]byte, 2<<10)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPhotoService(t)
			ctx := context.Background()

			fx.users.EXPECT().CurrentUser(ctx).Return(fx.operator, nil)

			urls, err := fx.service.UploadPhotos(ctx, []usecase.PhotoFile{tt.file})
			require.Error(t, err)
			assert.Nil(t, urls)
			assert.ErrorIs(t, err, domainerrors.ErrPhotoRejected)
		})
	}
}

func TestPhotoService_UploadPhotos_Unauthenticated(t *testing.T) {
	fx := createTestPhotoService(t)
	ctx := context.Background()

	fx.users.EXPECT().CurrentUser(ctx).Return(nil, domainerrors.ErrUnauthenticated)

	_, err := fx.service.UploadPhotos(ctx, []usecase.PhotoFile{pngFile("a.png", "a")})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
