package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vitrine/config"
	apimiddleware "vitrine/internal/delivery/api/middleware"
	"vitrine/internal/delivery/api/router"
	"vitrine/internal/delivery/api/router/handler"
	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
	mockService "vitrine/internal/mocks/service"
	mockUsecase "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"
	"vitrine/internal/usecase/board"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	echo     *echo.Echo
	listings *mockUsecase.MockListingUsecase
	auth     *mockUsecase.MockAuthUsecase
	photos   *mockUsecase.MockPhotoUsecase
	tokens   *mockService.MockTokenService
	qrcodes  *mockService.MockQRCodeService
	boards   *board.Registry
	operator uuid.UUID
}

func createTestAPI(t *testing.T) *apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	fx := &apiFixtures{
		listings: mockUsecase.NewMockListingUsecase(t),
		auth:     mockUsecase.NewMockAuthUsecase(t),
		photos:   mockUsecase.NewMockPhotoUsecase(t),
		tokens:   mockService.NewMockTokenService(t),
		qrcodes:  mockService.NewMockQRCodeService(t),
		operator: uuid.New(),
	}
	fx.boards = board.NewEmptyRegistry(fx.listings, logger)

	fx.listings.EXPECT().PageSize().Return(entity.DefaultPageSize).Maybe()
	fx.tokens.EXPECT().ValidateAccessToken(goodToken).Return(&service.Claims{UserID: fx.operator}, nil).Maybe()

	fx.echo = NewEcho(cfg, logger, router.RouterParams{
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
			Listings: fx.listings,
			QRCodes:  fx.qrcodes,
			Logger:   logger,
		}),
		AdminListingHandler: handler.NewAdminListingHandler(handler.AdminListingHandlerParams{
			Boards: fx.boards,
			Logger: logger,
		}),
		AuthHandler: handler.NewAuthHandler(fx.auth),
		PhotoHandler: handler.NewPhotoHandler(handler.PhotoHandlerParams{
			Photos: fx.photos,
			Logger: logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(fx.tokens),
	})

	return fx
}

func (fx *apiFixtures) do(t *testing.T, method, target, token string, body io.Reader, contentType string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (fx *apiFixtures) doJSON(t *testing.T, method, target, token string, payload any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	return fx.do(t, method, target, token, body, echo.MIMEApplicationJSON)
}

func newTestListing(name, category string) *entity.Listing {
	return &entity.Listing{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Photos:      []string{},
		Phone:       "(12) 3456-7890",
		Location:    entity.Location{Address: "Rua Principal, 456 - Paraibuna, SP"},
		Status:      entity.ListingStatusActive,
		Category:    category,
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func listingPage(page int, total int64, listings ...*entity.Listing) *entity.ListingPage {
	return &entity.ListingPage{
		Listings:   listings,
		Page:       page,
		PageSize:   entity.DefaultPageSize,
		TotalCount: total,
		TotalPages: entity.TotalPages(total, entity.DefaultPageSize),
	}
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)
}

func TestAPI_RequestIDIsEchoed(t *testing.T) {
	fx := createTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", env.Meta.RequestID)

	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Equal(t, entity.Categories, categories)
}

func TestAPI_ListListings_FiltersStayOnPage(t *testing.T) {
	fx := createTestAPI(t)
	pousada := newTestListing("Pousada Serra", "Hospedagem")
	cafe := newTestListing("Café do Largo", "Gastronomia")

	fx.listings.EXPECT().LoadPage(mock.Anything, 2).Return(listingPage(2, 20, pousada, cafe), nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/listings?page=2&category=Gastronomia", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.BoardResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Listings, 1)
	assert.Equal(t, cafe.ID, got.Listings[0].ID)
	assert.Equal(t,
		"https://wa.me/1234567890?text=Ol%C3%A1%21%20Vi%20seu%20an%C3%BAncio%20%22Caf%C3%A9%20do%20Largo%22%20e%20gostaria%20de%20mais%20informa%C3%A7%C3%B5es.",
		got.Listings[0].Links.WhatsApp)
	assert.Equal(t, "tel:1234567890", got.Listings[0].Links.Phone)
	assert.Equal(t, "Gastronomia", got.Filters.Category)
	assert.Equal(t, handler.PaginationDTO{
		Page:        2,
		PageSize:    entity.DefaultPageSize,
		TotalPages:  4,
		TotalCount:  20,
		Window:      []int{1, 2, 3, 4},
		HasPrevious: true,
		HasNext:     true,
	}, got.Pagination)
	assert.Empty(t, got.Notifications)
}

func TestAPI_ListListings_InvalidQuery(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodGet, "/listings?status=archived", "", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(mustJSON(t, env.Error.Details)), `"field":"status"`)
}

func TestAPI_ListListings_LoadFailure(t *testing.T) {
	fx := createTestAPI(t)

	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(nil, errors.New("connection refused")).Once()

	rec, env := fx.do(t, http.MethodGet, "/listings", "", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAPI_ListFeatured(t *testing.T) {
	fx := createTestAPI(t)
	featured := newTestListing("Cachoeira", "Atração Natural")
	featured.Featured = true

	fx.listings.EXPECT().LoadFeatured(mock.Anything, &orb.Point{-45.6, -23.4}).Return([]*entity.Listing{featured}).Once()

	rec, env := fx.do(t, http.MethodGet, "/listings/featured?near=-23.4,-45.6", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []handler.ListingResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, featured.ID, got[0].ID)
	assert.True(t, got[0].Featured)
}

func TestAPI_ListFeatured_WithoutNear(t *testing.T) {
	fx := createTestAPI(t)

	fx.listings.EXPECT().LoadFeatured(mock.Anything, (*orb.Point)(nil)).Return([]*entity.Listing{}).Once()

	rec, env := fx.do(t, http.MethodGet, "/listings/featured", "", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestAPI_ListFeatured_BadNear(t *testing.T) {
	fx := createTestAPI(t)

	for _, near := range []string{"abc", "-23.4", "95,10", "10,200", "NaN,NaN", "nan,10", "10,Inf"} {
		rec, env := fx.do(t, http.MethodGet, "/listings/featured?near="+near, "", nil, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, near)
		require.NotNil(t, env.Error, near)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, near)
	}
}

func TestAPI_ContactQRCode(t *testing.T) {
	fx := createTestAPI(t)
	listing := newTestListing("Pousada Serra", "Hospedagem")
	png := []byte("\x89PNG fake")

	fx.listings.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
	fx.qrcodes.EXPECT().GenerateContactQR(entity.ContactLinksFor(listing).WhatsApp).Return(png, nil).Once()

	rec, _ := fx.do(t, http.MethodGet, "/listings/"+listing.ID.String()+"/qrcode?kind=whatsapp", "", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestAPI_ContactQRCode_Errors(t *testing.T) {
	listing := newTestListing("Pousada Serra", "Hospedagem")

	tests := []struct {
		name     string
		target   string
		setup    func(fx *apiFixtures)
		wantCode int
		wantErr  string
	}{
		{
			name:     "bad id",
			target:   "/listings/not-a-uuid/qrcode?kind=phone",
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_ID",
		},
		{
			name:     "unknown kind",
			target:   "/listings/" + listing.ID.String() + "/qrcode?kind=fax",
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:   "missing listing",
			target: "/listings/" + listing.ID.String() + "/qrcode?kind=phone",
			setup: func(fx *apiFixtures) {
				fx.listings.EXPECT().GetListing(mock.Anything, listing.ID).Return(nil, errors.WithStack(domainerrors.ErrListingNotFound))
			},
			wantCode: http.StatusNotFound,
			wantErr:  "LISTING_NOT_FOUND",
		},
		{
			name:   "no instagram on listing",
			target: "/listings/" + listing.ID.String() + "/qrcode?kind=instagram",
			setup: func(fx *apiFixtures) {
				fx.listings.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			rec, env := fx.do(t, http.MethodGet, tt.target, "", nil, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestAPI_AdminRequiresBearer(t *testing.T) {
	fx := createTestAPI(t)
	fx.tokens.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired")).Once()

	for _, token := range []string{"", "expired"} {
		rec, env := fx.do(t, http.MethodGet, "/admin/listings", token, nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	}
}

func TestAPI_AdminListListings_UsesOperatorBoard(t *testing.T) {
	fx := createTestAPI(t)
	listing := newTestListing("Pousada Serra", "Hospedagem")

	fx.listings.EXPECT().LoadPage(mock.Anything, 1).RunAndReturn(func(ctx context.Context, _ int) (*entity.ListingPage, error) {
		userID, ok := deliverycontext.GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, fx.operator, userID)

		return listingPage(1, 1, listing), nil
	}).Once()

	rec, env := fx.do(t, http.MethodGet, "/admin/listings", goodToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.BoardResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Listings, 1)
	assert.Equal(t, listing.ID, got.Listings[0].ID)
	assert.Equal(t, 1, fx.boards.Len())
	assert.Len(t, fx.boards.ForOperator(fx.operator).Snapshot().Listings, 1)
}

func TestAPI_AdminListListings_LoadFailureIsNotified(t *testing.T) {
	fx := createTestAPI(t)

	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(nil, errors.New("timeout")).Once()

	rec, env := fx.do(t, http.MethodGet, "/admin/listings", goodToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.BoardResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Empty(t, got.Listings)
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, board.NotificationError, got.Notifications[0].Kind)
}

func TestAPI_AdminCreateListing(t *testing.T) {
	fx := createTestAPI(t)
	created := newTestListing("Trilha do Pico", "Aventura")

	fx.listings.EXPECT().
		CreateListing(mock.Anything, mock.MatchedBy(func(form *entity.ListingFormData) bool {
			return form.Name == "Trilha do Pico" && form.Category == "Aventura" && len(form.Photos) == 1
		})).
		Return(created, nil).Once()
	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(listingPage(1, 1, created), nil).Once()

	rec, env := fx.doJSON(t, http.MethodPost, "/admin/listings", goodToken, handler.CreateListingRequest{
		Name:        "Trilha do Pico",
		Description: "Subida guiada",
		Phone:       "12 99999-0000",
		Address:     "Estrada do Pico, km 3",
		Category:    "Aventura",
		Photos:      []string{"https://cdn.example.com/listings/a.png"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got handler.MutationResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.Listing)
	assert.Equal(t, created.ID, got.Listing.ID)
	assert.Equal(t, 1, got.Board.Pagination.Page)
	require.Len(t, got.Board.Notifications, 1)
	assert.Equal(t, board.NotificationSuccess, got.Board.Notifications[0].Kind)
	assert.Equal(t, "Anúncio criado", got.Board.Notifications[0].Title)
}

func TestAPI_AdminCreateListing_ValidationError(t *testing.T) {
	fx := createTestAPI(t)

	fx.listings.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil, errors.WithStack(&entity.ValidationError{
		Fields: []entity.FieldError{{Field: "name", Reason: "required"}},
	})).Once()

	rec, env := fx.doJSON(t, http.MethodPost, "/admin/listings", goodToken, map[string]any{"category": "Aventura"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[{"field":"name","reason":"required"}]`, string(mustJSON(t, env.Error.Details)))
	assert.Empty(t, fx.boards.ForOperator(fx.operator).TakeNotifications())
}

func TestAPI_AdminUpdateListing(t *testing.T) {
	fx := createTestAPI(t)
	listing := newTestListing("Pousada Serra", "Hospedagem")
	later := testNow.Add(time.Hour)

	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(listingPage(1, 1, listing), nil).Once()
	fx.listings.EXPECT().
		UpdateListing(mock.Anything, listing.ID, mock.MatchedBy(func(p *entity.ListingPatch) bool {
			return p.Instagram != nil && *p.Instagram == "" && p.Name == nil && p.Featured != nil && !*p.Featured
		})).
		Return(later, nil).Once()

	_, _ = fx.do(t, http.MethodGet, "/admin/listings", goodToken, nil, "")
	rec, env := fx.do(t, http.MethodPatch, "/admin/listings/"+listing.ID.String(), goodToken,
		strings.NewReader(`{"instagram":"","featured":false}`), echo.MIMEApplicationJSON)
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.MutationResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Board.Listings, 1)
	assert.True(t, later.Equal(got.Board.Listings[0].UpdatedAt))
	require.Len(t, got.Board.Notifications, 1)
	assert.Equal(t, "Anúncio atualizado", got.Board.Notifications[0].Title)
}

func TestAPI_AdminUpdateListing_EmptyPatch(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.do(t, http.MethodPatch, "/admin/listings/"+uuid.NewString(), goodToken,
		strings.NewReader(`{}`), echo.MIMEApplicationJSON)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_AdminDeleteListing(t *testing.T) {
	fx := createTestAPI(t)
	id := uuid.New()

	fx.listings.EXPECT().DeleteListing(mock.Anything, id).Return(nil).Once()
	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(listingPage(1, 0), nil).Once()

	rec, env := fx.do(t, http.MethodDelete, "/admin/listings/"+id.String(), goodToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.MutationResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Empty(t, got.Board.Listings)
	assert.Equal(t, []int{}, got.Board.Pagination.Window)
	require.Len(t, got.Board.Notifications, 1)
	assert.Equal(t, "Anúncio excluído", got.Board.Notifications[0].Title)
}

func TestAPI_AdminToggleStatus(t *testing.T) {
	fx := createTestAPI(t)
	listing := newTestListing("Pousada Serra", "Hospedagem")

	fx.listings.EXPECT().LoadPage(mock.Anything, 1).Return(listingPage(1, 1, listing), nil).Once()
	fx.listings.EXPECT().
		UpdateListing(mock.Anything, listing.ID, entity.StatusPatch(entity.ListingStatusPaused)).
		Return(testNow.Add(time.Minute), nil).Once()

	_, _ = fx.do(t, http.MethodGet, "/admin/listings", goodToken, nil, "")
	rec, env := fx.do(t, http.MethodPost, "/admin/listings/"+listing.ID.String()+"/toggle-status", goodToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.MutationResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.Board.Listings, 1)
	assert.Equal(t, "paused", got.Board.Listings[0].Status)
	require.Len(t, got.Board.Notifications, 1)
	assert.Equal(t, "Anúncio pausado com sucesso!", got.Board.Notifications[0].Description)
}

func TestAPI_AuthLogin(t *testing.T) {
	fx := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", CreatedAt: testNow}

	fx.auth.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "s3cret-pass"}).
		Return(&usecase.AuthOutput{
			User:   user,
			Tokens: &entity.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresAt: testNow.Add(15 * time.Minute)},
		}, nil).Once()

	rec, env := fx.doJSON(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, user.ID, got.User.ID)
	assert.Equal(t, "a", got.Tokens.AccessToken)
	assert.Equal(t, "r", got.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", got.Tokens.TokenType)
}

func TestAPI_AuthLogin_InvalidCredentials(t *testing.T) {
	fx := createTestAPI(t)

	fx.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	rec, env := fx.doJSON(t, http.MethodPost, "/auth/login", "", handler.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}

func TestAPI_AuthRegister_RejectedByValidator(t *testing.T) {
	fx := createTestAPI(t)

	rec, env := fx.doJSON(t, http.MethodPost, "/auth/register", "", handler.RegisterRequest{
		Name:     "Ana",
		Email:    "not-an-email",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	details := string(mustJSON(t, env.Error.Details))
	assert.Contains(t, details, `"field":"email"`)
	assert.Contains(t, details, `"field":"password"`)
}

func TestAPI_AuthLogout(t *testing.T) {
	fx := createTestAPI(t)

	fx.auth.EXPECT().Logout(mock.Anything, "refresh-1").RunAndReturn(func(ctx context.Context, _ string) error {
		userID, ok := deliverycontext.GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, fx.operator, userID)

		return nil
	}).Once()

	rec, _ := fx.doJSON(t, http.MethodPost, "/auth/logout", goodToken, handler.RefreshTokenRequest{RefreshToken: "refresh-1"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_AuthMe(t *testing.T) {
	fx := createTestAPI(t)
	user := &entity.User{ID: fx.operator, Email: "ana@example.com", Name: "Ana", CreatedAt: testNow}

	fx.auth.EXPECT().CurrentUser(mock.Anything).Return(user, nil).Once()

	rec, env := fx.do(t, http.MethodGet, "/auth/me", goodToken, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, fx.operator, got.ID)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestAPI_UploadPhotos(t *testing.T) {
	fx := createTestAPI(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range []string{"fachada.png", "quarto.png"} {
		part, err := w.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG " + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	fx.photos.EXPECT().
		UploadPhotos(mock.Anything, mock.MatchedBy(func(files []usecase.PhotoFile) bool {
			return len(files) == 2 && files[0].Filename == "fachada.png" && files[1].Filename == "quarto.png" &&
				string(files[1].Data) == "\x89PNG quarto.png"
		})).
		Return([]string{"https://cdn.example.com/1.png", "https://cdn.example.com/2.png"}, nil).Once()

	rec, env := fx.do(t, http.MethodPost, "/admin/photos", goodToken, &body, w.FormDataContentType())
	require.Equal(t, http.StatusCreated, rec.Code)

	var got handler.UploadPhotosResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []string{"https://cdn.example.com/1.png", "https://cdn.example.com/2.png"}, got.URLs)
}

func TestAPI_UploadPhotos_NoFiles(t *testing.T) {
	fx := createTestAPI(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("caption", "sem fotos"))
	require.NoError(t, w.Close())

	rec, env := fx.do(t, http.MethodPost, "/admin/photos", goodToken, &body, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_UploadPhotos_StorageFailure(t *testing.T) {
	fx := createTestAPI(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("photos", "a.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG a"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fx.photos.EXPECT().UploadPhotos(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrPhotoUploadFailed.WithDetails("a.png"), "bucket unavailable")).Once()

	rec, env := fx.do(t, http.MethodPost, "/admin/photos", goodToken, &body, w.FormDataContentType())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PHOTO_UPLOAD_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return raw
}
