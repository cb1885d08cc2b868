package brandkit_test

import (
	"context"
	"errors"
	"guidiqo/internal/brandkit"
	"strings"
	"testing"
	"time"

	mockhtmlpdf "guidiqo/pkg/htmlpdf/mock"
	mockstorage "guidiqo/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guidiqo/pkg/domain"
	"guidiqo/pkg/serrors"
	"guidiqo/pkg/storage"
)

type fixture struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	renderer *mockhtmlpdf.MockRenderer
	kit      brandkit.BrandKit
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := mockhtmlpdf.NewMockRenderer(ctrl)

	return fixture{
		ctrl:     ctrl,
		storage:  st,
		renderer: r,
		kit:      brandkit.New(st, r, brandkit.Options{ExportTimeout: time.Second}),
	}
}

func expectWithTx(f fixture, fn func(tx *mockstorage.MockAllStorage)) {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func ptr[T any](v T) *T { return &v }

func TestBrandKit_Create(t *testing.T) {
	f := newFixture(t)
	owner := domain.User{ID: domain.UserID(uuid.New()), Email: "a@b.co", Role: domain.RoleUser}

	expectWithTx(f, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertUser(gomock.Any(), owner).Return(&owner, nil)
		tx.EXPECT().StoreBrand(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Brand) (*domain.Brand, error) {
				require.Equal(t, owner.ID, b.UserID)
				require.Equal(t, "Atelier Nord", b.Name)
				require.Equal(t, "#112233", b.Colors.Primary)
				require.Equal(t, domain.BrandStatusDraft, b.Status)
				b.ID = domain.BrandID(uuid.New())

				return &b, nil
			})
	})

	brand, err := f.kit.Create(context.Background(), owner, brandkit.Input{
		Name:   ptr("  Atelier Nord "),
		Colors: &domain.Colors{Primary: "#112233"},
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.BrandID{}, brand.ID)
}

func TestBrandKit_Create_LastStepCompletes(t *testing.T) {
	f := newFixture(t)
	owner := domain.User{ID: domain.UserID(uuid.New())}

	expectWithTx(f, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(&owner, nil)
		tx.EXPECT().StoreBrand(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Brand) (*domain.Brand, error) {
				require.Equal(t, domain.BrandStatusCompleted, b.Status)
				require.Equal(t, domain.LastOnboardingStep, b.OnboardingStep)

				return &b, nil
			})
	})

	_, err := f.kit.Create(context.Background(), owner, brandkit.Input{
		Name:           ptr("Nord"),
		OnboardingStep: ptr(domain.LastOnboardingStep),
	})
	require.NoError(t, err)
}

func TestBrandKit_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      brandkit.Input
		message string
	}{
		{
			name:    "missing name",
			in:      brandkit.Input{},
			message: "Le champ « name » est requis.",
		},
		{
			name:    "blank name",
			in:      brandkit.Input{Name: ptr("   ")},
			message: "Le champ « name » est requis.",
		},
		{
			name:    "name too long",
			in:      brandkit.Input{Name: ptr(strings.Repeat("x", 81))},
			message: "Le champ « name » ne doit pas dépasser 80 caractères.",
		},
		{
			name:    "bad color",
			in:      brandkit.Input{Name: ptr("Nord"), Colors: &domain.Colors{Accent: "blue"}},
			message: "Le champ « colors.accent » doit être une couleur hexadécimale (ex. #1a2b3c).",
		},
		{
			name:    "step out of range",
			in:      brandkit.Input{Name: ptr("Nord"), OnboardingStep: ptr(6)},
			message: "Le champ « onboardingStep » doit être inférieur ou égal à 5.",
		},
		{
			name:    "bad cover url",
			in:      brandkit.Input{Name: ptr("Nord"), Cover: &domain.Cover{URL: "not a url"}},
			message: "Le champ « cover.url » doit être une URL valide.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.kit.Create(context.Background(), domain.User{}, tt.in)
			require.Error(t, err)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Equal(t, tt.message, serrors.PublicMessage(err, ""))
		})
	}
}

func TestBrandKit_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().BrandByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := f.kit.Get(context.Background(), domain.UserID{}, domain.BrandID{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestBrandKit_List(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	cursor := storage.Cursor{CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 123000000, time.UTC), ID: uuid.New()}
	next := storage.Cursor{CreatedAt: cursor.CreatedAt, ID: uuid.New()}

	f.storage.EXPECT().UserBrands(gomock.Any(), userID, cursor, uint(brandkit.MaxPageSize)).
		Return(storage.BrandPage{Brands: []domain.Brand{{Name: "a"}}, NextCursor: &next}, nil)

	brands, nextCursor, err := f.kit.List(context.Background(), userID, cursor.String(), 1000)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	require.Equal(t, next.String(), nextCursor)
}

func TestBrandKit_List_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().UserBrands(gomock.Any(), gomock.Any(), storage.Cursor{}, uint(brandkit.DefaultPageSize)).
		Return(storage.BrandPage{}, nil)

	brands, next, err := f.kit.List(context.Background(), domain.UserID{}, "", 0)
	require.NoError(t, err)
	require.Empty(t, brands)
	require.Empty(t, next)
}

func TestBrandKit_List_InvalidCursor(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.kit.List(context.Background(), domain.UserID{}, "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestBrandKit_Update(t *testing.T) {
	f := newFixture(t)
	userID := domain.UserID(uuid.New())
	brandID := domain.BrandID(uuid.New())

	f.storage.EXPECT().UpdateBrand(gomock.Any(), userID, brandID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, _ domain.BrandID, u storage.BrandUpdates) (*domain.Brand, error) {
			require.Nil(t, u.Name)
			require.Equal(t, "Bold", *u.Tagline)
			require.Equal(t, "#aabbcc", u.Colors.Primary)
			require.Equal(t, domain.BrandStatusCompleted, *u.Status)

			return &domain.Brand{ID: brandID, Tagline: *u.Tagline}, nil
		})

	brand, err := f.kit.Update(context.Background(), userID, brandID, brandkit.Input{
		Tagline:        ptr("Bold"),
		Colors:         &domain.Colors{Primary: "#AABBCC"},
		OnboardingStep: ptr(5),
	})
	require.NoError(t, err)
	require.Equal(t, "Bold", brand.Tagline)
}

func TestBrandKit_Update_ExplicitStatusWins(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().UpdateBrand(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, _ domain.BrandID, u storage.BrandUpdates) (*domain.Brand, error) {
			require.Equal(t, domain.BrandStatusDraft, *u.Status)

			return &domain.Brand{}, nil
		})

	_, err := f.kit.Update(context.Background(), domain.UserID{}, domain.BrandID{}, brandkit.Input{
		OnboardingStep: ptr(5),
		Status:         ptr(domain.BrandStatusDraft),
	})
	require.NoError(t, err)
}

func TestBrandKit_Update_Errors(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.kit.Update(context.Background(), domain.UserID{}, domain.BrandID{},
			brandkit.Input{Name: ptr("")})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("bad status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.kit.Update(context.Background(), domain.UserID{}, domain.BrandID{},
			brandkit.Input{Status: ptr(domain.BrandStatus("archived"))})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().UpdateBrand(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		_, err := f.kit.Update(context.Background(), domain.UserID{}, domain.BrandID{},
			brandkit.Input{Tagline: ptr("x")})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().UpdateBrand(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))
		_, err := f.kit.Update(context.Background(), domain.UserID{}, domain.BrandID{},
			brandkit.Input{Tagline: ptr("x")})
		require.Error(t, err)
		require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
	})
}

func TestBrandKit_Delete(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().DeleteBrand(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Brand{}, nil)
	require.NoError(t, f.kit.Delete(context.Background(), domain.UserID{}, domain.BrandID{}))

	f.storage.EXPECT().DeleteBrand(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	require.ErrorIs(t, f.kit.Delete(context.Background(), domain.UserID{}, domain.BrandID{}), serrors.ErrNotFound)
}

func TestBrandKit_ExportPDF(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().BrandByID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Brand{Name: "Atelier Nord"}, nil)
	f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, html string) ([]byte, error) {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			require.Contains(t, html, "Atelier Nord")

			return []byte("%PDF-1.7"), nil
		})

	pdf, name, err := f.kit.ExportPDF(context.Background(), domain.UserID{}, domain.BrandID{})
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.7"), pdf)
	require.Equal(t, "atelier-nord.pdf", name)
}

func TestBrandKit_ExportPDF_Disabled(t *testing.T) {
	kit := brandkit.New(mockstorage.NewMockStorage(gomock.NewController(t)), nil, brandkit.Options{})

	_, _, err := kit.ExportPDF(context.Background(), domain.UserID{}, domain.BrandID{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBrandKit_Preview(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().BrandByID(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Brand{Name: "Nord", Tagline: "<b>bold</b>"}, nil)

	html, err := f.kit.Preview(context.Background(), domain.UserID{}, domain.BrandID{})
	require.NoError(t, err)
	require.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
}
