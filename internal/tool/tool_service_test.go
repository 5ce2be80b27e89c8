package tool_test

import (
	"context"
	"testing"

	"go-hrm/internal/tool"
	toolerrors "go-hrm/internal/tool/errors"
	toolMock "go-hrm/internal/tool/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestToolService_Create(t *testing.T) {
	ctx := context.Background()
	req := tool.CreateToolRequest{
		Platform: " Figma ",
		Website:  "https://figma.com",
		Organizations: []tool.OrganizationRequest{{
			Name:     "Design",
			LoginID:  "design@acme.io",
			Password: "secret",
			Price:    15,
		}},
	}

	t.Run("applies currency and billing defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := toolMock.NewMockRepository(ctrl)
		svc := tool.NewService(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "Figma", resp.Platform)
		assert.Equal(t, tool.DefaultCurrency, resp.Organizations[0].Currency)
		assert.Equal(t, tool.DefaultBilling, resp.Organizations[0].Billing)
		assert.Equal(t, []string{}, resp.Organizations[0].Users)
	})

	t.Run("duplicate platform", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := toolMock.NewMockRepository(ctrl)
		svc := tool.NewService(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_tool_platform"})

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, toolerrors.ErrToolAlreadyExists)
	})

	t.Run("expire before purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := tool.NewService(toolMock.NewMockRepository(ctrl))

		bad := req
		bad.Organizations = []tool.OrganizationRequest{{
			Name: "Design", LoginID: "x", Password: "y",
			PurchaseDate: "2024-05-01", ExpireDate: "2024-04-01",
		}}
		_, err := svc.Create(ctx, bad)
		assert.ErrorIs(t, err, toolerrors.ErrInvalidDateRange)
	})
}

func TestToolService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := toolMock.NewMockRepository(ctrl)
	svc := tool.NewService(repo)

	website := "https://www.figma.com"
	repo.EXPECT().FindByPlatform(gomock.Any(), "Figma").Return(&tool.Tool{Platform: "Figma", Website: "https://figma.com"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tl *tool.Tool) error {
		assert.Equal(t, website, tl.Website)
		return nil
	})
	resp, err := svc.Update(ctx, "Figma", tool.UpdateToolRequest{Website: &website})
	assert.NoError(t, err)
	assert.Equal(t, website, resp.Website)

	repo.EXPECT().FindByPlatform(gomock.Any(), "Sketch").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.Update(ctx, "Sketch", tool.UpdateToolRequest{Website: &website})
	assert.ErrorIs(t, err, toolerrors.ErrToolNotFound)

	repo.EXPECT().DeleteByPlatform(gomock.Any(), "Sketch").Return(int64(0), nil)
	assert.ErrorIs(t, svc.Delete(ctx, "Sketch"), toolerrors.ErrToolNotFound)
}
