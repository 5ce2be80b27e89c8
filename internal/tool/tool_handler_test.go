package tool_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/tool"
	toolMock "go-hrm/internal/tool/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestToolHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		body       string
		setup      func(svc *toolMock.MockService)
		wantStatus int
	}{
		{
			name:       "website must be a url",
			body:       `{"platform":"Figma","website":"figma"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad billing",
			body:       `{"platform":"Figma","website":"https://figma.com","organizations":[{"name":"a","login_id":"b","password":"c","billing":"weekly"}]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "created",
			body: `{"platform":"Figma","website":"https://figma.com"}`,
			setup: func(svc *toolMock.MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tool.ToolResponse{Platform: "Figma"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := toolMock.NewMockService(ctrl)
			if tc.setup != nil {
				tc.setup(svc)
			}
			h := tool.NewHandler(svc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/tools", strings.NewReader(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			h.Create(c)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
