package auth

import (
	"net/http"
	"time"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service      Service
	secureCookie bool
	cookieMaxAge int
}

func NewHandler(s Service, secureCookie bool, accessTTL time.Duration) *Handler {
	return &Handler{service: s, secureCookie: secureCookie, cookieMaxAge: int(accessTTL.Seconds())}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setAccessCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setAccessCookie(c, resp.AccessToken, h.cookieMaxAge)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AcceptInvite(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AcceptInvite(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.setAccessCookie(c, resp.AccessToken, h.cookieMaxAge)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setAccessCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}
