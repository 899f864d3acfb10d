// Package api implements the HTTP handlers for the portfolio API: the admin
// login and the cases CRUD surface.
package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/advmanik/casefolio/internal/auth"
	"github.com/advmanik/casefolio/internal/config"
	"github.com/advmanik/casefolio/internal/logging"
	"github.com/advmanik/casefolio/internal/store"
	"github.com/advmanik/casefolio/pkg/schema"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store  store.CaseStore
	Config config.Config
	Log    logging.Logger
}

// Login checks the credential pair against the configured admin values and
// issues a session token. A single generic message covers every mismatch so
// the response does not reveal which half was wrong.
func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(h.Config.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.Config.AdminPassword))
	if userOK&passOK != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(creds.Username, []byte(h.Config.JWTSecret), h.Config.TokenTTL)
	if err != nil {
		h.Log.Error(c.Request.Context(), "token signing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListCases returns every case, newest first. No auth required.
func (h *Handler) ListCases(c *gin.Context) {
	items, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Log.Error(c.Request.Context(), "list cases failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateCase validates the draft, stamps the creation time, and inserts.
func (h *Handler) CreateCase(c *gin.Context) {
	var draft schema.CaseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}
	if err := draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	newCase := schema.Case{CreatedAt: time.Now().UTC().Format(schema.CreatedAtFormat)}
	draft.Apply(&newCase)

	item, err := h.Store.Insert(c.Request.Context(), newCase)
	if err != nil {
		h.Log.Error(c.Request.Context(), "create case failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateCase replaces the four draft fields of an existing case. Update
// requires the full draft; partial updates are not supported.
func (h *Handler) UpdateCase(c *gin.Context) {
	var draft schema.CaseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}
	if err := draft.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	item, err := h.Store.Update(c.Request.Context(), c.Param("id"), draft)
	if errors.Is(err, store.ErrCaseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		h.Log.Error(c.Request.Context(), "update case failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteCase removes a case. Store failures surface as 404 like a missing
// record; delete is the one operation with no 500 path.
func (h *Handler) DeleteCase(c *gin.Context) {
	err := h.Store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if !errors.Is(err, store.ErrCaseNotFound) {
			h.Log.Error(c.Request.Context(), "delete case failed", "error", err)
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
