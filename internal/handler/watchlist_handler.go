package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WatchlistRepo interface {
	SymbolsByUserEmail(email string) ([]string, error)
	AddToWatchlist(email, symbol, company string) (bool, error)
	RemoveFromWatchlist(email, symbol string) (bool, error)
}

type WatchlistHandler struct {
	repository WatchlistRepo
}

func NewWatchlistHandler(repository WatchlistRepo) *WatchlistHandler {
	return &WatchlistHandler{repository: repository}
}

func (h *WatchlistHandler) GetWatchlist(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	symbols, err := h.repository.SymbolsByUserEmail(email)
	if err != nil {
		slog.Error("error fetching watchlist", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if symbols == nil {
		symbols = []string{}
	}

	c.JSON(http.StatusOK, WatchlistResponse{Email: email, Symbols: symbols})
}

func (h *WatchlistHandler) AddSymbol(c *gin.Context) {
	var req WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Email == "" || req.Symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and symbol are required"})
		return
	}

	ok, err := h.repository.AddToWatchlist(req.Email, req.Symbol, req.Company)
	if err != nil {
		slog.Error("error adding to watchlist", "email", req.Email, "symbol", req.Symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WatchlistHandler) RemoveSymbol(c *gin.Context) {
	email := c.Query("email")
	symbol := c.Query("symbol")
	if email == "" || symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and symbol are required"})
		return
	}

	ok, err := h.repository.RemoveFromWatchlist(email, symbol)
	if err != nil {
		slog.Error("error removing from watchlist", "email", email, "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
