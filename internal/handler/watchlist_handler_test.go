package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeWatchlistRepo struct {
	symbols   []string
	userFound bool
	err       error
	added     WatchlistRequest
}

func (f *fakeWatchlistRepo) SymbolsByUserEmail(email string) ([]string, error) {
	return f.symbols, f.err
}

func (f *fakeWatchlistRepo) AddToWatchlist(email, symbol, company string) (bool, error) {
	f.added = WatchlistRequest{Email: email, Symbol: symbol, Company: company}
	return f.userFound, f.err
}

func (f *fakeWatchlistRepo) RemoveFromWatchlist(email, symbol string) (bool, error) {
	return f.userFound, f.err
}

func newWatchlistRouter(repo *fakeWatchlistRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewWatchlistHandler(repo)
	r.GET("/watchlist", h.GetWatchlist)
	r.POST("/watchlist", h.AddSymbol)
	r.DELETE("/watchlist", h.RemoveSymbol)
	return r
}

func TestGetWatchlist(t *testing.T) {
	r := newWatchlistRouter(&fakeWatchlistRepo{symbols: []string{"AAPL", "MSFT"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/watchlist?email=a@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res WatchlistResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, []string{"AAPL", "MSFT"}, res.Symbols)
}

func TestGetWatchlist_MissingEmail(t *testing.T) {
	r := newWatchlistRouter(&fakeWatchlistRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/watchlist", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSymbol(t *testing.T) {
	repo := &fakeWatchlistRepo{userFound: true}
	r := newWatchlistRouter(repo)

	body, _ := json.Marshal(WatchlistRequest{Email: "a@example.com", Symbol: "AAPL", Company: "Apple Inc"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/watchlist", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "AAPL", repo.added.Symbol)
}

func TestAddSymbol_UnknownUser(t *testing.T) {
	r := newWatchlistRouter(&fakeWatchlistRepo{userFound: false})

	body, _ := json.Marshal(WatchlistRequest{Email: "ghost@example.com", Symbol: "AAPL"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/watchlist", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveSymbol_DBError(t *testing.T) {
	r := newWatchlistRouter(&fakeWatchlistRepo{err: errors.New("DB down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/watchlist?email=a@example.com&symbol=AAPL", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
