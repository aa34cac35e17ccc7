// Package main implements a mock CarOnSale API server for local development.
// It serves canned auctions from a JSON fixture behind the authentication and
// buyer listing endpoints, so auction-monitor can run without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/donaldgifford/auction-monitor/internal/caronsale"
)

const mockUserID = "mock-buyer"

type authenticationRequest struct {
	Password string `json:"password"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/running_auctions.json", "path to auction page fixture")
	password := flag.String("password", "", "accept only this password (any non-empty password when unset)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fixture.Items))

	mux := newMux(logger, mockToken(), *password, fixture)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock CarOnSale server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*caronsale.AuctionPage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var page caronsale.AuctionPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &page, nil
}

func newMux(logger *slog.Logger, token, password string, fixture *caronsale.AuctionPage) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/v1/authentication/{userEmail}", authHandler(logger, token, password))
	mux.HandleFunc("GET /api/v2/auction/buyer/", auctionsHandler(logger, token, fixture))
	return mux
}

func mockToken() string {
	return "mock-token-v1-" + strconv.FormatInt(int64(os.Getpid()), 16)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func authHandler(logger *slog.Logger, token, password string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.PathValue("userEmail")

		var req authenticationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Malformed request body"})
			return
		}
		if req.Password == "" || (password != "" && req.Password != password) {
			logger.Warn("rejected credentials", "user", email)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"token":          token,
			"authenticated":  true,
			"userId":         mockUserID,
			"internalUserId": 1,
			"type":           1,
			"privileges":     "{PUBLIC_USER}~{AUTHENTICATED_USER}~{DEALERSHIP_USER}~{BUYER_USER}",
		})
		logger.Info("issued mock token", "user", email)
	}
}

func auctionsHandler(logger *slog.Logger, token string, fixture *caronsale.AuctionPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("authtoken") != token || r.Header.Get("userid") != mockUserID {
			logger.Warn("listing without valid authentication")
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Not authenticated"})
			return
		}

		page := *fixture
		// An empty array rather than null keeps the page well-formed.
		if page.Items == nil {
			page.Items = []caronsale.Auction{}
		}

		writeJSON(w, http.StatusOK, page)
		logger.Info("auctions", "returned", len(page.Items), "count", r.URL.Query().Get("count"))
	}
}
