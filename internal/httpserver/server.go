// internal/httpserver/server.go
//
// HTTP server wiring for the Hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - POST /game/new: start a hosted round and hand out its session token.
//   - Session-guarded game endpoints under /game/{id}: view, guess, key, reset, delete, ws.
//
// Notes:
//   - A session token (JWT) names exactly one game; it is read from the
//     Authorization header, the session cookie, or a ?token= query parameter
//     (browsers cannot set headers on WebSocket handshakes).
//   - The round state lives in the in-memory store only.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/auth"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/input"
	"github.com/robalobadob/hangman/internal/store"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "hangman_session"

// Deps are the collaborators and settings a Server needs.
type Deps struct {
	Store        store.Store
	Words        game.WordSource
	WordStats    func() (count, shortest, longest int)
	Secret       []byte
	SessionTTL   time.Duration
	ClientOrigin string
	Production   bool
	Timeout      time.Duration
	WSSendBuffer int
}

// Server bundles router, game store and word source.
type Server struct {
	r    *chi.Mux
	deps Deps
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Timeout <= 0 {
		d.Timeout = 10 * time.Second
	}
	if d.WSSendBuffer <= 0 {
		d.WSSendBuffer = 16
	}
	s := &Server{r: chi.NewRouter(), deps: d}

	// --- middleware ---
	s.r.Use(chimw.RequestID)      // add X-Request-ID
	s.r.Use(chimw.RealIP)         // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)        // zerolog access log
	s.r.Use(chimw.Recoverer)      // recover from panics
	s.r.Use(jsonContentType)      // default JSON responses
	s.r.Use(cors(d.ClientOrigin)) // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /game/new","/game/{id}","/game/{id}/ws"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		if d.WordStats == nil {
			_ = json.NewEncoder(w).Encode(map[string]int{})
			return
		}
		n, lo, hi := d.WordStats()
		_ = json.NewEncoder(w).Encode(map[string]int{"words": n, "shortest": lo, "longest": hi})
	})

	s.r.With(chimw.Timeout(d.Timeout)).Post("/game/new", s.handleNewGame)

	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession)

		// Long-lived; kept out of the handler timeout.
		r.Get("/ws", s.handleWS)

		r.Group(func(r chi.Router) {
			r.Use(chimw.Timeout(d.Timeout))
			r.Get("/", s.handleView)
			r.Post("/guess", s.handleGuess)
			r.Post("/key", s.handleKey)
			r.Post("/reset", s.handleReset)
			r.Delete("/", s.handleDelete)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router; it is the server's http.Handler.
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("took", time.Since(start)).
				Str("reqId", chimw.GetReqID(r.Context())).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ctxGameKey is the context key type for the session's *game.Game.
type ctxGameKey struct{}

// requireSession verifies the session token against the {id} in the path
// and injects the game into the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := sessionToken(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := auth.Verify(s.deps.Secret, tok)
		if err != nil || claims.GameID != id {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		g, err := s.deps.Store.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("gameId", id).Msg("load game")
			writeError(w, http.StatusInternalServerError, "load_failed")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, g)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func gameFrom(r *http.Request) *game.Game {
	g, _ := r.Context().Value(ctxGameKey{}).(*game.Game)
	return g
}

// sessionToken extracts a token from the Authorization header, the cookie, or ?token=.
func sessionToken(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.URL.Query().Get("token")
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID    string    `json:"gameId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	View      game.View `json:"view"`
}

// handleNewGame creates a hosted round and sets its session cookie.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := game.NewGame(s.deps.Words)
	if err := s.deps.Store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := auth.Sign(s.deps.Secret, g.ID, s.deps.SessionTTL)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Info().Str("gameId", g.ID).Int("games", s.deps.Store.Len()).Msg("game started")

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: tok, ExpiresAt: exp, View: g.View()})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(gameFrom(r).View())
}

type guessReq struct {
	Letter string `json:"letter"`
}

type guessRes struct {
	Accepted bool      `json:"accepted"`
	View     game.View `json:"view"`
}

// handleGuess submits one letter. Redundant and post-round guesses are
// answered with accepted=false, not an error.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	letter, ok := input.Normalize(req.Letter)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	}
	g := gameFrom(r)
	v, accepted := g.Guess(letter)
	if accepted && v.Status == game.RoundOver.String() {
		log.Info().Str("gameId", g.ID).Str("outcome", string(v.Outcome)).Msg("round over")
	}
	_ = json.NewEncoder(w).Encode(guessRes{Accepted: accepted, View: v})
}

type keyReq struct {
	Key string `json:"key"`
}

type keyRes struct {
	Result input.Result `json:"result"`
	View   game.View    `json:"view"`
}

// handleKey routes a raw key name through the input adapter.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	res, v := gameFrom(r).Key(req.Key)
	_ = json.NewEncoder(w).Encode(keyRes{Result: res, View: v})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(gameFrom(r).Reset())
}

// handleDelete drops the game and clears the session cookie.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	if err := s.deps.Store.Delete(r.Context(), g.ID); err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("delete game")
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}
	s.clearSessionCookie(w)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ------------------------------ cookies ------------------------------------

func (s *Server) sameSite() http.SameSite {
	if s.deps.Production {
		return http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	return http.SameSiteLaxMode
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.deps.Production,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.deps.Production,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

// writeError sends {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
