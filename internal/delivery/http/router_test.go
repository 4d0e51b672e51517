package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitpair/fitpair-backend/internal/delivery/http/handler"
	"github.com/fitpair/fitpair-backend/internal/delivery/http/middleware"
	"github.com/fitpair/fitpair-backend/internal/domain"
	"github.com/fitpair/fitpair-backend/internal/repository/memory"
	"github.com/fitpair/fitpair-backend/internal/usecase/conversation"
	"github.com/fitpair/fitpair-backend/internal/usecase/matching"
	"github.com/fitpair/fitpair-backend/internal/usecase/pairing"
	"github.com/fitpair/fitpair-backend/internal/usecase/profile"
	"github.com/fitpair/fitpair-backend/pkg/keylock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret-0123456789-0123456789-xyz"

func str(s string) *string { return &s }

func newTestRouter(t *testing.T) (*gin.Engine, *memory.ProfileRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := memory.NewProfileRepository()
	pairings := memory.NewPairingRepository()
	messages := memory.NewMessageRepository()

	scorer := matching.NewScorer(matching.DefaultWeights())
	locks := keylock.New()
	logger := zap.NewNop()

	router := NewRouter(
		handler.NewProfileHandler(profile.NewUseCase(profiles)),
		handler.NewCandidateHandler(matching.NewCandidateFinder(profiles, pairings, scorer, nil, logger)),
		handler.NewPairingHandler(pairing.NewUseCase(profiles, pairings, scorer, locks, nil, logger)),
		handler.NewMessageHandler(conversation.NewUseCase(pairings, messages, locks)),
		middleware.NewAuthMiddleware(testSecret),
	)
	return router.Setup(), profiles
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, router *gin.Engine, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, userID))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedUser(profiles *memory.ProfileRepository, id string) {
	profiles.Seed(&domain.Profile{
		UserID:       id,
		Email:        id + "@example.com",
		FitnessGoal:  str("lose-weight"),
		WorkoutType:  str("cardio"),
		Availability: str("morning"),
	})
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/pairings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pairings", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProposeAcceptMessageFlow(t *testing.T) {
	router, profiles := newTestRouter(t)
	seedUser(profiles, "x")
	seedUser(profiles, "y")

	// X discovers Y as a candidate.
	w := doJSON(t, router, http.MethodGet, "/api/v1/partners/candidates", "x", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed struct {
		Candidates []matching.Candidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Candidates, 1)
	assert.Equal(t, "y", feed.Candidates[0].Profile.UserID)
	assert.Equal(t, 100, feed.Candidates[0].Score)

	// X proposes.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings", "x", gin.H{"recipient_id": "y"})
	require.Equal(t, http.StatusCreated, w.Code)
	var p domain.Pairing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, domain.PairingPending, p.Status)

	// A duplicate proposal conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings", "x", gin.H{"recipient_id": "y"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Messaging before acceptance conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings/"+p.ID+"/messages", "x", gin.H{"content": "hello"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Only the recipient may respond.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings/"+p.ID+"/respond", "x", gin.H{"decision": "accept"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Y accepts.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings/"+p.ID+"/respond", "y", gin.H{"decision": "accept"})
	require.Equal(t, http.StatusOK, w.Code)

	// X sends the first message.
	w = doJSON(t, router, http.MethodPost, "/api/v1/pairings/"+p.ID+"/messages", "x", gin.H{"content": "hello"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Both participants see it; a stranger does not.
	for _, reader := range []string{"x", "y"} {
		w = doJSON(t, router, http.MethodGet, "/api/v1/pairings/"+p.ID+"/messages", reader, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Messages []domain.Message `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, "hello", resp.Messages[0].Content)
	}
	seedUser(profiles, "z")
	w = doJSON(t, router, http.MethodGet, "/api/v1/pairings/"+p.ID+"/messages", "z", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListPairingsStatusFilter(t *testing.T) {
	router, profiles := newTestRouter(t)
	seedUser(profiles, "x")
	seedUser(profiles, "y")

	w := doJSON(t, router, http.MethodPost, "/api/v1/pairings", "x", gin.H{"recipient_id": "y"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/pairings?status=pending", "x", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Pairings []pairing.PairingView `json:"pairings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Pairings, 1)
	require.NotNil(t, resp.Pairings[0].Counterpart)
	assert.Equal(t, "y", resp.Pairings[0].Counterpart.UserID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/pairings?status=accepted", "x", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Pairings = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Pairings)

	w = doJSON(t, router, http.MethodGet, "/api/v1/pairings?status=bogus", "x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelfProposalIsRejected(t *testing.T) {
	router, profiles := newTestRouter(t)
	seedUser(profiles, "x")

	w := doJSON(t, router, http.MethodPost, "/api/v1/pairings", "x", gin.H{"recipient_id": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileUpdateRoundTrip(t *testing.T) {
	router, profiles := newTestRouter(t)
	seedUser(profiles, "x")

	w := doJSON(t, router, http.MethodPut, "/api/v1/profile/me", "x", gin.H{
		"fitness_goal": "build-muscle",
		"location":     "Austin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/profile/me", "x", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p domain.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.NotNil(t, p.FitnessGoal)
	assert.Equal(t, "build-muscle", *p.FitnessGoal)
	require.NotNil(t, p.Location)
	assert.Equal(t, "Austin", *p.Location)
	// Untouched fields survive a partial update.
	require.NotNil(t, p.WorkoutType)
	assert.Equal(t, "cardio", *p.WorkoutType)
}
