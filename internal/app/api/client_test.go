package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huecas/internal/app/api"
	"huecas/internal/app/user"
	"huecas/internal/pkg/errs"
)

// staticTokens is a TokenSource with a fixed credential.
type staticTokens struct {
	token string
}

func (s staticTokens) Token() string {
	return s.token
}

// recordedRequest captures what the test server saw.
type recordedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// newRecordingServer answers every request with status and responseBody and
// records the last request into rec.
func newRecordingServer(t *testing.T, status int, responseBody string, rec *recordedRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.header = r.Header.Clone()

		rec.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
}

func TestClient_RequestHeaders(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `[]`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "tok-123"})

	_, err := client.GetRestaurants(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", rec.header.Get("Authorization"))
	assert.Equal(t, "application/json", rec.header.Get("Content-Type"))
	assert.NotEmpty(t, rec.header.Get("X-Request-ID"))
}

func TestClient_NoBearerWithoutToken(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `[]`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.GetRestaurants(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, rec.header.Get("Authorization"))
}

func TestClient_LoginSuccess(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `{
		"token": "fresh-token",
		"user": {"id": "u1", "name": "Ana", "email": "ana@huecas.dev", "isProfileComplete": true}
	}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	result, err := client.Login(context.Background(), "ana@huecas.dev", "secreto123")
	require.NoError(t, err)

	assert.Equal(t, "/auth/login", rec.path)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "fresh-token", result.Token)
	assert.Equal(t, "u1", result.User.ID)
	assert.True(t, result.User.IsProfileComplete)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "ana@huecas.dev", sent["email"])
	assert.Equal(t, "secreto123", sent["password"])
}

func TestClient_LoginRejectionCarriesServerMessage(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusUnauthorized, `{"error": "Credenciales inválidas"}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.Login(context.Background(), "ana@huecas.dev", "mala")
	require.Error(t, err)

	var customErr *errs.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errs.ErrInvalidCredentials, customErr.Code)
	assert.Equal(t, errs.KindAuthentication, customErr.Kind)
	assert.Equal(t, "Credenciales inválidas", customErr.Message)
	assert.Equal(t, http.StatusUnauthorized, customErr.Status)
}

func TestClient_RegisterRejection(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusConflict, `{"error": "El correo ya está registrado"}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.Register(context.Background(), "Ana", "ana@huecas.dev", "secreto123", "secreto123")
	require.Error(t, err)

	var customErr *errs.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errs.ErrRegistrationRejected, customErr.Code)
	assert.Equal(t, "El correo ya está registrado", customErr.Message)
}

func TestClient_NotFoundStaysNotFound(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusNotFound, `{"error": "Restaurante no encontrado"}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.GetRestaurant(context.Background(), "r-missing")
	require.Error(t, err)

	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, "Restaurante no encontrado", errs.MessageOf(err))
}

func TestClient_UndecodableErrorBodyFallsBackToTemplate(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusInternalServerError, `<html>gateway timeout</html>`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.GetRestaurants(context.Background(), nil)
	require.Error(t, err)

	var customErr *errs.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errs.ErrUnknown, customErr.Code)
	assert.Equal(t, http.StatusInternalServerError, customErr.Status)
	assert.NotEmpty(t, customErr.Message)
}

func TestClient_NetworkFailureIsTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse every connection

	client := api.NewClient(server.URL, staticTokens{})

	_, err := client.GetRestaurants(context.Background(), nil)
	require.Error(t, err)

	var customErr *errs.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errs.ErrNetworkFailure, customErr.Code)
	assert.Equal(t, errs.KindTransport, customErr.Kind)
	assert.Zero(t, customErr.Status)
	assert.NotEmpty(t, customErr.Message)
}

func TestClient_GetRestaurantsFilters(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `[{"_id": "r1", "name": "La Huequita"}]`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{})

	restaurants, err := client.GetRestaurants(context.Background(), &api.RestaurantFilters{
		Cuisines: []string{"peruana", "criolla"},
		Location: "Lima",
	})
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "r1", restaurants[0].ID)

	assert.Equal(t, "/api/restaurants", rec.path)
	assert.Contains(t, rec.query, "cuisines=peruana%2Ccriolla")
	assert.Contains(t, rec.query, "location=Lima")
}

func TestClient_ToggleLike(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `{"message": "Like agregado", "liked": true}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "tok"})

	status, err := client.ToggleLike(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, "/api/like", rec.path)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.True(t, status.Liked)
	assert.Equal(t, "Like agregado", status.Message)
}

func TestClient_CompleteSetupReturnsFreshAuth(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `{
		"token": "rotated-token",
		"user": {
			"id": "u1", "name": "Ana", "email": "ana@huecas.dev",
			"isProfileComplete": true,
			"preferences": {"foodTypes": ["peruana"], "location": "Lima"}
		}
	}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "old-token"})

	response, err := client.CompleteSetup(context.Background(), []string{"peruana"}, "Lima")
	require.NoError(t, err)

	assert.Equal(t, "/auth/profile/complete-setup", rec.path)
	assert.Equal(t, "rotated-token", response.Token)
	assert.True(t, response.User.IsProfileComplete)
	require.NotNil(t, response.User.Preferences)
	assert.Equal(t, []string{"peruana"}, response.User.Preferences.FoodTypes)
}

func TestClient_GetChatHistory(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `[
		{"_id": "m1", "userId": "u2", "userName": "Luis", "message": "hola"}
	]`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "tok"})

	history, err := client.GetChatHistory(context.Background(), "general")
	require.NoError(t, err)

	assert.Equal(t, "/chat/messages", rec.path)
	assert.Equal(t, "room=general", rec.query)
	require.Len(t, history, 1)
	assert.Equal(t, "m1", history[0].ID)
}

func TestClient_DeleteReview(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusNoContent, ``, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "tok"})

	require.NoError(t, client.DeleteReview(context.Background(), "rev with space"))

	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/reviews/rev with space", rec.path)
}

func TestClient_UpdateProfile(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `{
		"token": "rotated",
		"user": {"id": "u1", "name": "Ana María", "email": "ana@huecas.dev", "isProfileComplete": true}
	}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "old"})

	newName := "Ana María"
	response, err := client.UpdateProfile(context.Background(), api.ProfileUpdate{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/auth/profile", rec.path)
	assert.Equal(t, "Ana María", response.User.Name)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "Ana María", sent["name"])
	_, emailSent := sent["email"]
	assert.False(t, emailSent, "unset fields must be omitted from the payload")
}

func TestClient_GetProfile(t *testing.T) {
	var rec recordedRequest
	server := newRecordingServer(t, http.StatusOK, `{
		"id": "u1", "name": "Ana", "email": "ana@huecas.dev", "isProfileComplete": false
	}`, &rec)
	defer server.Close()

	client := api.NewClient(server.URL, staticTokens{token: "tok"})

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, user.User{ID: "u1", Name: "Ana", Email: "ana@huecas.dev"}, profile)
}
