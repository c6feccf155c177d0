package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokens string

func (s staticTokens) Token(context.Context) string { return string(s) }

func TestClient_AttachesTokenHeader(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Token")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens("secret"), zap.NewNop())
	_, err := client.Offers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", gotToken)
}

func TestClient_NoTokenHeaderWhenEmpty(t *testing.T) {
	var hasHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["X-Token"]
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	_, err := client.Offers(context.Background())
	require.NoError(t, err)
	assert.False(t, hasHeader)
}

func TestClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	_, err := client.Offer(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestClient_IsNotFoundOnlyFor404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	_, err := client.Offer(context.Background(), "1")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestClient_PostCommentSingleReview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/comments/o1", r.URL.Path)
		w.Write([]byte(`{"id":"r1","date":"2024-01-01T00:00:00.000Z","comment":"fine","rating":4,"user":{"name":"Max","avatarUrl":"a.jpg","isPro":false}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	reviews, isList, err := client.PostComment(context.Background(), "o1", "fine", 4)
	require.NoError(t, err)
	assert.False(t, isList)
	require.Len(t, reviews, 1)
	assert.Equal(t, "r1", reviews[0].ID)
	assert.Equal(t, "Max", reviews[0].User.Name)
}

func TestClient_PostCommentReviewList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"r1","rating":4},{"id":"r2","rating":5}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	reviews, isList, err := client.PostComment(context.Background(), "o1", "fine", 4)
	require.NoError(t, err)
	assert.True(t, isList)
	assert.Len(t, reviews, 2)
}

func TestClient_SetFavoriteEncodesStatusInPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"o1","isFavorite":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, staticTokens(""), zap.NewNop())
	offer, err := client.SetFavorite(context.Background(), "o1", true)
	require.NoError(t, err)
	assert.Equal(t, "/favorite/o1/1", gotPath)
	assert.True(t, offer.IsFavorite)

	_, err = client.SetFavorite(context.Background(), "o1", false)
	require.NoError(t, err)
	assert.Equal(t, "/favorite/o1/0", gotPath)
}
