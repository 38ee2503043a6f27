package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

func TestRegisterProject(t *testing.T) {
	var got registerProjectReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/projects", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(registerProjectResp{OK: true, ProjectID: 42, TxHash: "0xabc"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xContract")
	p := domain.Project{
		Title:        "T",
		Description:  "D",
		IPFSHash:     "QmX",
		DepartmentID: 3,
		Year:         2024,
		AccessLevel:  domain.AccessRestricted,
	}

	id, tx, err := c.RegisterProject(context.Background(), p, "0xSender")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "0xabc", tx)

	assert.Equal(t, "0xContract", got.Contract)
	assert.Equal(t, "0xSender", got.From)
	assert.Equal(t, 1, got.AccessLevel)
}

func TestRegisterProject_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(registerProjectResp{OK: false, Error: "revert"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xContract")
	_, _, err := c.RegisterProject(context.Background(), domain.Project{Title: "T"}, "0xSender")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revert")
}

func TestSetAccessLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/projects/7/access-level", r.URL.Path)
		json.NewEncoder(w).Encode(registerProjectResp{OK: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xContract")
	require.NoError(t, c.SetAccessLevel(context.Background(), 7, domain.AccessPublic, "0xSender"))
}

func TestGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/users/0xABC", r.URL.Path)
		json.NewEncoder(w).Encode(userInfoResp{OK: true, User: UserInfo{
			IsRegistered: true, IsStudent: true, DepartmentID: 2, InstitutionID: 1,
		}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xContract")
	info, err := c.GetUserInfo(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.True(t, info.IsStudent)
	assert.Equal(t, int64(2), info.DepartmentID)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "0xContract")
	_, err := c.Institutions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
