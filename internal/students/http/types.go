package http

import "github.com/UniChain-25-26J-287/uni-repo-backend/internal/students"

// Handler bundles the dependencies for roster HTTP endpoints.
type Handler struct {
	repo *students.Repo
}

func New(repo *students.Repo) *Handler {
	return &Handler{repo: repo}
}
