package http

import (
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/blob"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/chain"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/pinning"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/store"
)

// Handler bundles the dependencies for catalog HTTP endpoints. Chain,
// pinning and archive are optional collaborators; nil disables them.
type Handler struct {
	store   *store.Store
	chain   *chain.Client
	pinning *pinning.Client
	archive *blob.Archive
}

func New(s *store.Store, ch *chain.Client, pin *pinning.Client, arc *blob.Archive) *Handler {
	return &Handler{store: s, chain: ch, pinning: pin, archive: arc}
}
