package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxWalletAddress = "wallet_address"

// WithViewer extracts the caller's wallet address from the X-Wallet-Address
// header without enforcing anything. Catalog reads work anonymously; the
// address only widens what the visibility filter lets through.
func WithViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		addr := strings.TrimSpace(c.GetHeader("X-Wallet-Address"))
		c.Set(CtxWalletAddress, addr)
		c.Next()
	}
}

// ViewerAddress returns the wallet address set by WithViewer, or "" for an
// anonymous request.
func ViewerAddress(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxWalletAddress))
}

// RequireViewer aborts with 401 when no wallet address accompanies the
// request. Used on mutation routes where an acting identity is mandatory.
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ViewerAddress(c) == "" {
			c.AbortWithStatusJSON(401, gin.H{"ok": false, "error": "wallet address required"})
			return
		}
		c.Next()
	}
}
