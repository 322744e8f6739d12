package boardapi

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextBoardClaims is the key used to store board token claims in the Gin context.
	ContextBoardClaims = "boardClaims"

	// ClaimBoardID is the token claim naming the board the bearer may edit.
	ClaimBoardID = "boardID"
)

// Authoriz accepts requests carrying a valid board token. On routes with an
// :ID parameter the token must have been issued for that board.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		if param := c.Param("ID"); param != "" {
			claimed, _ := claims[ClaimBoardID].(string)
			if !sameBoard(param, claimed) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token was not issued for this board"})
				return
			}
		}

		c.Set(ContextBoardClaims, claims)
		c.Next()
	}
}

func sameBoard(param, claimed string) bool {
	want, err := uuid.Parse(param)
	if err != nil {
		return false
	}
	got, err := uuid.Parse(claimed)
	if err != nil {
		return false
	}
	return want == got
}
