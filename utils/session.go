package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CheckSessionStore verifies the cookie session store accepts writes.
// Used by the health endpoint so a broken store surfaces before authors
// lose editor state.
func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("test", "test")
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store check failed: %v", err)
	}
	session.Delete("test")
	return session.Save()
}
