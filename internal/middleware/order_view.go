package middleware

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// LoadOrderView restores the client's order table view from the session.
// Clients without one, or with an unreadable one, get the default view.
func LoadOrderView() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		state := services.DefaultOrderViewState()

		if raw, ok := session.Get(constants.SessionKeyOrderView).(string); ok && raw != "" {
			var stored services.OrderViewState
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				log.Printf("[session] discarding order view: %v", err)
			} else {
				state = stored
			}
		}

		c.Set(constants.ContextKeyOrderView, &state)
		c.Next()
	}
}

// GetOrderView retrieves the view state loaded by LoadOrderView
func GetOrderView(c *gin.Context) (*services.OrderViewState, bool) {
	v, exists := c.Get(constants.ContextKeyOrderView)
	if !exists {
		return nil, false
	}
	state, ok := v.(*services.OrderViewState)
	return state, ok
}

// SaveOrderView writes state back to the session
func SaveOrderView(c *gin.Context, state *services.OrderViewState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode order view: %w", err)
	}
	session := sessions.Default(c)
	session.Set(constants.SessionKeyOrderView, string(b))
	if err := session.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
