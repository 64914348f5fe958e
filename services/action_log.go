package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Voltline-Commerce/voltline-backend/config"
	"github.com/google/uuid"
)

// LogAction records a storefront event best-effort. The insert runs on
// its own goroutine with its own timeout; failures are logged and
// swallowed so the calling request is never affected.
func LogAction(userID uuid.UUID, action string, productID, orderID *uuid.UUID, details map[string]any) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var detailsJSON []byte
		if details != nil {
			var err error
			detailsJSON, err = json.Marshal(details)
			if err != nil {
				log.Printf("[action-log] failed to marshal details action=%s err=%v", action, err)
				detailsJSON = nil
			}
		}

		_, err := config.StoreDB.Exec(ctx, `
			INSERT INTO action_logs (id, user_id, action, product_id, order_id, details, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.Must(uuid.NewV7()), userID, action, productID, orderID, detailsJSON, time.Now().UTC())
		if err != nil {
			log.Printf("[action-log] insert failed action=%s user=%s err=%v", action, userID, err)
		}
	}()
}
