package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database"
	"github.com/murayeeto/HornetHelper/app/infrastructure/database/repository/transaction"
	"github.com/murayeeto/HornetHelper/app/interfaces/http/responses"
)

func TransactionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Requests are served without a transaction when no database is configured.
		if database.DB == nil {
			c.Next()
			return
		}
		tx := database.DB.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()
		ctxWithTx := transaction.WithTx(c.Request.Context(), tx)
		c.Request = c.Request.WithContext(ctxWithTx)
		c.Next()

		if c.IsAborted() {
			tx.Rollback()
			return
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}
	}
}
