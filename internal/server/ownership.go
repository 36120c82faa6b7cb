package server

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/api"
	"github.com/GurjasChalana/fitness-club/internal/auth"
)

// requireSelfMember restricts :memberID routes to the member profile
// linked to the authenticated account. Admins pass through.
func requireSelfMember(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := auth.GetRole(c); role == auth.RoleAdmin {
			c.Next()
			return
		}

		memberID, err := strconv.Atoi(c.Param("memberID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid memberID"})
			return
		}

		linked, ok := linkedMemberID(c, db)
		if !ok || linked != memberID {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// requireInvoiceAccess restricts :invoiceID reads to the invoice's own
// member. Admins pass through.
func requireInvoiceAccess(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := auth.GetRole(c); role == auth.RoleAdmin {
			c.Next()
			return
		}

		invoiceID, err := strconv.Atoi(c.Param("invoiceID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid invoiceID"})
			return
		}

		linked, ok := linkedMemberID(c, db)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
			return
		}

		var owner int
		err = db.GetContext(c.Request.Context(), &owner,
			`SELECT member_id FROM invoices WHERE invoice_id = $1`, invoiceID)
		if errors.Is(err, sql.ErrNoRows) {
			c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: "invoice not found"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
			return
		}
		if owner != linked {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// linkedMemberID resolves the member profile attached to the
// authenticated account. Accounts without one (trainer-only logins)
// get no member access.
func linkedMemberID(c *gin.Context, db *sqlx.DB) (int, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return 0, false
	}

	var memberID sql.NullInt64
	err := db.GetContext(c.Request.Context(), &memberID,
		`SELECT member_id FROM users WHERE id = $1`, userID)
	if err != nil || !memberID.Valid {
		return 0, false
	}

	return int(memberID.Int64), true
}
