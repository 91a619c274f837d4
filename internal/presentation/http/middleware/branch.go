package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	infraRepo "github.com/sofrahq/sofra-api/internal/infrastructure/repository"
	"github.com/sofrahq/sofra-api/internal/presentation/http/dto/response"
)

// BranchScopeMiddleware propagates the caller's branch into the request
// context so repositories filter branch-scoped entities automatically.
// Admins carry no branch and see every branch; everyone else is pinned
// to the branch on their token.
func BranchScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("user_role")
		if role, ok := roleVal.(string); ok && role == "admin" {
			ctx := infraRepo.WithSkipBranchScope(c.Request.Context(), true)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		branchIDVal, exists := c.Get("branch_id")
		if !exists {
			response.Forbidden(c, "No branch assigned to this account")
			c.Abort()
			return
		}

		branchID, ok := branchIDVal.(uuid.UUID)
		if !ok || branchID == uuid.Nil {
			response.Forbidden(c, "Invalid branch assignment")
			c.Abort()
			return
		}

		ctx := infraRepo.WithBranch(c.Request.Context(), branchID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
