package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/collegehub/collegehub/internal/app/models/dto"
)

// ContextValidatedBodyKey is the gin context key holding the request body
// bound by ValidateRequest.
const ContextValidatedBodyKey = "validatedBody"

var validate = validator.New()

// ValidateRequest binds the JSON request body into a fresh T and validates
// it against its struct tags before the handler runs. On failure the
// request is aborted with a 400 detailing the violations.
func ValidateRequest[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var obj T
		if err := c.ShouldBindJSON(&obj); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
			errorDetail = errorDetail.WithDetails(err.Error())
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			c.Abort()
			return
		}

		if err := validate.Struct(obj); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
			c.Abort()
			return
		}

		c.Set(ContextValidatedBodyKey, &obj)
		c.Next()
	}
}

// ValidatedBody returns the body ValidateRequest bound for this request.
// The second return is false when the middleware did not run.
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	value, exists := c.Get(ContextValidatedBodyKey)
	if !exists {
		return nil, false
	}
	body, ok := value.(*T)
	return body, ok
}
