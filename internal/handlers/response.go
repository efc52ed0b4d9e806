package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/oakline/rental-backend/internal/pkg/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError translates a service error into the wire contract:
// per-field failures become {errors:[{param,msg},...]}, everything else
// the {error:{message,code}} envelope with the error's status.
func RespondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			c.JSON(apiErr.Status, gin.H{"errors": apiErr.Fields})
			return
		}
		c.JSON(apiErr.Status, ErrorEnvelope{
			Error: APIError{Message: apiErr.Error(), Code: apiErr.Code},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: APIError{Message: err.Error(), Code: apierr.CodeStore},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// bindError rewrites a JSON-binding failure into the legacy validation
// error, naming the offending fields when the validator reports them.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		params := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			params = append(params, lowerFirst(fe.Field()))
		}
		return apierr.Validation(fmt.Errorf("please send all required parameters: %s", strings.Join(params, ", ")))
	}
	return apierr.Validation(err)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// parseIDParam reads an integer path parameter. A non-numeric id can
// never match a row, so it reports the resource as not found, the same
// outcome the original produced for unparseable ids.
func parseIDParam(c *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		RespondError(c, apierr.NotFound(resource))
		return 0, false
	}
	return id, true
}
