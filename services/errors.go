package services

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"clinic_back_end_go/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// SetupValidation makes gin's binding validator report json field names
// instead of Go struct field names, so 422 details match the wire.
func SetupValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// respondBindError turns a ShouldBindJSON failure into the 422 body.
// Malformed JSON gets a single body level entry, constraint failures
// one entry per field.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			detail = append(detail, models.FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []models.FieldError{{Field: "body", Message: err.Error()}}})
}

func respondFieldErrors(c *gin.Context, errs []models.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
}

// respondStorageFault logs the backend failure with request context and
// answers with the uniform 500 body. The raw message is included for
// diagnosis.
func respondStorageFault(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.Writer.Header().Get("X-Request-ID")).
		Msg("storage fault")
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error", "error": err.Error()})
}

// paramID parses an integer path parameter, answering 422 itself when
// the value is not an integer.
func paramID(c *gin.Context, param string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil {
		respondFieldErrors(c, []models.FieldError{{Field: "id", Message: "must be an integer"}})
		return 0, false
	}
	return id, true
}

// pagination parses skip and limit with the 0/100 defaults. Negative
// values are a caller error, not something to clamp.
func pagination(c *gin.Context) (int, int, bool) {
	var errs []models.FieldError

	skipStr := c.DefaultQuery("skip", "0")
	if skipStr == "" {
		skipStr = "0"
	}
	skip, err := strconv.Atoi(skipStr)
	if err != nil {
		errs = append(errs, models.FieldError{Field: "skip", Message: "must be an integer"})
	} else if skip < 0 {
		errs = append(errs, models.FieldError{Field: "skip", Message: "must not be negative"})
	}

	limitStr := c.DefaultQuery("limit", "100")
	if limitStr == "" {
		limitStr = "100"
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		errs = append(errs, models.FieldError{Field: "limit", Message: "must be an integer"})
	} else if limit < 0 {
		errs = append(errs, models.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		respondFieldErrors(c, errs)
		return 0, 0, false
	}
	return skip, limit, true
}

func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("%s not found", entity)})
}
