package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/yossyi0323/App/internal/dtos"
	"github.com/yossyi0323/App/internal/models"
	"github.com/yossyi0323/App/internal/utils"
)

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formatValidationErrors converts validator errors into a user-friendly format.
// prefix is prepended to each field path, e.g. "[2]." for bulk payloads.
func formatValidationErrors(errs validator.ValidationErrors, prefix string) []dtos.ValidationErrorDetail {
	var details []dtos.ValidationErrorDetail
	for _, err := range errs {
		field := prefix + fieldPath(err)
		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", field)
		case "required_without":
			message = fmt.Sprintf("Field '%s' is required when '%s' is absent", field, err.Param())
		case "required_with":
			message = fmt.Sprintf("Field '%s' is required when '%s' is present", field, err.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must not exceed %s in length", field, err.Param())
		case "gte":
			message = fmt.Sprintf("Field '%s' must be at least %s", field, err.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of [%s]", field, err.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, err.Tag())
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   field,
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}
	return details
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

// decodeJSON writes a 400 and returns false when the body is not valid JSON
// for dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return false
	}
	return true
}

// validateBody writes a 400 with per-field details and returns false when
// req fails its validate tags.
func validateBody(w http.ResponseWriter, v *validator.Validate, req any) bool {
	if err := v.Struct(req); err != nil {
		respondValidation(w, err, "")
		return false
	}
	return true
}

func respondValidation(w http.ResponseWriter, err error, prefix string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error",
			formatValidationErrors(validationErrs, prefix))
		return
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
}

// pathUUID reads the {id} route variable.
func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			fmt.Sprintf("Invalid id %q", raw), nil, err)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter. Absent yields nil.
func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return &id, nil
}

// queryBusinessDate parses businessDate=YYYY-MM-DD. When the parameter is
// absent it returns the zero date, or ErrInvalidBusinessDate if required.
func queryBusinessDate(r *http.Request, required bool) (models.BusinessDate, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("businessDate"))
	if raw == "" {
		if required {
			return models.BusinessDate{}, fmt.Errorf("businessDate is required: %w", utils.ErrInvalidBusinessDate)
		}
		return models.BusinessDate{}, nil
	}
	d, err := models.ParseBusinessDate(raw)
	if err != nil {
		return models.BusinessDate{}, fmt.Errorf("businessDate must be %s: %w", models.BusinessDateLayout, utils.ErrInvalidBusinessDate)
	}
	return d, nil
}

func respondBadQuery(w http.ResponseWriter, err error) {
	code := utils.ErrCodeInvalidPayload
	if errors.Is(err, utils.ErrInvalidBusinessDate) {
		code = utils.ErrCodeValidation
	}
	utils.RespondErrorWithCode(w, http.StatusBadRequest, code, err.Error(), nil, err)
}
