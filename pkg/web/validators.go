package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

// gte returns a ParamValidator that checks if the argument is greater than or equal to the given value.
func gte(bound int64) ParamValidator {
	return func(argValue int64) bool {
		return argValue >= bound
	}
}

// gt returns a ParamValidator that checks if the argument is greater than the given value.
func gt(bound int64) ParamValidator {
	return func(argValue int64) bool {
		return argValue > bound
	}
}

func ParseValidateGte(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, value, fallback int64) (int32, bool) {
	return parseValidate(r, w, logger, key, fallback, gte(value))
}

func ParseValidateGt(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, value, fallback int64) (int32, bool) {
	return parseValidate(r, w, logger, key, fallback, gt(value))
}

// parseValidate parses an integer query parameter and validates it.
// A missing parameter resolves to the fallback value without validation.
func parseValidate(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, fallback int64, pValidator ParamValidator) (int32, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return int32(fallback), true
	}
	intValue, err := strconv.ParseInt(value, 10, 32)
	if err != nil || !pValidator(intValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return int32(intValue), true
}
