package shared

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"link/shared/dto"
	"link/shared/failure"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt64 returns nil for an empty or malformed value.
func ConvertStringToInt64(value string) *int64 {
	if value == "" {
		return nil
	}

	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int64")

		return nil
	}

	return &intValue
}

// ParseID parses a path id. Ids are positive.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("id must be a positive integer")
	}

	return id, nil
}

// URLParamID parses the named chi path parameter as an id.
func URLParamID(r *http.Request, key string) (int64, error) {
	return ParseID(chi.URLParam(r, key))
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// FilterByID matches one row by its key column.
func FilterByID(id int64, fieldID string) dto.FilterGroup {
	return FilterByField(fieldID, id)
}

// FilterByField matches rows whose column equals value.
func FilterByField(field string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}
