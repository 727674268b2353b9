package dto_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"link/shared/constant"
	"link/shared/dto"
	"link/shared/failure"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "companyName",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "companyName", SortDir: "ASC"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with negative limit parameter",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with unknown sort direction",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/companies")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "companyId", Operator: dto.FilterOperatorEq, Value: int64(3)},
			dto.Filter{Field: "branchName", Operator: dto.FilterOperatorLike, Value: "north"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "startTime", Operator: dto.FilterOperatorLessEq, Value: 10, ArgName: "from"},
					dto.Filter{Field: "endTime", Operator: dto.FilterOperatorGreaterEq, Value: 20, ArgName: "to"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(companyId = :companyId AND LOWER(branchName) LIKE LOWER(:branchName) AND (startTime <= :from OR endTime >= :to))", where)
	assert.Equal(t, map[string]any{
		"companyId":  int64(3),
		"branchName": "%north%",
		"from":       10,
		"to":         20,
	}, args)
}

func TestFilterGroup_UnknownOperatorIsDropped(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "companyId", Operator: "plan", Value: "1=1) OR (1=1"},
			dto.Filter{Field: "buildingId", Operator: dto.FilterOperatorEq, Value: int64(2)},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(buildingId = :buildingId)", where)
	assert.Equal(t, map[string]any{"buildingId": int64(2)}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestNewResult(t *testing.T) {
	id := dto.ID{ID: 12}

	ok := dto.NewResult("Company created", &id, nil)
	assert.True(t, ok.Success)
	assert.Equal(t, "Company created", ok.Message)
	assert.Equal(t, int64(12), ok.Data.ID)

	empty := dto.NewResult[dto.ID]("Company deleted", nil, nil)
	assert.True(t, empty.Success)
	assert.Nil(t, empty.Data)

	failed := dto.NewResult[dto.ID]("ignored", nil, failure.Database(errors.New("relation does not exist")))
	assert.False(t, failed.Success)
	assert.Equal(t, "Database query failed: relation does not exist", failed.Message)
	assert.Nil(t, failed.Data)
	assert.Equal(t, failure.KindDatabase, dto.Kind(failure.Database(errors.New("x"))))
}
