package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"link/internal/scope"
)

func TestNewSuffix(t *testing.T) {
	suffix, err := scope.NewSuffix()

	require.NoError(t, err)
	assert.Regexp(t, `^[a-z0-9]{10}$`, suffix)
}

func TestNewSuffix_Distinct(t *testing.T) {
	const draws = 5000

	seen := make(map[string]struct{}, draws)

	for range draws {
		suffix, err := scope.NewSuffix()
		require.NoError(t, err)

		_, dup := seen[suffix]
		require.False(t, dup, "suffix %s drawn twice", suffix)

		seen[suffix] = struct{}{}
	}
}

func TestViewName(t *testing.T) {
	assert.Equal(t, "employee_42_k3j9x0a1bz", scope.ViewName(scope.TableEmployee, 42, "k3j9x0a1bz"))
	assert.Equal(t, "accesspoint_0_k3j9x0a1bz", scope.ViewName(scope.TableAccessPoint, 0, "k3j9x0a1bz"))
	assert.Equal(t, "credential_7_aaaaaaaaaa", scope.ViewName(scope.TableCredential, 7, "aaaaaaaaaa"))
}

func TestIsViewName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "tpaxroom_5_0123456789", want: true},
		{name: "company_0_abcdefghij", want: true},
		{name: "company", want: false},
		{name: "company_0_ABCDEFGHIJ", want: false},
		{name: "company_0_abc", want: false},
		{name: "company_0_abcdefghij; DROP TABLE company", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scope.IsViewName(tt.name))
		})
	}
}

func TestTables(t *testing.T) {
	tables := scope.Tables()

	require.Len(t, tables, 13)
	assert.Equal(t, scope.TableCompany, tables[0])
	assert.Equal(t, scope.TableTPAxRoom, tables[12])
	assert.Equal(t, "password", scope.TableCredential.Physical())
	assert.Equal(t, "nfcaccesspoints", scope.TableAccessPoint.Physical())
	assert.Equal(t, "linkWalletId", scope.TableWallet.PrimaryKey())
	assert.Equal(t, "unknown", scope.Table(99).Name())
}
