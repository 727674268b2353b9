package statement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"link/shared/failure"
	"link/shared/statement"
)

func TestInsert(t *testing.T) {
	stmt, err := statement.Insert("company", "companyId",
		[]string{"companyName", "companyWebsite", "passwordId"},
		[]any{"Vast Expanse", "vastexpanse.co.za", int64(7)})

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO company(companyName,companyWebsite,passwordId) VALUES ($1::text,$2::text,$3) RETURNING companyId;",
		stmt.Query)
	assert.Equal(t, []any{"Vast Expanse", "vastexpanse.co.za", int64(7)}, stmt.Args)
}

func TestInsert_DateLikeHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "timestamp from the 2010s is bound bare", value: "2019-07-21T10:00:00", expected: "$1"},
		{name: "plain text is cast", value: "hello", expected: "$1::text"},
		{name: "timestamp from the 2020s is cast", value: "2024-01-01T00:00:00", expected: "$1::text"},
		{name: "empty string is cast", value: "", expected: "$1::text"},
		{name: "integer is bound bare", value: 12, expected: "$1"},
		{name: "time value is bound bare", value: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), expected: "$1"},
		{name: "nil is bound bare", value: nil, expected: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := statement.Insert("visitorpackage", "visitorPackageId", []string{"startTime"}, []any{tt.value})

			require.NoError(t, err)
			assert.Equal(t, "INSERT INTO visitorpackage(startTime) VALUES ("+tt.expected+") RETURNING visitorPackageId;", stmt.Query)
		})
	}
}

func TestInsert_Invalid(t *testing.T) {
	_, err := statement.Insert("company", "companyId", []string{"companyName"}, []any{"a", "b"})
	assert.True(t, failure.IsKind(err, failure.KindInternal))

	_, err = statement.Insert("company", "companyId", nil, nil)
	assert.True(t, failure.IsKind(err, failure.KindInternal))

	_, err = statement.Insert("company; DROP TABLE company", "companyId", []string{"companyName"}, []any{"a"})
	assert.True(t, failure.IsKind(err, failure.KindInternal))
}

func TestInsertDefaults(t *testing.T) {
	stmt, err := statement.InsertDefaults("tpa", "tpaId")

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tpa DEFAULT VALUES RETURNING tpaId;", stmt.Query)
	assert.Empty(t, stmt.Args)
}

func TestValidIdentifier(t *testing.T) {
	assert.True(t, statement.ValidIdentifier("employee_4_a1b2c3d4e5"))
	assert.False(t, statement.ValidIdentifier("employee; DROP TABLE employee"))
	assert.False(t, statement.ValidIdentifier(""))
}

func TestUpdate_DropsAbsentCandidates(t *testing.T) {
	stmt, err := statement.Update("company_3_abcdefghij", "companyId", 3,
		[]string{"a", "b", "c"},
		[]any{statement.Absent, "x", statement.Absent})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE company_3_abcdefghij SET b = $1 WHERE companyId = 3", stmt.Query)
	assert.Equal(t, []any{"x"}, stmt.Args)
}

func TestUpdate_KeepsExplicitNull(t *testing.T) {
	stmt, err := statement.Update("visitorpackage", "visitorPackageId", 9,
		[]string{"tpaId", "linkWalletId", "endTime"},
		[]any{nil, statement.Absent, "2019-08-01T00:00:00"})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE visitorpackage SET tpaId = $1,endTime = $2 WHERE visitorPackageId = 9", stmt.Query)
	assert.Equal(t, []any{nil, "2019-08-01T00:00:00"}, stmt.Args)
}

func TestUpdate_NoValidParameters(t *testing.T) {
	stmt, err := statement.Update("company", "companyId", 1,
		[]string{"a", "b"},
		[]any{statement.Absent, statement.Absent})

	assert.True(t, failure.IsKind(err, failure.KindNoValidParameters))
	assert.Empty(t, stmt.Query)

	_, err = statement.Update("company", "companyId", 1, nil, nil)
	assert.True(t, failure.IsKind(err, failure.KindNoValidParameters))
}

func TestUpdate_MismatchedCandidates(t *testing.T) {
	_, err := statement.Update("company", "companyId", 1, []string{"a"}, []any{"x", "y"})

	assert.True(t, failure.IsKind(err, failure.KindInternal))
}

func TestUpdateComposite(t *testing.T) {
	stmt, err := statement.UpdateComposite("tpaxroom_5_0123456789",
		[]statement.Key{{Column: "tpaId", Value: 4}, {Column: "roomId", Value: 8}},
		[]string{"tpaId", "roomId"},
		[]any{statement.Absent, int64(11)})

	require.NoError(t, err)
	assert.Equal(t, "UPDATE tpaxroom_5_0123456789 SET roomId = $1 WHERE tpaId = 4 AND roomId = 8", stmt.Query)
	assert.Equal(t, []any{int64(11)}, stmt.Args)
}

func TestDelete(t *testing.T) {
	stmt, err := statement.Delete("room_2_zzzzzzzzzz", "roomId", 15)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM room_2_zzzzzzzzzz WHERE roomId = $1", stmt.Query)
	assert.Equal(t, []any{int64(15)}, stmt.Args)
}

func TestDeleteComposite(t *testing.T) {
	stmt, err := statement.DeleteComposite("tpaxroom",
		[]statement.Key{{Column: "tpaId", Value: 4}, {Column: "roomId", Value: 8}})

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM tpaxroom WHERE tpaId = $1 AND roomId = $2", stmt.Query)
	assert.Equal(t, []any{int64(4), int64(8)}, stmt.Args)

	_, err = statement.DeleteComposite("tpaxroom", nil)
	assert.True(t, failure.IsKind(err, failure.KindInternal))
}

func TestOptional(t *testing.T) {
	name := "Lobby"

	assert.Equal(t, "Lobby", statement.Optional(&name))
	assert.True(t, statement.IsAbsent(statement.Optional[string](nil)))
	assert.False(t, statement.IsAbsent(nil))
}

func TestNullable(t *testing.T) {
	website := "acme.test"

	assert.Equal(t, "acme.test", statement.Nullable(&website))
	assert.Nil(t, statement.Nullable[string](nil))
}

func TestIncrementWithin(t *testing.T) {
	stmt, err := statement.IncrementWithin("wallet_7_abcdefghij", "linkWalletId", 5, "spent", "maxLimit", 12.5)

	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE wallet_7_abcdefghij SET spent = spent + $1 WHERE linkWalletId = 5 AND spent + $1 <= maxLimit",
		stmt.Query)
	assert.Equal(t, []any{12.5}, stmt.Args)

	_, err = statement.IncrementWithin("wallet", "linkWalletId", 5, "spent; --", "maxLimit", 1)
	assert.True(t, failure.IsKind(err, failure.KindInternal))
}
