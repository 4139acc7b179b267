package tsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobsTSV = "Country\tJobTitle\tCompanyName\tCity\tJobURL\n" +
	"France\tData Engineer\tAcme\tParis\thttps://example.com/1\n" +
	"Germany\tBackend Developer\tGlobex\tBerlin\thttps://example.com/2\n" +
	"France\tProduct Manager\tInitech\tLyon\thttps://example.com/3\n"

func TestParseRecordCountAndFields(t *testing.T) {
	table := Parse(jobsTSV)

	lines := strings.Split(strings.TrimSpace(jobsTSV), "\n")
	require.Equal(t, len(lines)-1, table.Len())
	assert.Equal(t, []string{"Country", "JobTitle", "CompanyName", "City", "JobURL"}, table.Header)

	for _, row := range table.Rows {
		assert.Len(t, row.Values, len(table.Header))
		for _, h := range table.Header {
			_, ok := row.Values[h]
			assert.True(t, ok, "row %d is missing %s", row.Line, h)
		}
	}

	assert.Equal(t, "Data Engineer", table.Rows[0].Get("JobTitle"))
	assert.Equal(t, 2, table.Rows[0].Line)
	assert.Equal(t, "Lyon", table.Rows[2].Get("City"))
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \t \n "} {
		table := Parse(in)
		assert.Equal(t, 0, table.Len(), "input %q", in)
		assert.Empty(t, table.Header, "input %q", in)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	table := Parse("Country\tMinSalary\n")
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"Country", "MinSalary"}, table.Header)
}

func TestParseTrailingBlankLinesDoNotCreateRecords(t *testing.T) {
	table := Parse(jobsTSV + "\n\n")
	assert.Equal(t, 3, table.Len())
}

func TestParseTrimsHeaderAndValues(t *testing.T) {
	table := Parse(" Country \t MedianSalary\r\n  France \t 42000 \r\n")
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"Country", "MedianSalary"}, table.Header)
	assert.Equal(t, "France", table.Rows[0].Get("Country"))
	assert.Equal(t, "42000", table.Rows[0].Get("MedianSalary"))
}

func TestParseRaggedRows(t *testing.T) {
	table := Parse("A\tB\tC\nx\ny\tz\tw\textra\n")
	require.Equal(t, 2, table.Len())

	short := table.Rows[0]
	assert.Equal(t, 1, short.Width)
	assert.Equal(t, "x", short.Get("A"))
	assert.Equal(t, "", short.Get("B"))
	assert.Equal(t, "", short.Get("C"))

	long := table.Rows[1]
	assert.Equal(t, 4, long.Width)
	assert.Len(t, long.Values, 3)
	assert.Equal(t, "w", long.Get("C"))
}

func TestParseInteriorBlankLineIsABlankRow(t *testing.T) {
	table := Parse("A\tB\n1\t2\n\n3\t4")
	require.Equal(t, 3, table.Len())
	assert.Equal(t, "", table.Rows[1].Get("A"))
	assert.Equal(t, "3", table.Rows[2].Get("A"))
	assert.Equal(t, 4, table.Rows[2].Line)
}

func TestHasColumn(t *testing.T) {
	table := Parse(jobsTSV)
	assert.True(t, table.HasColumn("JobURL"))
	assert.False(t, table.HasColumn("Salary"))
	assert.Equal(t, "", table.Rows[0].Get("Salary"))
}

func TestParseKeepsTrailingEmptyFieldOfLastRow(t *testing.T) {
	table := Parse("A\tB\tC\nx\ty\t\nu\tv\t\n\n")
	require.Equal(t, 2, table.Len())
	for _, row := range table.Rows {
		assert.Equal(t, 3, row.Width, "line %d", row.Line)
		assert.Equal(t, "", row.Get("C"))
	}
}

func TestParseLeadingBlankLinesKeepLineNumbers(t *testing.T) {
	table := Parse("\n\nA\tB\n1\t2\n")
	require.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"A", "B"}, table.Header)
	assert.Equal(t, 4, table.Rows[0].Line)
}
