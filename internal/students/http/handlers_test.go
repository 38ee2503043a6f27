package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/students/domain"
)

func TestParseRosterCSV(t *testing.T) {
	in := strings.Join([]string{
		"wallet_address,name,email,department_id,institution_id,year",
		"0xAAA,Alice,alice@uni.edu,1,1,2024",
		"0xBBB,Bob,bob@uni.edu,2,1,2023",
	}, "\n")

	rows, err := parseRosterCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "0xAAA", rows[0].WalletAddress)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, int64(1), rows[0].DepartmentID)
	assert.Equal(t, 2024, rows[0].Year)
	assert.Equal(t, domain.StatusActive, rows[0].Status, "status defaults to active")
}

func TestParseRosterCSV_NoHeader(t *testing.T) {
	rows, err := parseRosterCSV(strings.NewReader("0xAAA,Alice,alice@uni.edu,1,1,2024\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0xAAA", rows[0].WalletAddress)
}

func TestParseRosterCSV_StatusColumn(t *testing.T) {
	in := strings.Join([]string{
		"wallet_address,name,email,department_id,institution_id,year,status",
		"0xCCC,Cara,cara@uni.edu,3,2,2020,graduated",
	}, "\n")

	rows, err := parseRosterCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.StatusGraduated, rows[0].Status)
}

func TestParseRosterCSV_BadRows(t *testing.T) {
	cases := map[string]string{
		"too few columns": "0xAAA,Alice,alice@uni.edu,1\n",
		"bad department":  "0xAAA,Alice,alice@uni.edu,x,1,2024\n",
		"bad year":        "0xAAA,Alice,alice@uni.edu,1,1,soon\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRosterCSV(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}
