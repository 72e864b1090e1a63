package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommandTree(t *testing.T) {
	report, _, err := rootCmd.Find([]string{"report", "monthly"})
	require.NoError(t, err)
	assert.Equal(t, "monthly", report.Name())
	assert.NotNil(t, report.Flags().Lookup("month"))

	annual, _, err := rootCmd.Find([]string{"report", "annual"})
	require.NoError(t, err)
	assert.Nil(t, annual.Flags().Lookup("month"))
	assert.NotNil(t, annual.Flags().Lookup("today"))
}

func TestReportRequiresUser(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"report", "annual", "--kind", "income"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"user"`)
}
