package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"artbook_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestArtists(t *testing.T) {
	out, err := run(t, "artists", "--category", "musicians")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah Johnson")
	assert.Contains(t, out, "New York, NY")
	assert.NotContains(t, out, "DJ Pulse")

	out, err = run(t, "artists", "--json", "--search", "corporate", "--price-range", "3000-5000")
	require.NoError(t, err)
	var resp dto.ArtistListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 2, resp.ActiveFilters)
}

func TestArtists_RejectsUnknownBucket(t *testing.T) {
	_, err := run(t, "artists", "--price-range", "cheap")
	assert.ErrorContains(t, err, "price_range")
}

func TestLocations(t *testing.T) {
	out, err := run(t, "locations")
	require.NoError(t, err)
	assert.Equal(t, "Austin, TX\nChicago, IL\nLas Vegas, NV\nLos Angeles, CA\nMiami, FL\nNew York, NY\n", out)
}

func TestCategories(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "magicians")
	assert.Contains(t, out, "234")
}

func TestLeads(t *testing.T) {
	out, err := run(t, "leads", "--status", "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "John Smith")
	assert.NotContains(t, out, "Lisa Davis")

	_, err = run(t, "leads", "--status", "archived")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--json")
	require.NoError(t, err)

	var stats dto.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 2500, stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingLeads)
}
