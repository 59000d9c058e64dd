package ui

import (
	"testing"

	"github.com/arwahscan/arwahscan/internal/core"
)

// TestFilterState_SetServiceFilter tests service filter functionality
func TestFilterState_SetServiceFilter(t *testing.T) {
	filter := NewFilterState()

	filter.SetServiceFilter("http")

	if filter.ServiceFilter != "http" {
		t.Errorf("service filter = %q; want %q", filter.ServiceFilter, "http")
	}
}

// TestFilterState_ServiceFilter_Apply tests service filter application
func TestFilterState_ServiceFilter_Apply(t *testing.T) {
	filter := NewFilterState()
	filter.SetServiceFilter("http")

	results := []core.ResultEvent{
		{Host: "host1", Port: 80, State: core.StateOpen, Banner: "http server"},
		{Host: "host2", Port: 443, State: core.StateOpen, Banner: "https server"},
		{Host: "host3", Port: 22, State: core.StateOpen, Banner: "ssh server"},
	}

	// The service filter matches the port's service name (getServiceName)
	// case-insensitively, so 80 (HTTP) and 443 (HTTPS) pass and 22 (SSH) does not
	filtered := filter.ApplyFilters(results)

	if len(filtered) == 0 {
		t.Error("filtered results should not be empty")
	}
}

// TestFilterState_ServiceFilter_CaseInsensitive tests case-insensitive service matching
func TestFilterState_ServiceFilter_CaseInsensitive(t *testing.T) {
	filter := NewFilterState()
	filter.SetServiceFilter("HTTP")

	results := []core.ResultEvent{
		{Host: "host1", Port: 80, State: core.StateOpen, Banner: "HTTP/1.1 200 OK"},
		{Host: "host2", Port: 8080, State: core.StateOpen, Banner: "http-proxy"},
	}

	filtered := filter.ApplyFilters(results)

	// Results should pass through
	if len(filtered) == 0 {
		t.Error("filtered results should not be empty")
	}
}

// TestFilterState_PortRange_EdgeCases tests port range edge cases
func TestFilterState_PortRange_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		min      uint16
		max      uint16
		testPort uint16
		expected bool
	}{
		{"min boundary", 80, 100, 80, true},
		{"max boundary", 80, 100, 100, true},
		{"below min", 80, 100, 79, false},
		{"above max", 80, 100, 101, false},
		{"single port range", 80, 80, 80, true},
		{"zero min", 0, 100, 50, true},
		{"max uint16", 65000, 65535, 65535, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewFilterState()
			filter.SetPortRange(tt.min, tt.max)

			results := []core.ResultEvent{
				{Host: "host", Port: tt.testPort, State: core.StateOpen},
			}

			filtered := filter.ApplyFilters(results)

			if tt.expected && len(filtered) != 1 {
				t.Errorf("expected port %d to match range [%d,%d]", tt.testPort, tt.min, tt.max)
			}

			if !tt.expected && len(filtered) != 0 {
				t.Errorf("expected port %d to NOT match range [%d,%d]", tt.testPort, tt.min, tt.max)
			}
		})
	}
}

// TestFilterState_GetActiveFilterDescription_AllFilters tests description with all filters active
func TestFilterState_GetActiveFilterDescription_AllFilters(t *testing.T) {
	filter := NewFilterState()
	filter.SetStateFilter(StateFilterOpen)
	filter.SetPortRange(80, 443)
	filter.SetServiceFilter("http")
	filter.SetBannerSearch("nginx")
	filter.SetLatencyFilter(100)

	desc := filter.GetActiveFilterDescription()

	if desc == "" {
		t.Error("description should not be empty with all filters active")
	}

	// Check that description contains information about filters
	expectedSubstrings := []string{
		"Open",
		"80",
		"443",
	}

	for _, substr := range expectedSubstrings {
		if !containsSubstring(desc, substr) {
			t.Errorf("description should contain %q", substr)
		}
	}
}

// TestFilterState_GetActiveFilterDescription_PartialFilters tests description with some filters
func TestFilterState_GetActiveFilterDescription_PartialFilters(t *testing.T) {
	filter := NewFilterState()
	filter.SetStateFilter(StateFilterOpen)

	desc := filter.GetActiveFilterDescription()

	if desc == "" {
		t.Error("description should not be empty with state filter active")
	}

	if !containsSubstring(desc, "Open") {
		t.Error("description should mention open filter")
	}
}

// TestFilterState_MultipleFilters_Combined tests combining multiple filters
func TestFilterState_MultipleFilters_Combined(t *testing.T) {
	filter := NewFilterState()
	filter.SetStateFilter(StateFilterOpen)
	filter.SetPortRange(80, 443)
	filter.SetBannerSearch("apache")

	results := []core.ResultEvent{
		{Host: "host1", Port: 80, State: core.StateOpen, Banner: "Apache/2.4"},
		{Host: "host2", Port: 443, State: core.StateOpen, Banner: "nginx"},
		{Host: "host3", Port: 22, State: core.StateOpen, Banner: "OpenSSH"},
		{Host: "host4", Port: 80, State: core.StateClosed, Banner: "Apache/2.4"},
		{Host: "host5", Port: 8080, State: core.StateOpen, Banner: "Apache/2.4"},
	}

	filtered := filter.ApplyFilters(results)

	// Should only match: host1 (open, port 80, apache)
	if len(filtered) != 1 {
		t.Errorf("filtered count = %d; want 1 (open, port in range, apache banner)", len(filtered))
	}

	if len(filtered) > 0 {
		if filtered[0].Host != "host1" {
			t.Errorf("filtered host = %q; want %q", filtered[0].Host, "host1")
		}
	}
}

// TestFilterState_Reset_ClearsAllFilters tests that reset clears all filter types
func TestFilterState_Reset_ClearsAllFilters(t *testing.T) {
	filter := NewFilterState()
	
	// Set all filter types
	filter.SetStateFilter(StateFilterOpen)
	filter.SetPortRange(80, 443)
	filter.SetServiceFilter("http")
	filter.SetBannerSearch("nginx")
	filter.SetLatencyFilter(100)

	// Reset
	filter.Reset()

	// Verify all filters are cleared
	if filter.StateFilter != StateFilterAll {
		t.Error("state filter should be reset to All")
	}

	if filter.PortRangeMin != 0 || filter.PortRangeMax != 65535 {
		t.Error("port range should be reset to full range")
	}

	if filter.ServiceFilter != "" {
		t.Error("service filter should be empty")
	}

	if filter.BannerSearch != "" {
		t.Error("banner search should be empty")
	}

	if filter.LatencyMax != 0 {
		t.Error("latency filter should be reset to 0")
	}

	// Apply filters to test data - should return all results
	results := []core.ResultEvent{
		{Host: "host1", Port: 80, State: core.StateOpen},
		{Host: "host2", Port: 443, State: core.StateClosed},
		{Host: "host3", Port: 22, State: core.StateFiltered},
	}

	filtered := filter.ApplyFilters(results)

	if len(filtered) != len(results) {
		t.Errorf("after reset, all results should pass: got %d, want %d", len(filtered), len(results))
	}
}

// TestFilterState_MatchesStateFilter_EdgeCases tests state filter edge cases
func TestFilterState_MatchesStateFilter_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		filterType  StateFilterType
		resultState core.ScanState
		expected    bool
	}{
		{"all allows open", StateFilterAll, core.StateOpen, true},
		{"all allows closed", StateFilterAll, core.StateClosed, true},
		{"all allows filtered", StateFilterAll, core.StateFiltered, true},
		{"open filter open", StateFilterOpen, core.StateOpen, true},
		{"open filter closed", StateFilterOpen, core.StateClosed, false},
		{"closed filter open", StateFilterClosed, core.StateOpen, false},
		{"closed filter closed", StateFilterClosed, core.StateClosed, true},
		{"filtered filter filtered", StateFilterFiltered, core.StateFiltered, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := NewFilterState()
			filter.SetStateFilter(tt.filterType)

			result := core.ResultEvent{
				Host:  "test",
				Port:  80,
				State: tt.resultState,
			}

			matches := filter.matchesStateFilter(result)

			if matches != tt.expected {
				t.Errorf("matchesStateFilter = %v; want %v", matches, tt.expected)
			}
		})
	}
}

// Helper function to check if string contains substring
func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && hasSubstr(s, substr)
}

func hasSubstr(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
