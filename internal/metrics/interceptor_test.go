package metrics

import "testing"

func TestSplitMethodName(t *testing.T) {
	cases := []struct {
		full    string
		service string
		method  string
	}{
		{"/cluster.ClusterTransportService/Ping", "cluster.ClusterTransportService", "Ping"},
		{"/cluster.ClientEventService/Write", "cluster.ClientEventService", "Write"},
		{"garbage", "unknown", "garbage"},
		{"", "unknown", "unknown"},
	}

	for _, tc := range cases {
		service, method := splitMethodName(tc.full)
		if service != tc.service || method != tc.method {
			t.Errorf("splitMethodName(%q) = (%q, %q), want (%q, %q)",
				tc.full, service, method, tc.service, tc.method)
		}
	}
}
