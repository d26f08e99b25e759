package httpapi

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"agnoctl/pkg/types"
)

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 200: "200", 404: "404", 503: "503"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			t.Fatalf("itoa(%d) = %q", n, got)
		}
	}
}

func TestRecordChecks(t *testing.T) {
	before := testutil.ToFloat64(checksTotal.WithLabelValues("ollama", "fail"))
	recordChecks(types.StatusReport{Checks: []types.CheckResult{
		{Service: "ollama", OK: false},
		{Service: "api", OK: true},
	}})
	after := testutil.ToFloat64(checksTotal.WithLabelValues("ollama", "fail"))
	if after != before+1 {
		t.Fatalf("ollama fail counter: before=%v after=%v", before, after)
	}
	if testutil.ToFloat64(checksTotal.WithLabelValues("api", "pass")) == 0 {
		t.Fatalf("api pass counter not incremented")
	}
}

func TestRecordPull(t *testing.T) {
	okBefore := testutil.ToFloat64(pullsTotal.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(pullsTotal.WithLabelValues("failure"))
	RecordPull(true)
	RecordPull(false)
	RecordPull(false)
	if got := testutil.ToFloat64(pullsTotal.WithLabelValues("success")); got != okBefore+1 {
		t.Fatalf("success counter: before=%v after=%v", okBefore, got)
	}
	if got := testutil.ToFloat64(pullsTotal.WithLabelValues("failure")); got != failBefore+2 {
		t.Fatalf("failure counter: before=%v after=%v", failBefore, got)
	}
}
