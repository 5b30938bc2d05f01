package pipeline

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/biostrand/fastp/filter"
	"github.com/biostrand/fastp/options"
)

func buildFastq(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "@read%d\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n", i)
	}
	return b.String()
}

func TestRunSingleEndPreservesOrder(t *testing.T) {
	in := buildFastq(250)
	o := options.Default()
	o.Thread = 4
	o.PackSize = 17 // deliberately not a divisor of 250, to exercise the trailing partial pack
	f := filter.New(o)

	var out bytes.Buffer
	report, err := Run(o, f, strings.NewReader(in), nil, &out, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.TotalReads != 250 || report.PassedReads != 250 {
		t.Fatalf("got total=%d passed=%d, want 250/250", report.TotalReads, report.PassedReads)
	}

	want := buildFastq(250)
	if out.String() != want {
		t.Fatalf("output did not preserve input order/content")
	}
}

func TestRunPairedEndPreservesOrder(t *testing.T) {
	var b1, b2 strings.Builder
	for i := 0; i < 100; i++ {
		fmt.Fprintf(&b1, "@pair%d/1\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n", i)
		fmt.Fprintf(&b2, "@pair%d/2\nTTTTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n", i)
	}

	o := options.Default()
	o.Thread = 8
	o.PackSize = 7
	o.DisableAdapterTrimming = true
	f := filter.New(o)

	var out1, out2 bytes.Buffer
	report, err := Run(o, f, strings.NewReader(b1.String()), strings.NewReader(b2.String()), &out1, &out2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.TotalReads != 100 {
		t.Fatalf("TotalReads: got %d, want 100", report.TotalReads)
	}

	lines := strings.Split(strings.TrimRight(out1.String(), "\n"), "\n")
	for i := 0; i*4 < len(lines); i++ {
		want := fmt.Sprintf("@pair%d/1", i)
		if got := lines[i*4]; got != want {
			t.Fatalf("out1 record %d name: got %q, want %q", i, got, want)
		}
	}
}

func TestRunDropsTooShortReads(t *testing.T) {
	var in strings.Builder
	fmt.Fprintf(&in, "@keep\nACGTACGTACGTACGTACGT\n+\nIIIIIIIIIIIIIIIIIIII\n")
	fmt.Fprintf(&in, "@drop\nACG\n+\nIII\n")

	o := options.Default()
	o.Thread = 1
	o.PackSize = 10
	o.LengthRequired = 10
	f := filter.New(o)

	var out bytes.Buffer
	report, err := Run(o, f, strings.NewReader(in.String()), nil, &out, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FailedTooShort != 1 || report.PassedReads != 1 {
		t.Fatalf("got FailedTooShort=%d PassedReads=%d, want 1/1", report.FailedTooShort, report.PassedReads)
	}
	if !strings.Contains(out.String(), "@keep") || strings.Contains(out.String(), "@drop") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
