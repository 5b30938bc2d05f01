// Command fastp streams one (or one paired set of) FASTQ file(s)
// through adapter trimming, quality filtering, and paired-end overlap
// correction, writing the surviving reads back out in input order.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/biostrand/fastp/fastqio"
	"github.com/biostrand/fastp/filter"
	"github.com/biostrand/fastp/gzippool"
	"github.com/biostrand/fastp/options"
	"github.com/biostrand/fastp/pipeline"
)

func main() {
	opt := options.Default()

	flag.StringVar(&opt.In1, "i", "", "read1 input file name (required unless --stdin)")
	flag.StringVar(&opt.In2, "I", "", "read2 input file name (paired-end mode)")
	flag.StringVar(&opt.Out1, "o", "", "read1 output file name (default stdout)")
	flag.StringVar(&opt.Out2, "O", "", "read2 output file name")
	flag.BoolVar(&opt.Stdin, "stdin", false, "read data from stdin instead of -i")
	flag.BoolVar(&opt.Stdout, "stdout", false, "write r1 data to stdout instead of -o")

	flag.IntVar(&opt.TrimFront1, "trim_front1", opt.TrimFront1, "bases to trim from the front of read1")
	flag.IntVar(&opt.TrimTail1, "trim_tail1", opt.TrimTail1, "bases to trim from the tail of read1")
	flag.IntVar(&opt.MaxLen1, "max_len1", opt.MaxLen1, "max length of read1 after trimming, 0 for no limit")
	flag.IntVar(&opt.TrimFront2, "trim_front2", opt.TrimFront2, "bases to trim from the front of read2, defaults to trim_front1")
	flag.IntVar(&opt.TrimTail2, "trim_tail2", opt.TrimTail2, "bases to trim from the tail of read2, defaults to trim_tail1")
	flag.IntVar(&opt.MaxLen2, "max_len2", opt.MaxLen2, "max length of read2 after trimming, defaults to max_len1")

	flag.IntVar(&opt.LengthRequired, "length_required", opt.LengthRequired, "reads shorter than this after trimming are discarded")
	qualPhred := flag.Int("qualified_quality_phred", int(opt.QualifiedQualityPhred), "phred quality considered qualified")
	unqualLimit := flag.Int("unqualified_percent_limit", int(opt.UnqualifiedPercentLimit), "max percent of unqualified bases allowed")
	avgQual := flag.Int("average_qual", int(opt.AverageQual), "discard reads with average quality below this, 0 to disable")
	flag.IntVar(&opt.NBaseLimit, "n_base_limit", opt.NBaseLimit, "max number of N bases allowed")

	flag.BoolVar(&opt.CutFront, "cut_front", false, "enable 5' sliding window quality cutting")
	flag.BoolVar(&opt.CutTail, "cut_tail", false, "enable 3' sliding window quality cutting")
	flag.BoolVar(&opt.CutRight, "cut_right", false, "enable 5'->3' sliding window quality cutting")
	flag.IntVar(&opt.CutFrontWindowSize, "cut_front_window_size", opt.CutFrontWindowSize, "cut_front window size")
	cutFrontQual := flag.Int("cut_front_mean_quality", int(opt.CutFrontMeanQuality), "cut_front mean quality threshold")
	flag.IntVar(&opt.CutTailWindowSize, "cut_tail_window_size", opt.CutTailWindowSize, "cut_tail window size")
	cutTailQual := flag.Int("cut_tail_mean_quality", int(opt.CutTailMeanQuality), "cut_tail mean quality threshold")
	flag.IntVar(&opt.CutRightWindowSize, "cut_right_window_size", opt.CutRightWindowSize, "cut_right window size")
	cutRightQual := flag.Int("cut_right_mean_quality", int(opt.CutRightMeanQuality), "cut_right mean quality threshold")

	flag.BoolVar(&opt.DisableAdapterTrimming, "disable_adapter_trimming", false, "disable all adapter trimming")
	flag.StringVar(&opt.AdapterSequence, "adapter_sequence", "", "the adapter for read1")
	flag.StringVar(&opt.AdapterSequenceR2, "adapter_sequence_r2", "", "the adapter for read2, defaults to adapter_sequence")

	flag.BoolVar(&opt.TrimPolyG, "trim_poly_g", false, "force poly-G tail trimming")
	flag.IntVar(&opt.PolyGMinLen, "poly_g_min_len", opt.PolyGMinLen, "minimum poly-G run length to trim")
	flag.BoolVar(&opt.DisableTrimPolyG, "disable_trim_poly_g", false, "disable poly-G tail trimming entirely")
	flag.BoolVar(&opt.TrimPolyX, "trim_poly_x", false, "enable poly-X tail trimming")
	flag.IntVar(&opt.PolyXMinLen, "poly_x_min_len", opt.PolyXMinLen, "minimum poly-X run length to trim")

	flag.BoolVar(&opt.Correction, "correction", false, "enable paired-end base correction in the overlapped region")
	flag.IntVar(&opt.OverlapLenRequire, "overlap_len_require", opt.OverlapLenRequire, "minimum overlap length to consider mates overlapped")
	flag.IntVar(&opt.OverlapDiffLimit, "overlap_diff_limit", opt.OverlapDiffLimit, "max mismatches allowed in the overlapped region")
	overlapDiffPct := flag.Int("overlap_diff_percent_limit", int(opt.OverlapDiffPercentLimit), "max mismatch percent allowed in the overlapped region")

	flag.IntVar(&opt.Thread, "thread", opt.Thread, "worker goroutines")
	flag.IntVar(&opt.PackSize, "pack_size", opt.PackSize, "records per pack handed to a worker")
	flag.IntVar(&opt.QueueDepth, "queue_depth", opt.QueueDepth, "bounded channel depth between pipeline stages, defaults to 2*thread")
	flag.IntVar(&opt.Compression, "compression", opt.Compression, "gzip compression level for output, 1 (fastest) to 9 (smallest)")
	flag.BoolVar(&opt.Pigz, "pigz", false, "pipe output through an external pigz process instead of the in-process compression pool")
	flag.IntVar(&opt.PigzThreads, "pigz_threads", opt.PigzThreads, "pigz thread count, defaults to thread")

	flag.StringVar(&opt.ReportTitle, "report_title", opt.ReportTitle, "title used in the HTML report")
	flag.StringVar(&opt.JSON, "json", opt.JSON, "JSON report output path")
	flag.StringVar(&opt.HTML, "html", opt.HTML, "HTML report output path")

	flag.Parse()

	opt.QualifiedQualityPhred = byte(*qualPhred)
	opt.UnqualifiedPercentLimit = byte(*unqualLimit)
	opt.AverageQual = byte(*avgQual)
	opt.CutFrontMeanQuality = byte(*cutFrontQual)
	opt.CutTailMeanQuality = byte(*cutTailQual)
	opt.CutRightMeanQuality = byte(*cutRightQual)
	opt.OverlapDiffPercentLimit = byte(*overlapDiffPct)
	if opt.TrimFront2 == 0 {
		opt.TrimFront2 = opt.TrimFront1
	}
	if opt.TrimTail2 == 0 {
		opt.TrimTail2 = opt.TrimTail1
	}
	if opt.MaxLen2 == 0 {
		opt.MaxLen2 = opt.MaxLen1
	}
	if opt.AdapterSequenceR2 == "" {
		opt.AdapterSequenceR2 = opt.AdapterSequence
	}
	if opt.PigzThreads == 0 {
		opt.PigzThreads = opt.Thread
	}

	cleanup := grail.Init()
	defer cleanup()

	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})

	ctx := vcontext.Background()

	if opt.In1 == "" && !opt.Stdin {
		log.Fatal("either -i or --stdin is required")
	}
	paired := opt.In2 != ""

	src1, err := fastqio.OpenInput(ctx, opt.In1, opt.Stdin)
	if err != nil {
		log.Fatalf("open %s: %v", opt.In1, err)
	}
	defer src1.Close(ctx)

	var r1 io.Reader = src1.Reader()
	var r2 io.Reader
	if paired {
		src2, err := fastqio.OpenInput(ctx, opt.In2, false)
		if err != nil {
			log.Fatalf("open %s: %v", opt.In2, err)
		}
		defer src2.Close(ctx)
		r2 = src2.Reader()
	}

	w1, closeOut1 := openOutput(ctx, opt, opt.Out1, opt.Stdout)
	defer closeOut1()
	var w2 io.Writer
	if paired && opt.Out2 != "" {
		var closeOut2 func()
		w2, closeOut2 = openOutput(ctx, opt, opt.Out2, false)
		defer closeOut2()
	}

	f := filter.New(opt)

	report, err := pipeline.Run(opt, f, r1, r2, w1, w2)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}

	log.Printf("total reads: %d, passed: %d, too short: %d, low quality: %d, too many N: %d, low average qual: %d",
		report.TotalReads, report.PassedReads, report.FailedTooShort, report.FailedLowQuality,
		report.FailedNExcess, report.FailedLowAverageQual)
	log.Printf("adapter trimmed reads: %d bases: %d, polyG trimmed reads: %d bases: %d, polyX trimmed reads: %d bases: %d",
		report.AdapterTrimmedReads, report.AdapterTrimmedBases,
		report.PolyGTrimmedReads, report.PolyGTrimmedBases,
		report.PolyXTrimmedReads, report.PolyXTrimmedBases)
}

// openOutput opens path for writing (or wraps stdout when useStdout is
// set), choosing between three compression strategies for a
// .gz-suffixed path: an external pigz process (opt.Pigz), the
// in-process compression pool (gzippool, the default), or a direct
// gzip.Writer when the pool is disabled for some other reason. A
// non-.gz path is written uncompressed. The returned func must be
// called after the pipeline has finished writing to flush and close
// everything opened here.
func openOutput(ctx context.Context, opt options.Options, path string, useStdout bool) (io.Writer, func()) {
	if opt.Pigz && strings.HasSuffix(path, ".gz") {
		return newPigzWriter(ctx, opt, path, useStdout)
	}

	sink, err := fastqio.CreateOutput(ctx, path, useStdout, opt.Compression, !opt.UsePool())
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	if sink.IsGzip() || !strings.HasSuffix(path, ".gz") {
		return sink.Writer(), func() {
			if err := sink.Close(ctx); err != nil {
				log.Fatalf("close %s: %v", path, err)
			}
		}
	}

	pw := gzippool.NewPoolWriter(sink.Writer(), opt.Thread, opt.Compression)
	return pw, func() {
		if err := pw.Close(); err != nil {
			log.Fatalf("flush %s: %v", path, err)
		}
		if err := sink.Close(ctx); err != nil {
			log.Fatalf("close %s: %v", path, err)
		}
	}
}

// pigzWriter pipes written bytes through an external pigz process
// writing directly to path, bypassing both fastqio.Sink and gzippool.
type pigzWriter struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *os.File
}

func newPigzWriter(ctx context.Context, opt options.Options, path string, useStdout bool) (io.Writer, func()) {
	out := os.Stdout
	if !useStdout {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("create %s: %v", path, err)
		}
		out = f
	}
	args := []string{"-p", itoa(opt.PigzThreads), "-" + itoa(opt.Compression), "-c"}
	cmd := exec.Command("pigz", args...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		log.Fatalf("pigz stdin pipe: %v", err)
	}
	if err := cmd.Start(); err != nil {
		log.Fatalf("start pigz: %v", err)
	}
	pw := &pigzWriter{cmd: cmd, stdin: stdin, stdout: out}
	return pw, func() {
		if err := pw.stdin.Close(); err != nil {
			log.Fatalf("close pigz stdin: %v", err)
		}
		if err := pw.cmd.Wait(); err != nil {
			log.Fatalf("pigz: %v", err)
		}
		if pw.stdout != os.Stdout {
			pw.stdout.Close()
		}
	}
}

func (w *pigzWriter) Write(p []byte) (int, error) {
	return w.stdin.Write(p)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
