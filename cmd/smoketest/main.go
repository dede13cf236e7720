// Command smoketest runs the tokenizer, the normalizer and the validator over
// every .txt file under a directory and reports invariant violations: lossy
// tokenization, non-idempotent normalization and files whose orthography
// issue rate is far above the rest of the corpus. With no directory it runs
// on the embedded sample.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sudoping01/bambara-text-normalization/contraction"
	"github.com/sudoping01/bambara-text-normalization/data"
	"github.com/sudoping01/bambara-text-normalization/normalize"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
	"github.com/sudoping01/bambara-text-normalization/validate"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	bytesToMBShift = 20
	sampleName     = "<embedded sample>"
	outlierFactor  = 3
	issuesPerWords = 100
)

// normalizers are checked for idempotence on every line.
var normalizers = []struct {
	name string
	n    *normalize.Normalizer
}{
	{normalize.PresetStandard, normalize.New(normalize.Default())},
	{normalize.PresetWER, normalize.New(normalize.ForWEREvaluation(contraction.Expand))},
	{normalize.PresetWER + "/contract", normalize.New(normalize.ForWEREvaluation(contraction.Contract))},
}

type fileRatio struct {
	path   string
	issues int
	words  int
	ratio  float64
}

type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	lines           int
	reconOK         int
	reconFail       int
	idempotentFail  int
	issueOutliers   int
	tokenTypeCounts map[tokenizer.TokenType]int
	issueCounts     map[validate.IssueType]int
	fileRatios      []fileRatio
}

func newStats() *Stats {
	return &Stats{
		tokenTypeCounts: make(map[tokenizer.TokenType]int),
		issueCounts:     make(map[validate.IssueType]int),
	}
}

type fileState struct {
	path            string
	tokenCounts     map[tokenizer.TokenType]int
	issueCounts     map[validate.IssueType]int
	totalBytes      int64
	lines           int
	words           int
	issues          int
	reconFailed     bool
	reconFailLogged bool
	idempotentFail  int
}

func newFileState(path string) *fileState {
	return &fileState{
		path:        path,
		tokenCounts: make(map[tokenizer.TokenType]int),
		issueCounts: make(map[validate.IssueType]int),
	}
}

func main() {
	stats := newStats()
	start := time.Now()

	switch len(os.Args) {
	case 1:
		processReader(sampleName, strings.NewReader(data.Sample), stats)
	case 2:
		filePaths, err := collectFiles(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
		processFiles(filePaths, stats)
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [directory]\n", os.Args[0])
		os.Exit(1)
	}

	flagIssueOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(os.Stdout, stats)
}

func collectFiles(dir string) ([]string, error) {
	var filePaths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	return filePaths, err
}

func processFiles(filePaths []string, stats *Stats) {
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			processFile(path, stats)
		})
	}

	wg.Wait()
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
	processReader(path, f, stats)
}

// processReader reads r in chunks cut at line boundaries and merges the
// per-file counts into stats.
func processReader(path string, r io.Reader, stats *Stats) {
	fileStart := time.Now()
	state := newFileState(path)

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := r.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))

	tokens := tokenizer.WordTokens(text)

	var sb strings.Builder
	if !fs.reconFailed {
		sb.Grow(len(text))
	}
	for _, token := range tokens {
		fs.tokenCounts[token.Type]++
		if token.Type == tokenizer.Word || token.Type == tokenizer.Elision {
			fs.words++
		}
		if !fs.reconFailed {
			sb.WriteString(token.Text)
		}
	}
	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		if !fs.reconFailLogged {
			logReconstructionFailure(fs.path, text, sb.String())
			fs.reconFailLogged = true
		}
	}

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fs.lines++
		fs.checkLine(line)
	}
}

func (fs *fileState) checkLine(line string) {
	for _, nz := range normalizers {
		once := nz.n.Normalize(line)
		if twice := nz.n.Normalize(once); twice != once {
			if fs.idempotentFail == 0 {
				fmt.Fprintf(os.Stderr, "IDEMPOTENCE_FAIL: %s: preset %s: %q -> %q -> %q\n",
					fs.path, nz.name, line, once, twice)
			}
			fs.idempotentFail++
		}
	}

	report := validate.Validate(line)
	fs.issues += len(report.Issues)
	for _, issue := range report.Issues {
		fs.issueCounts[issue.Type]++
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.lines += fs.lines
	stats.idempotentFail += fs.idempotentFail

	if fs.reconFailed {
		stats.reconFail++
	} else {
		stats.reconOK++
	}

	for tokenType, count := range fs.tokenCounts {
		stats.tokenTypeCounts[tokenType] += count
	}
	for issueType, count := range fs.issueCounts {
		stats.issueCounts[issueType] += count
	}

	ratio := 0.0
	if fs.words > 0 {
		ratio = float64(fs.issues) * issuesPerWords / float64(fs.words)
	}
	stats.fileRatios = append(stats.fileRatios, fileRatio{
		path:   fs.path,
		issues: fs.issues,
		words:  fs.words,
		ratio:  ratio,
	})
}

func logReconstructionFailure(path, original, reconstructed string) {
	pos, got, want := firstDivergence(original, reconstructed)
	fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		path, pos, got, want)
}

// flagIssueOutliers computes the median issues-per-100-words rate across all
// files and flags any file whose rate exceeds 3x the median.
func flagIssueOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > outlierFactor*med {
			stats.issueOutliers++
			fmt.Fprintf(os.Stderr, "ISSUE_OUTLIER: %s: %d issues / %d words (%.2f per 100, median %.2f)\n",
				fr.path, fr.issues, fr.words, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Files scanned:           %d\n", stats.filesScanned)
	fmt.Fprintf(w, "Total bytes:             %d\n", stats.totalBytes)
	fmt.Fprintf(w, "Lines:                   %d\n", stats.lines)
	fmt.Fprintf(w, "Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Fprintf(w, "Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Fprintf(w, "Idempotence FAIL:        %d\n", stats.idempotentFail)
	fmt.Fprintf(w, "Issue outliers:          %d\n", stats.issueOutliers)
	fmt.Fprintln(w)

	totalTokens := 0
	for _, count := range stats.tokenTypeCounts {
		totalTokens += count
	}

	fmt.Fprintln(w, "Token type distribution:")
	for _, tt := range []tokenizer.TokenType{
		tokenizer.Word, tokenizer.Elision, tokenizer.Number,
		tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol,
	} {
		printShare(w, tt.String(), stats.tokenTypeCounts[tt], totalTokens)
	}

	totalIssues := 0
	for _, count := range stats.issueCounts {
		totalIssues += count
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Orthography issues:")
	for _, it := range []validate.IssueType{
		validate.ForeignLetter, validate.LegacySpelling,
		validate.ApostropheVariant, validate.MixedTone,
	} {
		printShare(w, it.String(), stats.issueCounts[it], totalIssues)
	}
}

func printShare(w io.Writer, label string, count, total int) {
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Fprintf(w, "  %-19s %d  (%.1f%%)\n", label+":", count, percentage)
}
