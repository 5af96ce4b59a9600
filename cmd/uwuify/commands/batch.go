package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/uwuify/cmd/uwuify/opts"
	"github.com/walteh/uwuify/pkg/log"
	"github.com/walteh/uwuify/pkg/uwu"
)

// BatchOptions controls a batch run
type BatchOptions struct {
	Pattern string
	Root    string
	Out     string
	Ignore  []string
	Jobs    int
}

// NewBatchCmd creates the batch command
func NewBatchCmd(o *opts.RootOpts) *cobra.Command {
	bo := BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Uwuify every file matching a glob",
		Long: `Batch rewrites each line of every file matching --glob under --root.
Results go to the same relative path under --out, or back into the
file itself when --out is empty. Leading indentation is kept and
trailing whitespace is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunBatch(cmd.Context(), o.Transformer, bo)
		},
	}

	cmd.Flags().StringVarP(&bo.Pattern, "glob", "g", "", "doublestar pattern of files to transform, relative to --root")
	cmd.Flags().StringVar(&bo.Root, "root", ".", "directory the glob is evaluated in")
	cmd.Flags().StringVarP(&bo.Out, "out", "o", "", "output directory (default: rewrite in place)")
	cmd.Flags().StringSliceVar(&bo.Ignore, "ignore", nil, "doublestar patterns to skip")
	cmd.Flags().IntVarP(&bo.Jobs, "jobs", "j", 4, "files processed concurrently")
	_ = cmd.MarkFlagRequired("glob")

	return cmd
}

// RunBatch transforms every matching file. It keeps going past per-file
// failures and reports them together at the end.
func RunBatch(ctx context.Context, t *uwu.Transformer, bo BatchOptions) error {
	logger := log.FromContext(ctx)

	if !doublestar.ValidatePattern(bo.Pattern) {
		return errors.Errorf("invalid glob %q", bo.Pattern)
	}
	if bo.Jobs < 1 {
		bo.Jobs = 1
	}

	matches, err := doublestar.Glob(os.DirFS(bo.Root), bo.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return errors.Errorf("globbing %q: %w", bo.Pattern, err)
	}

	dest := bo.Out
	if dest == "" {
		dest = bo.Root
	}

	logger.StartBatch(ctx, log.Batch{
		Pattern:     bo.Pattern,
		Root:        bo.Root,
		Destination: dest,
		Jobs:        bo.Jobs,
	})

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(bo.Jobs)

	for _, rel := range matches {
		rel := rel
		if shouldIgnore(egCtx, bo.Ignore, rel) {
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			logger.LogFileResult(egCtx, transformFile(t, bo.Root, dest, rel))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.EndBatch(ctx)
		return errors.Errorf("running batch: %w", err)
	}

	results := logger.EndBatch(ctx)

	failed := 0
	for _, r := range results {
		if r.IsFailed {
			failed++
		}
	}
	if failed > 0 {
		logger.Errorf("%d of %d files failed", failed, len(results))
		return errors.Errorf("%d files failed", failed)
	}

	logger.Successf("uwuified %d files", len(results))
	return nil
}

// 🔍 shouldIgnore checks a relative path against the ignore patterns
func shouldIgnore(ctx context.Context, patterns []string, path string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zerolog.Ctx(ctx).Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}

func transformFile(t *uwu.Transformer, root, dest, rel string) log.FileResult {
	res := log.FileResult{Path: rel}
	fail := func(err error) log.FileResult {
		res.IsFailed = true
		res.Status = "FAILED"
		res.Err = err
		return res
	}

	in, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return fail(errors.Errorf("reading %s: %w", rel, err))
	}

	out := transformLines(t, string(in))
	res.Lines = strings.Count(out, "\n")
	if !strings.HasSuffix(out, "\n") && out != "" {
		res.Lines++
	}

	target := filepath.Join(dest, filepath.FromSlash(rel))
	prev, err := os.ReadFile(target)
	switch {
	case os.IsNotExist(err):
		res.IsNew = true
		res.Status = "NEW"
	case err != nil:
		return fail(errors.Errorf("reading %s: %w", target, err))
	case bytes.Equal(prev, []byte(out)):
		res.Status = "no change"
		return res
	default:
		res.IsChanged = true
		res.Status = "UPDATED"
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fail(errors.Errorf("creating %s: %w", filepath.Dir(target), err))
	}
	if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
		return fail(errors.Errorf("writing %s: %w", target, err))
	}

	return res
}

// transformLines applies the transform to each line, keeping line breaks
func transformLines(t *uwu.Transformer, content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimRight(strings.TrimSuffix(line, "\r"), " \t")
		body := strings.TrimLeft(line, " \t")
		// indentation is kept; ApplyRules trims the rest
		lines[i] = line[:len(line)-len(body)] + t.ApplyRules(body)
	}
	return strings.Join(lines, "\n")
}
