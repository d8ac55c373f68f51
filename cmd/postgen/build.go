package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/eringen/postgen"
)

type buildOptions struct {
	title    string
	date     string
	image    string
	alt      string
	content  string
	outDir   string
	preview  bool
	maxWidth int
	now      func() time.Time
}

func buildCmd() *cobra.Command {
	opts := buildOptions{now: time.Now}

	c := &cobra.Command{
		Use:   "build",
		Short: "Generate a post from the command line",
		Long:  "Generate <slug>.html from a title, a content file and an optional image.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := runBuild(cmd, opts)
			if err != nil {
				if msg := postgen.UserMessage(err); msg != "" {
					log.Printf("build: %v", err)
					return errors.New(msg)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	c.Flags().StringVarP(&opts.title, "title", "t", "", "Post title (required)")
	c.Flags().StringVarP(&opts.date, "date", "d", "", "Publication date YYYY-MM-DD (default today)")
	c.Flags().StringVarP(&opts.image, "image", "i", "", "Hero image file to embed")
	c.Flags().StringVar(&opts.alt, "alt", "", "Hero image alt text")
	c.Flags().StringVarP(&opts.content, "content", "c", "-", "Content file, - reads stdin")
	c.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	c.Flags().BoolVar(&opts.preview, "preview", false, "Also print the generated HTML to stderr")
	c.Flags().IntVar(&opts.maxWidth, "max-width", 0, "Scale wider images down to this width")
	return c
}

// runBuild composes a post and writes it atomically, returning its path.
func runBuild(cmd *cobra.Command, opts buildOptions) (string, error) {
	content, err := readContent(cmd.InOrStdin(), opts.content)
	if err != nil {
		return "", err
	}

	composer := postgen.NewComposer(postgen.Config{MaxImageWidth: opts.maxWidth})
	composer.Now = opts.now
	if opts.preview {
		stderr := cmd.ErrOrStderr()
		composer.Preview = postgen.PreviewFunc(func(html string) {
			_, _ = io.WriteString(stderr, html)
		})
	}

	sub := postgen.Submission{
		Title:    opts.title,
		Date:     opts.date,
		ImageAlt: opts.alt,
		Content:  content,
	}
	if opts.image != "" {
		f, err := os.Open(opts.image)
		if err != nil {
			return "", fmt.Errorf("%w: %w", postgen.ErrImageRead, err)
		}
		defer f.Close()
		sub.Image = f
	}

	res, err := composer.Compose(cmd.Context(), sub)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opts.outDir, res.Filename)
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(res.HTML))); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func readContent(stdin io.Reader, name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(b), nil
}
