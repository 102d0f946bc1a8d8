/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blacktop/igpost/internal/igpost"
	"github.com/blacktop/igpost/internal/imageprobe"
	"github.com/blacktop/igpost/internal/instagram"
	"github.com/blacktop/igpost/internal/logutil"
	"github.com/blacktop/igpost/internal/slideshow"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	captionFlag  string
	imageFlags   []string
	locationFlag string
	verbose      bool
	dryRun       bool
)

const postURLFormat = "https://www.instagram.com/p/%s/"

// newPublisher builds the live pipeline; tests swap it for a fake.
var newPublisher = func(fs afero.Fs, validator *slideshow.Validator) (igpost.Publisher, error) {
	cfg, err := instagram.LoadConfig()
	if err != nil {
		return nil, err
	}
	client := instagram.New(cfg, fs)
	return slideshow.NewService(
		validator,
		slideshow.NewOrchestrator(client),
		slideshow.NewComposer(client, client),
	), nil
}

// Execute runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "igpost [flags] IMAGE...",
		Short: "Publish an image slideshow to Instagram",
		Long: "igpost uploads 2 to 10 JPEG images and publishes them as a single carousel post. " +
			"Images that fail to upload are skipped; the rest are still published in order.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
		Example: `  igpost -m "weekend" ./a.jpg ./b.jpg ./c.jpg
  igpost --image a.jpg --image b.jpg --location "Central Park"
  echo "caption from stdin" | igpost a.jpg b.jpg --dry-run`,
	}

	cmd.Flags().StringVarP(&captionFlag, "caption", "m", "", "Caption text for the post")
	cmd.Flags().StringArrayVar(&imageFlags, "image", nil, "Path to an image to include (repeatable)")
	cmd.Flags().StringVarP(&locationFlag, "location", "l", "", "Place name to geotag the post with")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate images and print the plan without posting")
	cmd.Flags().SortFlags = false

	cmd.AddCommand(newCompletionCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logutil.SetVerbose(verbose)

	caption, err := resolveCaption(cmd)
	if err != nil {
		return err
	}

	images := append(append([]string(nil), imageFlags...), args...)

	if err := loadDotEnv(); err != nil {
		return err
	}

	limits, err := slideshow.LoadLimits()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	validator := slideshow.NewValidator(fs, imageprobe.New(fs), limits)

	req := igpost.Request{
		Images:   images,
		Caption:  caption,
		Location: strings.TrimSpace(locationFlag),
		Verbose:  verbose,
	}

	if dryRun {
		return plan(validator, req, cmd.OutOrStdout())
	}

	if err := validator.ValidateCount(len(images)); err != nil {
		return err
	}

	publisher, err := newPublisher(fs, validator)
	if err != nil {
		return err
	}

	return dispatch(ctx, publisher, req, cmd.OutOrStdout())
}

// loadDotEnv reads .env files into the environment. A missing file is fine; a malformed one is not.
func loadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func resolveCaption(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("caption") {
		return strings.TrimSpace(captionFlag), nil
	}

	stdin := cmd.InOrStdin()
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return "", nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func plan(validator *slideshow.Validator, req igpost.Request, out io.Writer) error {
	validated, err := validator.Validate(req.Images, req.Caption)
	if err != nil {
		return err
	}
	for idx, img := range validated {
		fmt.Fprintf(out, "[dry-run] %d: %s (%s %dx%d)\n", idx+1, img.Path, img.Format, img.Width, img.Height)
	}
	fmt.Fprintf(out, "[dry-run] caption: %q\n", req.Caption)
	if req.Location != "" {
		fmt.Fprintf(out, "[dry-run] location: %q\n", req.Location)
	}
	return nil
}

func dispatch(ctx context.Context, publisher igpost.Publisher, req igpost.Request, out io.Writer) error {
	fmt.Fprintf(out, "publishing slideshow of %d images to %s...\n", len(req.Images), publisher.Name())

	result, err := publisher.CreateImageSlideshow(ctx, req)
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(out, "skipped: %s\n", failure.Message)
	}

	if !result.Succeeded {
		return errors.New("slideshow was not published")
	}

	fmt.Fprintf(out, "published "+postURLFormat+"\n", result.Code)
	return nil
}
