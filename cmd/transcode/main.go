// Copyright 2025 The go-encoding Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Transcode converts files or standard input between legacy character
// encodings and UTF-8, in the manner of iconv:
//
//	transcode --from shift-jis --jis0208 index-jis0208.txt legacy.txt
//	transcode --to windows-1252 -o out.txt in.txt
//
// The JIS X 0208/0212 tables are loaded from WHATWG-style index files when
// a Japanese encoding is requested.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	encoding "github.com/michaelsproul/go-encoding"
	_ "github.com/michaelsproul/go-encoding/charmap"
	"github.com/michaelsproul/go-encoding/japanese"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	from    string
	to      string
	output  string
	jis0208 string
	jis0212 string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "transcode [file]",
		Short:         "Convert text between legacy encodings and UTF-8",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.from, "from", "f", "utf-8", "encoding of the input")
	cmd.Flags().StringVarP(&opts.to, "to", "t", "utf-8", "encoding of the output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default standard output)")
	cmd.Flags().StringVar(&opts.jis0208, "jis0208", "", "WHATWG index file for JIS X 0208")
	cmd.Flags().StringVar(&opts.jis0212, "jis0212", "", "WHATWG index file for JIS X 0212")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log conversion details")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync()

	if err := registerJapanese(opts, logger); err != nil {
		return err
	}
	from, err := resolve(opts.from)
	if err != nil {
		return err
	}
	to, err := resolve(opts.to)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	r := in
	if from != nil {
		r = encoding.NewReader(in, from.NewDecoder())
	}
	w := out
	var cw *encoding.Writer
	if to != nil {
		cw = encoding.NewWriter(out, to.NewEncoder())
		w = cw
	}

	n, err := io.Copy(w, r)
	if err != nil {
		return fmt.Errorf("transcode: %w", err)
	}
	if cw != nil {
		if err := cw.Close(); err != nil {
			return fmt.Errorf("transcode: %w", err)
		}
	}
	logger.Info("conversion complete",
		zap.String("from", opts.from),
		zap.String("to", opts.to),
		zap.Int64("utf8_bytes", n))
	return nil
}

// resolve maps a label to an Encoding; nil means UTF-8 passthrough.
func resolve(label string) (encoding.Encoding, error) {
	switch label {
	case "utf-8", "utf8", "UTF-8":
		return nil, nil
	}
	enc := encoding.Lookup(label)
	if enc == nil {
		return nil, fmt.Errorf("transcode: unknown encoding %q", label)
	}
	return enc, nil
}

// registerJapanese loads the JIS index files, if given, and registers the
// EUC-JP and Shift JIS encodings built on them.
func registerJapanese(opts *options, logger *zap.Logger) error {
	if opts.jis0208 == "" {
		return nil
	}
	jis0208, err := loadIndex(opts.jis0208)
	if err != nil {
		return err
	}
	jis0212 := &japanese.MatrixTable{}
	if opts.jis0212 != "" {
		if jis0212, err = loadIndex(opts.jis0212); err != nil {
			return err
		}
	}
	logger.Debug("JIS tables loaded",
		zap.String("jis0208", opts.jis0208),
		zap.String("jis0212", opts.jis0212))
	encoding.Register(japanese.NewEUCJP(jis0208, jis0212), "euc-jp", "eucjp")
	encoding.Register(japanese.NewShiftJIS(jis0208), "shift-jis", "shift_jis", "sjis", "ms_kanji", "windows-31j")
	return nil
}

func loadIndex(path string) (*japanese.MatrixTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := japanese.ParseIndex(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
