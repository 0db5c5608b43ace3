/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glottolab/lineate"
	"github.com/glottolab/lineate/common"
	"github.com/glottolab/lineate/reader"
	"github.com/glottolab/lineate/xycut"
)

var analyzeOpts struct {
	reader   string
	analyzer string
	gzip     bool
	debug    bool
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze <infile> <outfile>",
	Short:   "Analyze the document structure of text in a PDF extraction",
	Example: "  lineate analyze --reader tetml --analyzer=xycut in.xml out.txt",
	Args:    cobra.ExactArgs(2),
	RunE:    runAnalyze,
}

func init() {
	flags := analyzeCmd.Flags()
	flags.StringVarP(&analyzeOpts.reader, "reader", "r", "tetml",
		"input format: tetml or pdfminer")
	flags.StringVarP(&analyzeOpts.analyzer, "analyzer", "a", "xycut",
		"layout analyzer")
	flags.BoolVarP(&analyzeOpts.gzip, "gzip", "z", false,
		"gzip output file")
	flags.BoolVar(&analyzeOpts.debug, "debug", false,
		"write per-page debugging visualizations")
	_ = viper.BindPFlag("reader", flags.Lookup("reader"))
	_ = viper.BindPFlag("analyzer", flags.Lookup("analyzer"))
	_ = viper.BindPFlag("gzip", flags.Lookup("gzip"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	infile, outfile := args[0], args[1]
	format := viper.GetString("reader")
	if name := viper.GetString("analyzer"); name != "xycut" {
		return errors.Errorf("unknown analyzer %q", name)
	}

	r, err := reader.Open(format, infile)
	if err != nil {
		return err
	}

	common.Log.Infof("analyzing %s", infile)
	analyzer := &xycut.Analyzer{}
	if analyzeOpts.debug {
		analyzer.DebugDir = filepath.Dir(outfile)
	}
	doc := analyzer.Analyze(r, lineate.DocIDFromPath(infile))
	fd := lineate.Serialize(doc)

	if viper.GetBool("gzip") && !strings.HasSuffix(outfile, ".gz") {
		outfile += ".gz"
	}
	if dir := filepath.Dir(outfile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %q", dir)
		}
	}
	return fd.WriteFile(outfile)
}
