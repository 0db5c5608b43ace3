/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/glottolab/lineate/textimport"
)

var textOpts struct {
	igtFile  string
	encoding string
}

var textCmd = &cobra.Command{
	Use:     "text <infile> <outfile>",
	Short:   "Convert a plain text file to the serialized block format",
	Example: "  lineate text in.txt out.txt --igtfile=igts.txt --encoding=latin1",
	Args:    cobra.ExactArgs(2),
	RunE:    runText,
}

func init() {
	flags := textCmd.Flags()
	flags.StringVar(&textOpts.igtFile, "igtfile", "",
		"plain text file containing IGT span info")
	flags.StringVar(&textOpts.encoding, "encoding", "",
		"encoding of the input file (IANA name, default UTF-8)")
}

func runText(cmd *cobra.Command, args []string) error {
	infile, outfile := args[0], args[1]
	fd, err := textimport.ReadAndConvert(infile, textOpts.igtFile, textOpts.encoding)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(outfile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %q", dir)
		}
	}
	return fd.WriteFile(outfile)
}
