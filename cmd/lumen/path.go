package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/pathutil"
)

// path is a debug helper exposing the resolver primitives, handy when
// chasing why two spellings of a file did or did not collapse to one entry.
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Inspect path normalization and root classification",
}

var pathRootCmd = &cobra.Command{
	Use:   "root <path>",
	Short: "Print the root prefix of a path",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		p := pathutil.NormalizeSlashes(args[0])
		n := pathutil.RootLength(p)
		fmt.Printf("root length: %d\n", n)
		fmt.Printf("root:        %q\n", p[:n])
		fmt.Printf("rooted:      %v (url: %v)\n", pathutil.IsRooted(p), pathutil.IsURL(p))
	},
}

var pathNormalizeCmd = &cobra.Command{
	Use:   "normalize <path>...",
	Short: "Print paths in canonical form",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		for _, a := range args {
			fmt.Println(pathutil.Normalize(a))
		}
	},
}

var pathRelativeCmd = &cobra.Command{
	Use:   "relative <dir> <target>",
	Short: "Print target relative to dir",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		canon := pathutil.Identity
		if fold, _ := cmd.Flags().GetBool("fold-case"); fold {
			canon = pathutil.Fold
		}
		asURL, _ := cmd.Flags().GetBool("url")
		rel := pathutil.RelativeTo(args[0], args[1], pathutil.NormalizeSlashes(cwd), canon, asURL)
		fmt.Println(rel)
		return nil
	},
}

var pathComponentsCmd = &cobra.Command{
	Use:   "components <path>",
	Short: "Print the resolved component array of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		parts := pathutil.Components(args[0], pathutil.NormalizeSlashes(cwd))
		fmt.Printf("[%s]\n", strings.Join(quoteAll(parts), ", "))
		return nil
	},
}

func quoteAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = fmt.Sprintf("%q", p)
	}
	return out
}

func init() {
	pathRelativeCmd.Flags().Bool("fold-case", false, "compare components case-insensitively")
	pathRelativeCmd.Flags().Bool("url", false, "prefix disk-rooted fallbacks with file:///")
	pathCmd.AddCommand(pathRootCmd)
	pathCmd.AddCommand(pathNormalizeCmd)
	pathCmd.AddCommand(pathRelativeCmd)
	pathCmd.AddCommand(pathComponentsCmd)
}
