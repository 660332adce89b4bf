// Command rex exposes the thompson pipeline on the command line:
// parse a pattern to its derivation tree, compile it to an automaton
// state listing, or match words against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coregx/thompson"
)

var rootCmd = &cobra.Command{
	Use:   "rex",
	Short: "Thompson-construction regex toolbox",
	Long: "rex parses, compiles and matches patterns using the thompson\n" +
		"library. Matching is whole-word acceptance, not substring search.",
}

var parseCmd = &cobra.Command{
	Use:   "parse PATTERN",
	Short: "Print the derivation tree of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := thompson.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Print(tree.String())
		return nil
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile PATTERN",
	Short: "Print the state arena of the compiled automaton",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := thompson.Compile(args[0])
		if err != nil {
			return err
		}
		fmt.Print(n.String())
		return nil
	},
}

var flagPostfix bool

var matchCmd = &cobra.Command{
	Use:   "match PATTERN WORD...",
	Short: "Match words against a pattern",
	Long: "Match each WORD against PATTERN and report accept/reject per word.\n" +
		"Exits non-zero if any word is rejected.",
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			m   interface{ MatchString(string) bool }
			err error
		)
		if flagPostfix {
			m, err = thompson.CompilePostfix(args[0])
		} else {
			m, err = thompson.NewMatcher(args[0])
		}
		if err != nil {
			return err
		}

		rejected := false
		for _, word := range args[1:] {
			if m.MatchString(word) {
				fmt.Printf("accept\t%s\n", word)
			} else {
				fmt.Printf("reject\t%s\n", word)
				rejected = true
			}
		}
		if rejected {
			// Rejections are a result, not an error: exit silently.
			os.Exit(1)
		}
		return nil
	},
}

func main() {
	matchCmd.Flags().BoolVar(&flagPostfix, "postfix", false,
		"treat PATTERN as a postfix token stream ('.' concatenates)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(matchCmd)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(2)
	}
}
