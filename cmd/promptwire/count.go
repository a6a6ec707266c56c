package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// countCmd prints the token count of the prompt.
var countCmd = &cobra.Command{
	Use:   "count [prompt...]",
	Short: "Count prompt tokens",
	Long: `Count the tokens of a prompt using the tiktoken encoding selected by
--model or --encoding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt, err := readPrompt(args)
		if err != nil {
			return err
		}
		tok, err := tokenizer()
		if err != nil {
			return err
		}
		n, err := tok.Count(prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
