package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/panjuncai/Sola-sub000/internal/service/cloze"
)

func newSplitCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split article text into practice sentences, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var r io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open %s: %w", file, err)
				}
				defer f.Close()
				r = f
			}

			text, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			sentences, err := svc.SplitSentences(cmd.Context(), cloze.SplitInput{Text: string(text)})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range sentences {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from file instead of stdin")

	return cmd
}
