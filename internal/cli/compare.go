package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panjuncai/Sola-sub000/internal/service/cloze"
	"github.com/panjuncai/Sola-sub000/internal/transport/rest"
)

// ErrIncorrect is returned by compare --strict when the attempt is wrong.
var ErrIncorrect = errors.New("attempt is incorrect")

func newCompareCmd() *cobra.Command {
	var (
		lang    string
		asJSON  bool
		exitBad bool
	)

	cmd := &cobra.Command{
		Use:   "compare EXPECTED ATTEMPT",
		Short: "Compare an attempt with the expected sentence",
		Example: `  cloze compare "The cat sat on the mat." "the cat sit on mat"
  cloze compare --lang zh "我是学生。" "我是老生" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			res, err := svc.Compare(cmd.Context(), cloze.CompareInput{
				Expected: args[0],
				Attempt:  args[1],
				Language: lang,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(rest.NewResultResponse(*res)); err != nil {
					return err
				}
			} else {
				verdict := "incorrect"
				if res.Correct {
					verdict = "correct"
				}
				fmt.Fprintln(out, verdict)
				fmt.Fprintln(out, Render(res.Segments))
			}

			if exitBad && !res.Correct {
				return ErrIncorrect
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Language tag of the text (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&exitBad, "strict", false, "Exit non-zero when the attempt is incorrect")

	return cmd
}
