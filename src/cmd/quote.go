package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"QuickTech-Backend/src/quote"
)

var quoteAPI string

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Fill in the quick-quote wizard from the terminal",
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteAPI, "api", "http://localhost:8888", "API base URL")
}

var stepPrompts = map[int][]string{
	quote.StepName:    {"Name"},
	quote.StepEmail:   {"Email"},
	quote.StepService: {"Service", "Budget"},
}

func runQuote(cmd *cobra.Command, _ []string) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	w := quote.NewWizard()
	poster := quote.NewHTTPPoster(quoteAPI)
	setters := map[string]func(string){
		"Name":    w.SetName,
		"Email":   w.SetEmail,
		"Service": w.SetService,
		"Budget":  w.SetBudget,
	}

	for {
		fmt.Fprintf(out, "Step %d of 3 (type \"back\" to go back)\n", w.Step())
		back := false
		for _, label := range stepPrompts[w.Step()] {
			v, err := prompt(in, out, label)
			if err != nil {
				return err
			}
			if v == "back" {
				back = true
				break
			}
			setters[label](v)
		}
		if back {
			w.Back()
			continue
		}

		if w.Step() < quote.StepService {
			if err := w.Next(); err != nil {
				printValidation(out, err)
			}
			continue
		}

		err := w.Submit(cmd.Context(), poster)
		for err != nil && !isValidation(err) {
			// the wizard keeps every answer, so a retry re-posts without prompting again
			printValidation(out, err)
			ans, perr := prompt(in, out, "Retry? [y/N]")
			if perr != nil || !strings.EqualFold(ans, "y") {
				return err
			}
			err = w.Submit(cmd.Context(), poster)
		}
		if err == nil {
			fmt.Fprintln(out, "Thanks! We'll get back to you with a quote soon.")
			return nil
		}
		printValidation(out, err)
	}
}

func isValidation(err error) bool {
	var verr *quote.ValidationError
	return errors.As(err, &verr)
}

func prompt(in *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func printValidation(out io.Writer, err error) {
	var verr *quote.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(out, "  ! %s\n", fe.Message)
		}
		return
	}
	fmt.Fprintf(out, "  ! %v\n", err)
}
