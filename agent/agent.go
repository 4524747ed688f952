// Package agent implements the interactive assistant: a facilitator model
// that consults a team of experts (market surveyor, ledger registrar) to
// answer questions about the user's fractional holdings.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent holds the chat session between the user and the facilitator.
type Agent struct {
	out         io.Writer
	in          *bufio.Scanner
	facilitator *Expert
	experts     []*Expert
}

// New returns an agent writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		out:         w,
		in:          bufio.NewScanner(r),
		facilitator: newFacilitator(experts...),
		experts:     experts,
	}
}

// Start opens a chat for the facilitator and every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.facilitator.Start(ctx, client)
}

// Run drives the conversation. The given prompts are submitted first, then
// input is read line by line until "bye" or EOF.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, "Welcome to abc assist. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.out, "assist> ")

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			fmt.Fprintln(a.out, input)
		} else if a.in.Scan() {
			input = strings.TrimSpace(a.in.Text())
		} else {
			return a.in.Err() // nil on a plain EOF
		}

		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, answer.Parts[0].Text)
	}
}
