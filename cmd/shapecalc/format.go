package main

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// output writes a successful result in the configured format.
func (a *app) output(res CLIResult) error {
	if a.format == "json" {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return a.outputError(res.Command, err)
		}
		return nil
	}

	p := message.NewPrinter(a.cfg.Language())
	if res.Area != nil {
		p.Fprintf(a.stdout, "area: %v\n", number.Decimal(*res.Area, number.Scale(a.cfg.Precision)))
	}
	if res.Right != nil {
		fmt.Fprintf(a.stdout, "right: %t\n", *res.Right)
	}
	return nil
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func (a *app) outputError(command string, err error) error {
	a.errorHandled = true
	if a.format != "json" {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
		return err
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(CLIResult{Command: command, Error: err.Error()})
	return err
}
