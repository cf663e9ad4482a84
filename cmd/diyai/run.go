package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var runJSON bool

// runCmd processes the arguments as one turn and prints the reply. With
// --json the session snapshot is printed afterwards, which golden tests
// and shell automation consume.
var runCmd = &cobra.Command{
	Use:   "run [text...]",
	Short: "Process a single turn and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEngine(cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		reply := e.turn(strings.Join(args, " "))
		fmt.Printf("%s\n", reply.Text)
		fmt.Printf("confidence: %.2f\n", reply.Confidence)

		if runJSON {
			dump, err := e.dump()
			if err != nil {
				return err
			}
			fmt.Println(dump)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the session snapshot as JSON")
}
