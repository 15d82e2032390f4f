// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tagmatch selects the best available language tag for a request.
//
// Usage:
//
//	tagmatch command [arguments]
//
// The commands are:
//
//	match       select the best candidate for a single language tag
//	accept      select the best candidate for an Accept-Language header
//
// Use "tagmatch help [command]" for more information about a command.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// A Command is an implementation of a tagmatch command.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'tagmatch help' output.
	Short string

	// Long is the long message shown in the 'tagmatch help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// Usage prints the usage of c and exits.
func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: tagmatch %s\n\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "%s\n", strings.TrimSpace(c.Long))
	c.Flag.SetOutput(os.Stderr)
	c.Flag.PrintDefaults()
	os.Exit(2)
}

// Commands lists the available commands and help topics.
// The order here is the order in which they are printed by 'tagmatch help'.
var commands = []*Command{
	cmdMatch,
	cmdAccept,
}

// errNoMatch is returned by a command when no candidate was selected.
var errNoMatch = errors.New("no match")

// Flags shared by all commands.
var (
	configFile string
	verbose    bool
)

// out receives the selected candidates.
var out io.Writer = os.Stdout

func init() {
	for _, c := range commands {
		c.Flag.StringVar(&configFile, "config", "", "YAML `file` with the matcher configuration")
		c.Flag.BoolVar(&verbose, "v", false, "log matching decisions")
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
	}
	if args[0] == "help" {
		help(args[1:])
		return
	}

	for _, cmd := range commands {
		if cmd.Name() != args[0] {
			continue
		}
		cmd.Flag.Usage = cmd.Usage
		cmd.Flag.Parse(args[1:])
		err := cmd.Run(cmd, cmd.Flag.Args())
		switch {
		case errors.Is(err, errNoMatch):
			os.Exit(1)
		case err != nil:
			fmt.Fprintf(os.Stderr, "tagmatch: %v\n", err)
			os.Exit(2)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "tagmatch: unknown subcommand %q\nRun 'tagmatch help' for usage.\n", args[0])
	os.Exit(2)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, "Tagmatch selects the best available language tag for a request.\n\n")
	fmt.Fprint(w, "Usage:\n\n\ttagmatch command [arguments]\n\nThe commands are:\n\n")
	for _, c := range commands {
		fmt.Fprintf(w, "\t%-11s %s\n", c.Name(), c.Short)
	}
	fmt.Fprint(w, "\nUse \"tagmatch help [command]\" for more information about a command.\n")
}

// help implements the 'help' command.
func help(args []string) {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: tagmatch help command\n\nToo many arguments given.\n")
		os.Exit(2)
	}
	for _, c := range commands {
		if c.Name() == args[0] {
			fmt.Printf("usage: tagmatch %s\n\n%s\n", c.UsageLine, strings.TrimSpace(c.Long))
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Unknown help topic %#q. Run 'tagmatch help'.\n", args[0])
	os.Exit(2)
}
