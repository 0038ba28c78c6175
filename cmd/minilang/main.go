// minilang - MiniLang front-end checker
//
// Parses and validates MiniLang source files, with flags to inspect
// the token stream and the syntax tree.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/kolkov/minilang"
	"github.com/kolkov/minilang/ast"
	"github.com/kolkov/minilang/internal/lexer"
	"github.com/kolkov/minilang/token"
)

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

func main() {
	app := &cli.App{
		Name:    "minilang",
		Usage:   "MiniLang parser and validator",
		Version: minilang.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "print the syntax tree in source form",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the raw syntax tree nodes",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "print the token stream and exit",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	file := c.Args().First()
	if file == "" {
		return cli.Exit("usage: minilang [flags] file", 1)
	}

	src, err := os.ReadFile(file)
	if err != nil {
		tracerr.PrintSourceColor(tracerr.Wrap(err))
		os.Exit(1)
	}

	if c.Bool("tokens") {
		return printTokens(src, file)
	}

	prog, err := minilang.ParseBytes(src, &minilang.Options{Filename: file})
	if err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, issue := range prog.Issues() {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", issue)
	}

	if c.Bool("dump") {
		repr.Println(prog.AST())
		return nil
	}
	if c.Bool("ast") {
		fmt.Print(ast.Sprint(prog.AST()))
		return nil
	}

	if err := prog.Validate(); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := prog.Summary()
	okColor.Fprintf(os.Stdout, "%s: ok", file)
	fmt.Printf(" (%d consts, %d vars, %d subroutines, %d statements)\n",
		s.Consts, s.Vars, s.Subroutines, s.Statements)
	return nil
}

// printTokens scans the whole file and lists one token per line.
// Lexical issues are appended as warnings; they never stop the scan.
func printTokens(src []byte, file string) error {
	l := lexer.NewFile(src, file)
	for {
		tok := l.Scan()
		fmt.Printf("%s\t%s", tok.Pos, tok.Type)
		if tok.Value != "" {
			fmt.Printf("\t%q", tok.Value)
		}
		fmt.Println()
		if tok.Type == token.EOF {
			break
		}
	}
	for _, issue := range l.Issues() {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", issue)
	}
	return nil
}
