// Command plcc is the embedder referenced throughout the core packages'
// docs: it owns file I/O, CLI argument handling, and host-binding
// registration — none of which the core itself knows about — and wires a
// source file through lexer -> parser -> analyzer, then dispatches to
// either the interpreter or the generator depending on the subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/brennacourt/plc/internal/analyzer"
	"github.com/brennacourt/plc/internal/ast"
	"github.com/brennacourt/plc/internal/astrepr"
	"github.com/brennacourt/plc/internal/debug"
	"github.com/brennacourt/plc/internal/environment"
	"github.com/brennacourt/plc/internal/generator"
	"github.com/brennacourt/plc/internal/interpreter"
	"github.com/brennacourt/plc/internal/lexer"
	"github.com/brennacourt/plc/internal/parser"
	"github.com/brennacourt/plc/internal/stdlib"
	"github.com/brennacourt/plc/internal/visualizer"
)

func main() {
	app := &cli.App{
		Name:  "plcc",
		Usage: "lex, parse, analyze, and run or emit a PLC source file",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "trace each pipeline stage on stderr"},
		},
		Before: func(c *cli.Context) error {
			debug.Enabled = c.Bool("debug")
			return nil
		},
		Commands: []*cli.Command{
			runCommand,
			emitCommand,
			treeCommand,
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(tracerr.Wrap(err))
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "interpret a source file and print main/0's result",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		src, err := parseAndAnalyze(c.Args().First())
		if err != nil {
			return tracerr.Wrap(err)
		}
		root := environment.NewScope(nil)
		if err := stdlib.Register(root); err != nil {
			return tracerr.Wrap(err)
		}
		result, err := interpreter.Run(src, root)
		if err != nil {
			return tracerr.Wrap(err)
		}
		fmt.Println(result)
		return nil
	},
}

var emitCommand = &cli.Command{
	Name:      "emit",
	Usage:     "generate the equivalent curly-brace target program",
	ArgsUsage: "<file>",
	Action: func(c *cli.Context) error {
		src, err := parseAndAnalyze(c.Args().First())
		if err != nil {
			return tracerr.Wrap(err)
		}
		out, err := generator.Generate(src)
		if err != nil {
			return tracerr.Wrap(err)
		}
		fmt.Println(out)
		return nil
	},
}

var treeCommand = &cli.Command{
	Name:      "tree",
	Usage:     "print the parsed AST",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "repr", Usage: "dump Go-syntax struct fields instead of an ASCII tree"},
		&cli.BoolFlag{Name: "analyze", Usage: "run the analyzer first, so resolved bindings show in the dump"},
	},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		src, err := readAndParse(path)
		if err != nil {
			return tracerr.Wrap(err)
		}
		if c.Bool("analyze") {
			root := environment.NewScope(nil)
			if err := stdlib.Register(root); err != nil {
				return tracerr.Wrap(err)
			}
			if err := analyzer.Analyze(src, root, environment.NewRegistry()); err != nil {
				return tracerr.Wrap(err)
			}
		}
		if c.Bool("repr") {
			astrepr.Dump(src)
			return nil
		}
		fmt.Println(visualizer.Render(src))
		return nil
	},
}

func readAndParse(path string) (*ast.Source, error) {
	if path == "" {
		return nil, fmt.Errorf("a source file path is required")
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Lex(string(contents))
	if err != nil {
		return nil, err
	}
	debug.Printf("plcc: lexed %d token(s) from %s", len(toks), path)
	return parser.Parse(toks)
}

func parseAndAnalyze(path string) (*ast.Source, error) {
	src, err := readAndParse(path)
	if err != nil {
		return nil, err
	}
	root := environment.NewScope(nil)
	if err := stdlib.Register(root); err != nil {
		return nil, err
	}
	if err := analyzer.Analyze(src, root, environment.NewRegistry()); err != nil {
		return nil, err
	}
	return src, nil
}
