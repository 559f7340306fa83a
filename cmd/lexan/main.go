package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/lexan"
	"github.com/npillmayer/lexan/scanner"
	"github.com/npillmayer/lexan/scanner/lexmach"
	"github.com/npillmayer/lexan/symtab"
)

// main() reads a program text from the console, tokenizes it and prints the
// resulting tokens, lexical errors and the symbol table.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	skipComments := flag.Bool("skip-comments", false, "Do not print comment tokens")
	digest := flag.Bool("digest", false, "Print a fingerprint of the token sequence")
	ref := flag.Bool("ref", false, "Use the lexmachine reference tokenizer")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Lexical Analyzer")
	//
	lines, closer, err := lineInput()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	code := run(lines, options{skipComments: *skipComments, digest: *digest, ref: *ref})
	closer()
	os.Exit(code)
}

// options collects the command line flags relevant for a run.
type options struct {
	skipComments bool
	digest       bool
	ref          bool
}

// run reads the source text, tokenizes it and prints the results.
// It returns the process exit code.
func run(lines lineReader, opts options) int {
	pterm.Println("Please enter your code (enter an empty line to finish):")
	input, err := readSource(lines)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}
	if strings.TrimSpace(input) == "" {
		pterm.Info.Println("No code has been entered")
		return 0
	}
	tracer().Infof("read %d characters of input", len(input))
	//
	var tokenizer scanner.Tokenizer
	var analyzer *scanner.Analyzer
	var errs []error
	handler := func(e error) { errs = append(errs, e) }
	if opts.ref {
		tokenizer, err = referenceTokenizer(input)
		if err != nil {
			pterm.Error.Println(err.Error())
			return 1
		}
		tokenizer.SetErrorHandler(handler)
	} else {
		analyzer = scanner.NewAnalyzer(input,
			scanner.SkipComments(opts.skipComments),
			scanner.WithErrorHandler(handler))
		tokenizer = analyzer
	}
	tokens := scanner.ScanAll(tokenizer)
	printTokens(tokens, opts.skipComments)
	printErrors(errs)
	if analyzer != nil {
		printSymbolTable(analyzer.SymbolTable())
	}
	if opts.digest {
		d, err := scanner.Digest(tokens)
		if err != nil {
			pterm.Error.Println(err.Error())
			return 1
		}
		pterm.Info.Println("Digest " + d)
	}
	return 0
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// --- Input -----------------------------------------------------------------

// lineReader is satisfied by readline instances.
type lineReader interface {
	Readline() (string, error)
}

// lineInput selects readline for interactive use and a plain line scanner if
// input is piped.
func lineInput() (lineReader, func(), error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		repl, err := readline.New("lexan> ")
		if err != nil {
			return nil, nil, fmt.Errorf("cannot set up console input: %w", err)
		}
		return repl, func() { repl.Close() }, nil
	}
	return scannerLines{bufio.NewScanner(os.Stdin)}, func() {}, nil
}

type scannerLines struct {
	s *bufio.Scanner
}

func (sl scannerLines) Readline() (string, error) {
	if sl.s.Scan() {
		return sl.s.Text(), nil
	}
	if err := sl.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// readSource collects lines until a blank line or end of input.
func readSource(r lineReader) (string, error) {
	var lines []string
	for {
		line, err := r.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		} else if err != nil {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func referenceTokenizer(input string) (scanner.Tokenizer, error) {
	LM, err := lexmach.Lexer()
	if err != nil {
		return nil, err
	}
	return LM.Scanner(input)
}

// --- Output ----------------------------------------------------------------

func printTokens(tokens []lexan.Token, skipComments bool) {
	pterm.Println()
	pterm.Info.Println("Result")
	for _, token := range tokens {
		if skipComments && token.TokType() == scanner.Comment {
			continue // the reference tokenizer has no option for this
		}
		pterm.Println(scanner.TokenString(token))
	}
}

func printErrors(errs []error) {
	pterm.Println()
	if len(errs) == 0 {
		pterm.Info.Println("No lexical errors found!")
		return
	}
	pterm.Error.Println(fmt.Sprintf("Lexical Errors (%d):", len(errs)))
	for _, e := range errs {
		pterm.Println("  " + e.Error())
	}
}

func printSymbolTable(st *symtab.SymbolTable) {
	pterm.Println()
	pterm.Info.Println("Symbol Table")
	pterm.DefaultTable.WithHasHeader().WithData(symbolTableData(st)).Render()
}

// symbolTableData arranges the rows of a symbol table for display.
func symbolTableData(st *symtab.SymbolTable) pterm.TableData {
	data := pterm.TableData{
		{"Index", "Lexeme", "Token Type", "Address"},
	}
	st.Each(func(row symtab.Row) {
		data = append(data, []string{
			strconv.Itoa(row.Index),
			row.Lexeme,
			row.Kind.String(),
			strconv.Itoa(row.Address),
		})
	})
	return data
}
