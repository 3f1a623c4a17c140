package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/texthuff/internal/textio"
)

const progName = "texthuff"
const usageMessageRaw = `
Usage: texthuff [OPTIONS] [SUBCOMMAND...]

Subcommands:
  self FILE
    Compress FILE using its own symbol frequencies, write FILE's stem
    with a .bin extension, then decompress that payload into the stem
    with a _decompressed.txt suffix.

  shared DICT FILE
    Compress FILE using the symbol frequencies of DICT, extended with
    any symbols of FILE that DICT lacks.  Both files are needed again to
    decompress.

With no subcommand, texthuff asks which of the two to run on standard input.

Options:
  -d, -debug         log debugging detail to standard error
  -bin-ext EXT       extension of compressed files (default .bin)
  -out-suffix SFX    suffix of decompressed files (default _decompressed.txt)
  -no-trim           keep trailing whitespace of input texts
`

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 64
)

var log = logging.MustGetLogger("texthuff")

var leveledLogBackend logging.LeveledBackend

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func startLogging(stderr io.Writer) {
	backend := logging.NewLogBackend(stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type command struct {
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	runner *textio.Runner
}

func (c *command) usageErrorf(detailFmt string, detailArgs ...interface{}) int {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(c.stderr, "%s: %s\n%s", progName, detail, usageMessage())
	return exitUsage
}

func (c *command) exitError(err error) int {
	fmt.Fprintf(c.stderr, "%s: %s\n", progName, err.Error())
	return exitError
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	startLogging(stderr)

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	var noTrim bool
	paths := textio.DefaultPaths
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&noTrim, "no-trim", false, "")
	ourFlags.StringVar(&paths.BinExt, "bin-ext", paths.BinExt, "")
	ourFlags.StringVar(&paths.OutSuffix, "out-suffix", paths.OutSuffix, "")

	c := &command{
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
	}

	argErr := ourFlags.Parse(args)
	if argErr == flag.ErrHelp {
		io.WriteString(stdout, usageMessage())
		return exitOK
	} else if argErr != nil {
		return c.usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	c.runner = textio.NewRunner(stdout)
	c.runner.Paths = paths
	c.runner.Trim = !noTrim

	rest := ourFlags.Args()
	if len(rest) == 0 {
		return c.interactive()
	}

	switch rest[0] {
	case "self":
		if len(rest) != 2 {
			return c.usageErrorf("self: expected FILE, got %d arguments", len(rest)-1)
		}
		return c.runSelf(rest[1])
	case "shared":
		if len(rest) != 3 {
			return c.usageErrorf("shared: expected DICT FILE, got %d arguments", len(rest)-1)
		}
		return c.runShared(rest[1], rest[2])
	default:
		return c.usageErrorf("bad subcommand \"%s\"", rest[0])
	}
}

func (c *command) interactive() int {
	fmt.Fprint(c.stdout, "Select one of the following:\n"+
		" 1. Regular compression of txt file\n"+
		" 2. Compression of a txt file using the frequency dictionary of another file\n")

	switch c.prompt("") {
	case "1":
		path := c.prompt("Input filepath of text file in directory: \n")
		return c.runSelf(path)
	case "2":
		dict := c.prompt("Input filepath of text file for frequency dictionary: \n")
		path := c.prompt("Input different language file path: \n")
		return c.runShared(dict, path)
	default:
		fmt.Fprintln(c.stdout, "invalid user input, input must be 1 or 2")
		return exitOK
	}
}

func (c *command) prompt(question string) string {
	fmt.Fprint(c.stdout, question)
	line, err := c.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		log.Warningf("failed to read standard input: %v", err)
	}
	return strings.TrimSpace(line)
}

func (c *command) runSelf(path string) int {
	log.Debugf("self mode: %s", path)
	report, err := c.runner.RunSelf(path)
	if err != nil {
		return c.exitError(err)
	}
	report.WriteTo(c.stdout)
	return exitOK
}

func (c *command) runShared(dict string, path string) int {
	log.Debugf("shared mode: dictionary %s, text %s", dict, path)
	report, err := c.runner.RunShared(dict, path)
	if err != nil {
		return c.exitError(err)
	}
	report.WriteTo(c.stdout)
	return exitOK
}
