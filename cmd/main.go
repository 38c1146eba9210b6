// Binary tuft renders a Mustache-subset template file against a
// JSON or YAML context file, with optional injected variables and
// custom delimiters.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/jaredev/tuft"
	"github.com/jaredev/tuft/inject"
	"github.com/jaredev/tuft/loader"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func main() {
	var (
		stampInfoFile arrayFlags
		set           arrayFlags
		template      string
		context       string
		output        string
		startTag      string
		endTag        string
	)

	flag.Var(
		&set,
		"set",
		"Context variable in NAME=VALUE format (repeatable)",
	)

	flag.Var(
		&stampInfoFile,
		"stamp_info_file",
		"Stamp info file path for {VAR} expansion (repeatable)",
	)

	flag.StringVar(
		&template, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.StringVar(
		&context, "context", "",
		"Context file path, JSON or YAML (empty context if unset)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&startTag, "start_tag", "{{",
		"Opening tag delimiter",
	)

	flag.StringVar(
		&endTag, "end_tag", "}}",
		"Closing tag delimiter",
	)

	flag.Parse()

	tpl, err := readTemplate(template)
	if err != nil {
		log.Fatal(err)
	}

	var ctx interface{}

	if context != "" {
		ctx, err = loader.FromFile(context)
		if err != nil {
			log.Fatal(err)
		}
	}

	in := inject.Injector{
		StampInfoFiles: stampInfoFile,
	}

	ctx, err = in.Apply(ctx, set)
	if err != nil {
		log.Fatal(err)
	}

	rendered, err := tuft.RenderWithOptions(
		string(tpl), ctx, tuft.Options{
			DelimOpen:  startTag,
			DelimClose: endTag,
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := writeOutput(output, rendered); err != nil {
		log.Fatal(err)
	}
}

// readTemplate reads the template from a file path, or from stdin
// when the path is empty.
func readTemplate(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path) //nolint:gosec // paths from CLI flags
}

// writeOutput writes the rendered text to a file path, or to
// stdout when the path is empty.
func writeOutput(path string, rendered string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, rendered)
		return err
	}

	return os.WriteFile(path, []byte(rendered), 0o666) //nolint:gosec // plain output file
}
