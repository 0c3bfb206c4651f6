// Command xscgen drives the GLSL backend over built-in sample shaders.
//
// The HLSL front end is not part of this module, so the tool operates on
// embedded, already-analyzed sample programs. It exists to exercise the
// generator's full option surface from the command line.
//
// Usage:
//
//	xscgen [options]
//
// Examples:
//
//	xscgen -demo passthrough                  # vertex demo to stdout
//	xscgen -demo clip -version 420 -o f.glsl  # fragment demo to a file
//	xscgen -demo compute -stats               # compute demo with reflection
//	xscgen -profile shader.toml               # options from a TOML profile
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/gogpu/xsc"
	"github.com/gogpu/xsc/ast"
	"github.com/gogpu/xsc/glsl"
	"github.com/gogpu/xsc/report"
)

var (
	demo         = flag.String("demo", "passthrough", "built-in program: passthrough, clip, compute")
	target       = flag.String("target", "", "shader stage: vertex, fragment, compute (default: the demo's stage)")
	version      = flag.Int("version", 330, "GLSL version to emit, e.g. 330 or 450")
	entry        = flag.String("entry", "", "entry-point function name (default: the program's entry)")
	output       = flag.String("o", "", "output file (default: stdout)")
	profilePath  = flag.String("profile", "", "TOML profile overriding the other flags")
	prefix       = flag.String("prefix", "xsc_", "prefix for generator-synthesized identifiers")
	lineMarks    = flag.Bool("line-marks", false, "emit #line directives for HLSL source rows")
	noExtensions = flag.Bool("no-extensions", false, "report missing features instead of enabling extensions")
	stats        = flag.Bool("stats", false, "print texture binding reflection")
	quiet        = flag.Bool("quiet", false, "suppress diagnostics and the summary")
)

var (
	infoStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	infoColorFG = pterm.FgLightGreen
	warnStyleBG = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG = pterm.FgYellow
	errStyleBG  = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errColorFG  = pterm.FgRed
)

// config is the effective generation configuration after folding a TOML
// profile over the command-line flags.
type config struct {
	demo            string
	target          string
	version         int
	entry           string
	output          string
	prefix          string
	lineMarks       bool
	allowExtensions bool
}

// tomlProfile is a generation profile as it is encoded in TOML. Set
// fields override the corresponding command-line flags.
type tomlProfile struct {
	Target          string  `toml:"target,omitempty"`
	Version         int     `toml:"version,omitempty"`
	Entry           string  `toml:"entry,omitempty"`
	Prefix          *string `toml:"prefix"`
	LineMarks       *bool   `toml:"line_marks"`
	AllowExtensions *bool   `toml:"allow_extensions"`
	Output          string  `toml:"output,omitempty"`
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := &config{
		demo:            *demo,
		target:          *target,
		version:         *version,
		entry:           *entry,
		output:          *output,
		prefix:          *prefix,
		lineMarks:       *lineMarks,
		allowExtensions: !*noExtensions,
	}
	if *profilePath != "" {
		if err := loadProfile(*profilePath, cfg); err != nil {
			fail(err)
		}
	}

	program, stage, err := buildDemo(cfg.demo)
	if err != nil {
		fail(err)
	}
	if cfg.target != "" {
		stage, err = parseTarget(cfg.target)
		if err != nil {
			fail(err)
		}
	}

	opts := glsl.DefaultOptions()
	opts.Prefix = cfg.prefix
	opts.LineMarks = cfg.lineMarks
	opts.AllowExtensions = cfg.allowExtensions

	var st *glsl.Statistics
	if *stats {
		st = &glsl.Statistics{}
	}

	var sb strings.Builder
	log := &consoleLog{quiet: *quiet}
	in := glsl.ShaderInput{Program: program, Target: stage, EntryPoint: cfg.entry}
	out := glsl.ShaderOutput{Sink: &sb, Version: glsl.Version(cfg.version), Options: opts, Stats: st}

	if err := xsc.Translate(in, out, log); err != nil {
		fail(err)
	}
	source := sb.String()

	dest := "stdout"
	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, []byte(source), 0644); err != nil {
			fail(errors.Wrap(err, "writing output"))
		}
		dest = cfg.output
	} else {
		fmt.Print(source)
	}

	if *quiet {
		return
	}
	if n := log.NumWarnings(); n > 0 {
		warnStyleBG.Print(" WARN ")
		warnColorFG.Println(fmt.Sprintf(" %d warning(s)", n))
	}
	infoStyleBG.Print(" DONE ")
	infoColorFG.Println(fmt.Sprintf(" %s shader, GLSL %d, %d bytes -> %s", stage, cfg.version, len(source), dest))
	if st != nil {
		printStats(st)
	}
}

// consoleLog forwards every report to the terminal while keeping the
// counts the summary prints.
type consoleLog struct {
	report.Collector
	quiet bool
}

func (l *consoleLog) Submit(r *report.Report) {
	l.Collector.Submit(r)
	if !l.quiet {
		report.Console{}.Submit(r)
	}
}

// loadProfile reads a TOML profile and folds its set fields over the
// flag-derived configuration.
func loadProfile(path string, cfg *config) error {
	buff, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading profile")
	}
	tp := &tomlProfile{}
	if err := toml.Unmarshal(buff, tp); err != nil {
		return errors.Wrapf(err, "parsing profile %s", path)
	}

	if tp.Target != "" {
		cfg.target = tp.Target
	}
	if tp.Version != 0 {
		cfg.version = tp.Version
	}
	if tp.Entry != "" {
		cfg.entry = tp.Entry
	}
	if tp.Prefix != nil {
		cfg.prefix = *tp.Prefix
	}
	if tp.LineMarks != nil {
		cfg.lineMarks = *tp.LineMarks
	}
	if tp.AllowExtensions != nil {
		cfg.allowExtensions = *tp.AllowExtensions
	}
	if tp.Output != "" {
		cfg.output = tp.Output
	}
	return nil
}

// parseTarget maps a stage name to its target constant.
func parseTarget(s string) (ast.ShaderTarget, error) {
	switch strings.ToLower(s) {
	case "vertex":
		return ast.TargetVertexShader, nil
	case "fragment", "pixel":
		return ast.TargetFragmentShader, nil
	case "geometry":
		return ast.TargetGeometryShader, nil
	case "compute":
		return ast.TargetComputeShader, nil
	default:
		return ast.TargetUndefined, errors.Errorf("unknown shader target %q", s)
	}
}

// printStats lists the texture uniforms the generator wrote.
func printStats(st *glsl.Statistics) {
	for _, tr := range st.Textures {
		binding := "no binding"
		if tr.Binding >= 0 {
			binding = fmt.Sprintf("binding = %d", tr.Binding)
		}
		infoStyleBG.Print(" TEX ")
		infoColorFG.Println(" " + tr.Ident + " (" + binding + ")")
	}
}

// fail prints a styled error and exits.
func fail(err error) {
	errStyleBG.Print(" ERROR ")
	errColorFG.Println(" " + err.Error())
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: xscgen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  xscgen -demo passthrough                 Vertex demo to stdout\n")
	fmt.Fprintf(os.Stderr, "  xscgen -demo clip -version 420 -o f.glsl Fragment demo to a file\n")
	fmt.Fprintf(os.Stderr, "  xscgen -demo compute -stats              Compute demo with reflection\n")
	fmt.Fprintf(os.Stderr, "  xscgen -profile shader.toml              Options from a TOML profile\n")
}
