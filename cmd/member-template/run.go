package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"member-template/internal/config"
	"member-template/internal/diagnostic"
	"member-template/internal/expand"
	"member-template/internal/model"
	"member-template/internal/resolve"
	"member-template/internal/variable"
)

// options holds parsed command-line flags.
type options struct {
	configPath    string
	source        string
	dir           string
	packages      []string
	typeFile      string
	variant       string
	template      string
	separator     string
	forceNewline  bool
	lineSeparator string
	logLevel      string
	output        string
	explain       bool
	dump          bool
	listVariants  bool
}

func (o *options) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.configPath, "config", "c", "", "path to a YAML config file")
	flagSet.StringVar(&o.source, "source", "", "where types come from: go or file")
	flagSet.StringVar(&o.dir, "dir", "", "directory Go packages are loaded from")
	flagSet.StringSliceVarP(&o.packages, "packages", "p", nil, "Go package patterns to load (default: .)")
	flagSet.StringVarP(&o.typeFile, "file", "f", "", "YAML or JSONC type description file (implies --source=file)")
	flagSet.StringVarP(&o.variant, "variant", "v", "", "template variable: enclosing_bean_fields, enclosed_bean_fields, enclosed_fields")
	flagSet.StringVarP(&o.template, "template", "t", "", "line template, e.g. '${name}: ${getter}'")
	flagSet.StringVarP(&o.separator, "separator", "s", "", "text placed between lines; may use ${newline}")
	flagSet.BoolVar(&o.forceNewline, "force-newline", false, "prefix the separator with a line break (enclosing_bean_fields)")
	flagSet.StringVar(&o.lineSeparator, "line-separator", "", "line break text: platform, lf or crlf")
	flagSet.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.StringVarP(&o.output, "output", "o", "", "write the result to this file instead of stdout")
	flagSet.BoolVar(&o.explain, "explain", false, "report fields left out of the bean mapping")
	flagSet.BoolVar(&o.dump, "dump", false, "dump the resolved members to stderr")
	flagSet.BoolVar(&o.listVariants, "list-variants", false, "list template variables and exit")
	flagSet.BoolP("help", "h", false, "show help")
}

// apply overrides cfg with the flags that were set.
func (o *options) apply(flagSet *pflag.FlagSet, cfg *config.Config) {
	if flagSet.Changed("source") {
		cfg.Source = o.source
	}

	if flagSet.Changed("dir") {
		cfg.Dir = o.dir
	}

	if flagSet.Changed("packages") {
		cfg.Packages = o.packages
	}

	if flagSet.Changed("file") {
		cfg.TypeFile = o.typeFile
		if !flagSet.Changed("source") {
			cfg.Source = config.SourceFile
		}
	}

	if flagSet.Changed("variant") {
		cfg.Variant = o.variant
	}

	if flagSet.Changed("template") {
		cfg.Template = o.template
	}

	if flagSet.Changed("separator") {
		cfg.Separator = o.separator
	}

	if flagSet.Changed("force-newline") {
		cfg.ForceNewline = o.forceNewline
	}

	if flagSet.Changed("line-separator") {
		cfg.LineSeparator = o.lineSeparator
	}

	if flagSet.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("member-template", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	opts.addFlags(flagSet)

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return err
		}

		return &exitError{code: exitUsage, err: err}
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return pflag.ErrHelp
	}

	if opts.listVariants {
		listVariants(stdout)
		return nil
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return &exitError{code: exitUsage, err: err}
		}

		cfg = loaded
	}

	opts.apply(flagSet, cfg)

	if err := cfg.Validate(); err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	positional := flagSet.Args()
	if len(positional) == 0 {
		return usageError("missing TYPE argument")
	}

	variant, err := variable.ParseVariant(cfg.Variant)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	params := positional[1:]
	if len(params) == 0 {
		params = configParams(variant, cfg)
	}

	lineSep, _ := cfg.LineSep()

	tm, ref, err := openModel(cfg, model.TypeRef(positional[0]), logger)
	if err != nil {
		return err
	}

	if opts.dump || opts.explain {
		if err := inspect(tm, ref, variant, opts, stderr); err != nil {
			return err
		}
	}

	resolver := variable.NewResolver(tm,
		variable.WithLineSeparator(lineSep),
		variable.WithLogger(logger))

	result, err := resolver.Resolve(variant, ref, params)
	if err != nil {
		return err
	}

	if !result.Applicable {
		return &exitError{
			code: exitNotApplicable,
			err: fmt.Errorf("%s takes %d parameters, got %d: %w",
				variant, variant.Arity(), len(params), expand.ErrNotApplicable),
		}
	}

	return writeResult(opts.output, result.Text, stdout)
}

// configParams builds positional parameters from config values.
func configParams(v variable.Variant, cfg *config.Config) []string {
	if v == variable.BeanFieldsNewline {
		return []string{cfg.Template, cfg.Separator, fmt.Sprint(cfg.ForceNewline)}
	}

	return []string{cfg.Template, cfg.Separator}
}

// inspect writes the --dump and --explain reports for ref. Methods are
// listed only when the variant's strategy uses them. A model failure is
// reported as an error diagnostic and returned.
func inspect(tm model.TypeModel, ref model.TypeRef, v variable.Variant, opts options, w io.Writer) error {
	strategy := v.Strategy()

	var diags diagnostic.Diagnostics

	fields, methods, err := listMembers(tm, ref, strategy)
	if err != nil {
		diags.AddError(diagnostic.CodeModelUnavailable, "members cannot be listed", ref.String(), "")
	} else {
		if opts.dump {
			spew.Fdump(w, fields, methods, strategy.Build(fields, methods))
		}

		if opts.explain && strategy.NeedsMethods {
			diags.Merge(resolve.Explain(ref, fields, methods))
		}
	}

	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %w", diags.Error(), err)
	}

	return nil
}

func listMembers(tm model.TypeModel, ref model.TypeRef, strategy resolve.Strategy) ([]model.Field, []model.Method, error) {
	fields, err := tm.Fields(ref)
	if err != nil {
		return nil, nil, model.Unavailable(ref, model.OpFields, err)
	}

	if !strategy.NeedsMethods {
		return fields, nil, nil
	}

	methods, err := tm.Methods(ref)
	if err != nil {
		return nil, nil, model.Unavailable(ref, model.OpMethods, err)
	}

	return fields, methods, nil
}

func listVariants(w io.Writer) {
	for _, v := range variable.Variants() {
		fmt.Fprintf(w, "%-22s %d params  %v\n", v, v.Arity(), v.Placeholders())
	}
}

// File permission for --output.
const filePerm = 0o644

func writeResult(path, text string, stdout io.Writer) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, text)
		return err
	}

	if err := os.WriteFile(path, []byte(text+"\n"), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
