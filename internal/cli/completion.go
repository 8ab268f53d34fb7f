package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry
// there.
type FlagCompletion struct {
	Long      string   // long flag name without dashes
	Short     string   // short flag without the dash
	Help      string   // description text
	Values    []string // suggested values (nil = none or boolean)
	ValueName string   // label for the value in zsh; empty for booleans
	IsFile    bool     // the flag takes a file path
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "base", Help: "Radix of operands and results", Values: []string{"2", "8", "10", "16", "36"}, ValueName: "radix"},
	{Long: "rounding", Short: "r", Help: "Rounding mode", Values: []string{"down", "up", "floor", "ceiling", "nearest", "exact"}, ValueName: "mode"},
	{Long: "samples", Help: "Random samples per property", Values: []string{"100", "2000", "10000"}, ValueName: "count"},
	{Long: "max-bits", Help: "Maximum operand bits", Values: []string{"128", "512", "4096"}, ValueName: "bits"},
	{Long: "workers", Help: "Self-check workers", ValueName: "count"},
	{Long: "seed", Help: "Self-check seed", ValueName: "seed"},
	{Long: "timeout", Help: "Maximum run time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "json", Help: "JSON output"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "tui", Help: "Show a live dashboard during a check"},
	{Long: "metrics-addr", Help: "Serve Prometheus metrics on this address", ValueName: "address"},
	{Long: "output", Short: "o", Help: "Write the check report to a file", IsFile: true, ValueName: "file"},
}

var completionCommands = []string{"eval", "check", "ops", "repl", "completion"}

// GenerateCompletion writes a completion script for shell. ops lists the
// operation names offered after "eval".
func GenerateCompletion(out io.Writer, shell string, ops []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(ops)
	case "zsh":
		script = zshCompletion(ops)
	case "fish":
		script = fishCompletion(ops)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion(ops []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		var names []string
		if f.Long != "" {
			names = append(names, "--"+f.Long, "-"+f.Long)
		}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
		opts = append(opts, names...)
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"))
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				strings.Join(names, "|"), strings.Join(f.Values, " "))
		}
	}

	return fmt.Sprintf(`# Bash completion script for limbcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_limbcalc_completions() {
    local cur prev opts commands ops
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    commands="%s"
    ops="%s"

    case "${prev}" in
%s        eval)
            COMPREPLY=( $(compgen -W "${ops}" -- "${cur}") )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
    else
        COMPREPLY=( $(compgen -W "${commands}" -- "${cur}") )
    fi
}

complete -F _limbcalc_completions limbcalc
`, strings.Join(opts, " "), strings.Join(completionCommands, " "), strings.Join(ops, " "), cases.String())
}

// zshArgEntry formats a flag as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}
	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func zshCompletion(ops []string) string {
	args := make([]string, 0, len(flagRegistry)+2)
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}
	args = append(args,
		fmt.Sprintf("        '1:command:(%s)'", strings.Join(completionCommands, " ")),
		"        '*::operand:->operand'")

	return fmt.Sprintf(`#compdef limbcalc

# Zsh completion script for limbcalc
# Place this file in $fpath as _limbcalc

_limbcalc() {
    local state
    local -a ops
    ops=(%s)

    _arguments -s \
%s

    case $state in
        operand)
            case $words[1] in
                eval) (( CURRENT == 2 )) && _describe 'operation' ops ;;
                completion) _values 'shell' bash zsh fish ;;
            esac
            ;;
    esac
}

_limbcalc "$@"
`, strings.Join(ops, " "), strings.Join(args, " \\\n"))
}

func fishCompletion(ops []string) string {
	lines := []string{
		"# Fish completion script for limbcalc",
		"# Add this to ~/.config/fish/completions/limbcalc.fish",
		"",
		"complete -c limbcalc -f",
		"",
		"# Commands",
		fmt.Sprintf("complete -c limbcalc -n '__fish_use_subcommand' -a '%s'", strings.Join(completionCommands, " ")),
		fmt.Sprintf("complete -c limbcalc -n '__fish_seen_subcommand_from eval' -a '%s'", strings.Join(ops, " ")),
		"complete -c limbcalc -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'",
		"",
		"# Flags",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c limbcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
