package banner

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultSubcommandAnnotation names, on a parent command, the subcommand
// that runs when none is given
const DefaultSubcommandAnnotation = "cork.default-subcommand"

// FromCobra builds a command descriptor from a cobra command
func FromCobra(c *cobra.Command) Command {
	cmd := Command{
		FullCommand:       c.CommandPath(),
		Description:       c.Long,
		Summary:           c.Short,
		DefaultSubcommand: c.Annotations[DefaultSubcommandAnnotation],
		Arguments:         ParseUse(c.Use),
	}

	for _, sub := range c.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		cmd.Subcommands = append(cmd.Subcommands, Subcommand{Name: sub.Name(), Summary: sub.Short})
	}

	addFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			cmd.Options = append(cmd.Options, flagOption(f))
		})
	}
	addFlags(c.NonInheritedFlags())
	addFlags(c.InheritedFlags())

	return cmd
}

func flagOption(f *pflag.Flag) Option {
	name := "--" + f.Name
	if f.Shorthand != "" && f.ShorthandDeprecated == "" {
		name = "-" + f.Shorthand + ", " + name
	}

	valueName, usage := pflag.UnquoteUsage(f)
	if valueName != "" && f.NoOptDefVal == "" {
		name += "=" + strings.ToUpper(valueName)
	}
	return Option{Name: name, Description: usage}
}

// ParseUse extracts the positional arguments from a cobra Use line such as
// "wrap <file> [more...] a|b". The command name, flags and the
// "[flags]" and "[command]" placeholders are skipped.
func ParseUse(use string) []Argument {
	fields := strings.Fields(use)
	if len(fields) < 2 {
		return nil
	}

	var args []Argument
	for _, field := range fields[1:] {
		lower := strings.ToLower(field)
		if lower == "[flags]" || lower == "[command]" || strings.HasPrefix(field, "-") || strings.HasPrefix(field, "[-") {
			continue
		}

		if field == Ellipsis || field == "["+Ellipsis+"]" {
			if len(args) > 0 {
				args[len(args)-1].Repeatable = true
			}
			continue
		}

		arg := Argument{Required: true}
		if strings.HasPrefix(field, "[") && strings.HasSuffix(field, "]") {
			arg.Required = false
			field = field[1 : len(field)-1]
		}
		if strings.HasSuffix(field, Ellipsis) {
			arg.Repeatable = true
			field = strings.TrimSuffix(field, Ellipsis)
		}
		field = strings.TrimSuffix(strings.TrimPrefix(field, "<"), ">")

		for _, name := range strings.Split(field, "|") {
			if name = strings.Trim(name, "<>"); name != "" {
				arg.Names = append(arg.Names, name)
			}
		}
		if len(arg.Names) > 0 {
			args = append(args, arg)
		}
	}
	return args
}

// HelpFunc returns a cobra help function printing the banner of the command
// help was asked for
func HelpFunc(f *Formatter) func(*cobra.Command, []string) {
	return func(c *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(c.OutOrStdout(), f.Format(FromCobra(c)))
	}
}
