package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgassets <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inspect      List images with their size and color mode")
	fmt.Fprintln(w, "  normalize    Rename images to safe names and re-encode them as PNG")
	fmt.Fprintln(w, "  pad          Center an image on a square canvas")
	fmt.Fprintln(w, "  config       Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'imgassets help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and pool details")
	fmt.Fprintln(w, "      --strict              Exit 5 when any file fails")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgassets inspect [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the dimensions and color mode of every PNG/JPEG file in dir.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Image directory (default: images.dir, ./assets/images)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel file reads (0 = auto)")
	fmt.Fprintln(w, "      --verify              Decode pixel data, not just headers")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printNormalizeUsage prints usage for the normalize command.
func printNormalizeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgassets normalize [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rename every PNG/JPEG file in dir to lowercase [a-z0-9_.] and")
	fmt.Fprintln(w, "re-encode it as PNG with alpha. Originals are deleted once the new")
	fmt.Fprintln(w, "file is written.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Image directory (default: images.dir, ./assets/images)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --prefix <s>          Prefix for names not starting with a letter (default: img_)")
	fmt.Fprintln(w, "      --on-collision <s>    overwrite (default), skip, suffix")
	fmt.Fprintln(w, "  -n, --dry-run             Show the plan without touching files")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPadUsage prints usage for the pad command.
func printPadUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgassets pad [src] [dst] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Center src on a square canvas and save it to dst. Sources larger")
	fmt.Fprintln(w, "than the square are cropped unless --fit is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  src    Source image (default: pad.input)")
	fmt.Fprintln(w, "  dst    Destination; .jpg/.jpeg writes JPEG, anything else PNG")
	fmt.Fprintln(w, "         (default: pad.output, or <src>_square when only src is given)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --size <n>            Square side in pixels (default: 1024)")
	fmt.Fprintln(w, "      --fill <color>        transparent, #RGB, #RGBA, #RRGGBB, #RRGGBBAA")
	fmt.Fprintln(w, "      --fit                 Scale down sources larger than the square")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: imgassets config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after merging defaults, the config file,")
	fmt.Fprintln(w, "and IMGASSETS_* environment variables.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "inspect":
		printInspectUsage(env.Stdout)
	case "normalize":
		printNormalizeUsage(env.Stdout)
	case "pad":
		printPadUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: imgassets version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: imgassets help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
