// Command keyplan is a small demo/debug CLI: it plans a typing simulation
// for a piece of text and prints a human-readable trace of the resulting
// event stream, or a duration/WPM estimate.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Nomadcxx/keyplan/config"
	"github.com/Nomadcxx/keyplan/estimate"
	"github.com/Nomadcxx/keyplan/planner"
	"github.com/Nomadcxx/keyplan/typing"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	charStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	pauseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func showHelp() {
	fmt.Println("Usage: keyplan [options] \"text to type\"")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -mode string")
	fmt.Println("        constant or dynamic speed mode (default: dynamic)")
	fmt.Println("  -speed float")
	fmt.Println("        base words per minute (default: 65)")
	fmt.Println("  -mistakes float")
	fmt.Println("        mistake rate in [0,1] (default: 0.04)")
	fmt.Println("  -seed uint")
	fmt.Println("        explicit RNG seed (default: derived from text and time)")
	fmt.Println("  -estimate")
	fmt.Println("        print a duration estimate instead of the event trace")
	fmt.Println("  -runs int")
	fmt.Println("        number of seeds to average for -estimate (default: 5)")
	fmt.Println("  -target float")
	fmt.Println("        target seconds; solves for the WPM that achieves it")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println(`  keyplan "The quick brown fox jumps over the lazy dog."`)
	fmt.Println(`  keyplan -mode constant -speed 90 "Hello, world!"`)
	fmt.Println(`  keyplan -estimate -runs 10 "A longer passage to time."`)
	fmt.Println(`  keyplan -target 12.5 "Type this in about twelve seconds."`)
}

func main() {
	mode := flag.String("mode", "dynamic", "constant or dynamic speed mode")
	speed := flag.Float64("speed", 65, "base words per minute")
	mistakes := flag.Float64("mistakes", 0.04, "mistake rate in [0,1]")
	seedFlag := flag.Uint64("seed", 0, "explicit RNG seed (0 = derived)")
	estimateOnly := flag.Bool("estimate", false, "print a duration estimate instead of the event trace")
	runs := flag.Int("runs", 5, "number of seeds to average for -estimate")
	target := flag.Float64("target", 0, "target seconds; solves for the WPM that achieves it")
	help := flag.Bool("h", false, "show help")
	flag.BoolVar(help, "help", false, "show help")
	flag.Usage = showHelp
	flag.Parse()

	if *help || flag.NArg() == 0 {
		showHelp()
		return
	}
	text := strings.Join(flag.Args(), " ")

	opts := config.Defaults()
	if *mode == "constant" {
		opts.SpeedMode = config.SpeedConstant
	} else {
		opts.SpeedMode = config.SpeedDynamic
	}
	opts.Speed = *speed
	opts.MistakeRate = *mistakes
	if *seedFlag != 0 {
		seed := uint32(*seedFlag)
		opts.Seed = &seed
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	switch {
	case *target > 0:
		wpm := estimate.SolveWPM(text, opts, *target, 10, 300, *runs)
		fmt.Printf("solved WPM: %.1f (target %.2fs)\n", wpm, *target)
	case *estimateOnly:
		res := estimate.Estimate(text, opts, *runs)
		if isTTY {
			fmt.Println(headingStyle.Render("estimate"))
		}
		fmt.Printf("mean: %.2fs  min: %.2fs  max: %.2fs  (runs=%d)\n", res.Mean, res.Min, res.Max, *runs)
	default:
		p := planner.Plan(text, opts)
		printTrace(p, isTTY)
	}
}

func printTrace(p typing.Plan, styled bool) {
	if styled {
		fmt.Println(headingStyle.Render(fmt.Sprintf("plan (seed=%d, %.2fs, %d events)", p.Seed, p.EstimatedSecs, len(p.Events))))
	} else {
		fmt.Printf("plan (seed=%d, %.2fs, %d events)\n", p.Seed, p.EstimatedSecs, len(p.Events))
	}

	for _, e := range p.Events {
		switch ev := e.(type) {
		case typing.CharEvent:
			line := fmt.Sprintf("char  %q  +%.3fs", ev.Ch, ev.DelayAfter)
			if styled {
				line = charStyle.Render(line)
			}
			fmt.Println(line)
		case typing.KeyEvent:
			line := fmt.Sprintf("key   %-8s +%.3fs", ev.Key, ev.DelayAfter)
			if styled {
				line = keyStyle.Render(line)
			}
			fmt.Println(line)
		case typing.PauseEvent:
			line := fmt.Sprintf("pause %-12s %.3fs", ev.Reason, ev.Seconds)
			if styled {
				line = pauseStyle.Render(line)
			}
			fmt.Println(line)
		}
	}

	if len(p.Warnings) > 0 {
		fmt.Println()
		for _, w := range p.Warnings {
			if styled {
				fmt.Println(warnStyle.Render(w))
			} else {
				fmt.Println(w)
			}
		}
	}
}
