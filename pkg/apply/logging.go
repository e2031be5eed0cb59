package apply

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Unchanged files are reported through the debug printer
	pterm.EnableDebugMessages()
}

// 📢 UserLogger narrates run progress for humans
type UserLogger struct {
	log    zerolog.Logger // for structured debug/error logging
	out    io.Writer      // overrides pterm's default output when set
	dryRun bool
}

// 🎯 NewUserLogger creates a user logger bound to the context logger
func NewUserLogger(ctx context.Context, dryRun bool) *UserLogger {
	return &UserLogger{
		log:    *zerolog.Ctx(ctx),
		dryRun: dryRun,
	}
}

// 🎨 printer binds a prefix printer to the logger output
func (u *UserLogger) printer(base pterm.PrefixPrinter, emoji string) *pterm.PrefixPrinter {
	p := base.WithPrefix(pterm.Prefix{Text: emoji})
	if u.out != nil {
		p = p.WithWriter(u.out)
	}
	return p
}

// 📝 LogFileResult logs the outcome of one file with appropriate emoji and formatting
func (u *UserLogger) LogFileResult(res FileResult) {
	var action string
	var printer *pterm.PrefixPrinter
	switch res.Outcome {
	case OutcomeChanged:
		action = "Updated"
		if u.dryRun {
			action = "Would update"
		}
		printer = u.printer(pterm.Success, "🔄")
	case OutcomeError:
		action = "Failed"
		printer = u.printer(pterm.Error, "❌")
	default:
		action = "Unchanged"
		printer = u.printer(pterm.Debug, "⏭️")
	}

	msg := fmt.Sprintf("%s %s", action, res.Path)
	if res.Matches > 0 {
		msg += fmt.Sprintf(" (%d matches)", res.Matches)
	}

	if res.Err != nil {
		printer.Println(msg)
		u.errorDetail(res.Err)
		u.log.Error().Err(res.Err).Msg(msg) // also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // also log to zerolog for debugging
	}
}

// 📊 LogRunSummary logs the aggregate outcome of a run
func (u *UserLogger) LogRunSummary(s *Summary) {
	verb := "changed"
	if u.dryRun {
		verb = "would change"
	}

	msg := fmt.Sprintf("%d files scanned, %d %s, %d matches", s.Scanned, s.Changed, verb, s.Matches)
	if s.Errors > 0 {
		msg += fmt.Sprintf(", %d failed", s.Errors)
	}

	u.printer(pterm.Info, "📦").Println(msg)
	u.log.Info().Msg(msg)
}

func (u *UserLogger) errorDetail(err error) {
	p := pterm.Error
	if u.out != nil {
		p = *p.WithWriter(u.out)
	}
	p.Println(err)
}
