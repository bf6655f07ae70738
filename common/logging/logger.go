package logging

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// SetupLevel sets the global log level. Logging stays off unless verbose is set,
// so that stdout and stderr carry only command results.
func SetupLevel(verbose bool, level string) error {
	if !verbose {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

// NewLogger returns a console logger of the component writing to stderr.
func NewLogger(component string) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd()))
	return NewConsoleLogger(component, os.Stderr, noColor)
}

func NewConsoleLogger(component string, out io.Writer, noColor bool) zerolog.Logger {
	bold := color.New(color.Bold)
	if noColor {
		bold.DisableColor()
	} else {
		bold.EnableColor()
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			FieldComponent,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{FieldComponent},
		FormatPrepare: func(event map[string]any) error {
			if component, ok := event[FieldComponent]; ok {
				event[FieldComponent] = bold.Sprintf("[%v]", component)
			}
			return nil
		},
	}

	return zerolog.New(writer).
		With().
		Timestamp().
		Str(FieldComponent, component).
		Logger()
}
