// Inspiration came from a project known as zap-pretty: https://github.com/maoueh/zap-pretty
// Instead of a cli tool however, this is a native encoder implementing the zapcore.Encoder interface.
// The entry header is colorized here; structured fields are left to zap's JSON encoder.

package zappretty

import (
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/rbset/errsync"
)

const (
	// EncoderName is the value of zap.Config.Encoding that selects this encoder.
	EncoderName = "cli"

	timeFormat = "2006-01-02 15:04:05 MST"
)

var (
	bufPool      = buffer.NewPool()
	registerOnce errsync.Once
	levelColor   = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the "cli" encoder available to zap.Config. It is safe to
// call more than once; only the first call registers.
func Register() error {
	return registerOnce.Do(func() error {
		return zap.RegisterEncoder(EncoderName, func(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewCLIEncoder(cfg), nil
		})
	})
}

type cliEncoder struct {
	// fields encodes context and per-entry fields as a JSON object.
	zapcore.Encoder

	cfg zapcore.EncoderConfig
}

func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.SkipLineEnding {
		cfg.LineEnding = ""
	} else if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	fields := cfg
	fields.TimeKey = ""
	fields.LevelKey = ""
	fields.NameKey = ""
	fields.CallerKey = ""
	fields.FunctionKey = ""
	fields.MessageKey = ""
	fields.StacktraceKey = ""
	fields.SkipLineEnding = true

	return &cliEncoder{
		Encoder: zapcore.NewJSONEncoder(fields),
		cfg:     cfg,
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
		cfg:     enc.cfg,
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	body, err := enc.Encoder.EncodeEntry(zapcore.Entry{}, fields)
	if err != nil {
		return nil, err
	}
	defer body.Free()

	line := bufPool.Get()

	if enc.cfg.TimeKey != "" {
		line.AppendString(color.New(color.FgWhite).Sprintf("[%s]", entry.Time.Format(timeFormat)))
		line.AppendByte(' ')
	}

	if enc.cfg.LevelKey != "" {
		line.AppendString(color.New(levelColor[entry.Level]).Sprintf("%-5s", entry.Level.CapitalString()))
		line.AppendByte(' ')
	}

	if entry.LoggerName != "" && enc.cfg.NameKey != "" {
		line.AppendString(color.New(color.FgHiBlack).Sprint(entry.LoggerName))
		line.AppendByte(' ')
	}

	if entry.Caller.Defined && enc.cfg.CallerKey != "" {
		line.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", entry.Caller.TrimmedPath()))
		line.AppendByte(' ')
	}

	if enc.cfg.MessageKey != "" {
		line.AppendString(color.New(color.FgHiWhite).Sprint(entry.Message))
	}

	if b := body.String(); b != "{}" {
		line.AppendByte(' ')
		line.AppendString(color.New(color.FgBlue).Sprint(b))
	}

	if entry.Stack != "" && enc.cfg.StacktraceKey != "" {
		line.AppendString(fmt.Sprintf("\n%s", entry.Stack))
	}

	line.AppendString(enc.cfg.LineEnding)

	return line, nil
}
