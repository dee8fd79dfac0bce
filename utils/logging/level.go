// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level extends the zap levels with the more verbose Trace, Debug and Verbo
// levels.
type Level zapcore.Level

const (
	Verbo Level = Level(zapcore.DebugLevel) - 2
	Debug Level = Level(zapcore.DebugLevel) - 1
	Trace Level = Level(zapcore.DebugLevel)
	Info  Level = Level(zapcore.InfoLevel)
	Warn  Level = Level(zapcore.WarnLevel)
	Error Level = Level(zapcore.ErrorLevel)
	Fatal Level = Level(zapcore.FatalLevel)
	Off   Level = Level(zapcore.FatalLevel) + 1
)

// Every rendered level is padded or truncated to this width.
const alignedStringLen = 5

const (
	verboStr   = "VERBO"
	debugStr   = "DEBUG"
	traceStr   = "TRACE"
	infoStr    = "INFO"
	warnStr    = "WARN"
	errorStr   = "ERROR"
	fatalStr   = "FATAL"
	offStr     = "OFF"
	unknownStr = "UNKNO"
)

var levelNames = map[Level]string{
	Verbo: verboStr,
	Debug: debugStr,
	Trace: traceStr,
	Info:  infoStr,
	Warn:  warnStr,
	Error: errorStr,
	Fatal: fatalStr,
	Off:   offStr,
}

// ToLevel parses the case insensitive name of a level.
func ToLevel(l string) (Level, error) {
	name := strings.ToUpper(l)
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return Off, fmt.Errorf("unknown log level: %q", l)
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return unknownStr
}

// AlignedString is the name of the level as it appears in log lines. The
// returned value always has length [alignedStringLen].
func (l Level) AlignedString() string {
	return fmt.Sprintf("%-*.*s", alignedStringLen, alignedStringLen, l.String())
}

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	level, err := ToLevel(str)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func alignedLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}
