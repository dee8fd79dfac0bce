// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("signer", NewWrappedCore(Trace, buf, JSON.ConsoleEncoder()))

	log.Debug("hidden")
	require.Zero(buf.Len())
	require.False(log.Enabled(Debug))
	require.True(log.Enabled(Trace))

	log.Trace("shown", zap.String("key", "value"))
	var entry map[string]any
	require.NoError(json.Unmarshal(buf.Bytes(), &entry))
	require.Equal("shown", entry["msg"])
	require.Equal(traceStr, entry["level"])
	require.Equal("signer", entry["logger"])
	require.Equal("value", entry["key"])

	buf.Reset()
	log.SetLevel(Verbo)
	log.With(zap.Int("round", 1)).Verbo("verbose")
	require.Contains(buf.String(), `"round":1`)

	// Fatal entries never terminate the process.
	buf.Reset()
	log.Fatal("fatal")
	require.Contains(buf.String(), fatalStr)
}

func TestNewFromConfigWritesFile(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()
	config.LoggerName = "commitment-signer"
	config.DisplayLevel = Off
	config.LogLevel = Debug

	log := NewFromConfig(config)
	log.Debug("written to file")
	log.Stop()

	contents, err := os.ReadFile(filepath.Join(config.Directory, "commitment-signer.log"))
	require.NoError(err)
	require.Contains(string(contents), "written to file")
}

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo} {
		parsed, err := ToLevel(strings.ToLower(level.String()))
		require.NoError(err)
		require.Equal(level, parsed)
		require.Len(level.AlignedString(), alignedStringLen)
	}

	_, err := ToLevel("loud")
	require.Error(err)

	require.Equal(traceStr, Trace.String())
	require.Equal(fatalStr, Fatal.String())
	require.Equal(unknownStr, Level(Off+1).String())
	require.Equal("INFO ", Info.AlignedString())
	require.Equal("UNKNO", Level(Off+1).AlignedString())

	var level Level
	require.NoError(json.Unmarshal([]byte(`"debug"`), &level))
	require.Equal(Debug, level)

	format, err := ToFormat("json")
	require.NoError(err)
	require.Equal(JSON, format)

	_, err = ToFormat("xml")
	require.Error(err)
}
