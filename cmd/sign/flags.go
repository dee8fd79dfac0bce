// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sign

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ava-labs/commitment-signer/config"
	"github.com/ava-labs/commitment-signer/utils/formatting"
)

const (
	MessageEncodingKey = "message-encoding"
	PrintMetricsKey    = "print-metrics"

	UTF8Encoding = "utf8"
	HexEncoding  = "hex"
)

var (
	errWrongNumArgs           = errors.New("expected exactly one message")
	errUnknownMessageEncoding = errors.New("unknown message encoding")
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(MessageEncodingKey, UTF8Encoding, fmt.Sprintf("Encoding of the message argument. Should be one of {%s, %s}", UTF8Encoding, HexEncoding))
	flags.Bool(PrintMetricsKey, false, "If true, write the signer metrics to stderr in the Prometheus text format")
}

type Config struct {
	config.Config
	Message      []byte
	PrintMetrics bool
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: got %d", errWrongNumArgs, len(args))
	}

	baseConfig, err := config.ParseFlags(flags)
	if err != nil {
		return nil, err
	}

	messageEncoding, err := flags.GetString(MessageEncodingKey)
	if err != nil {
		return nil, err
	}

	message, err := ParseMessage(messageEncoding, args[0])
	if err != nil {
		return nil, err
	}

	printMetrics, err := flags.GetBool(PrintMetricsKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Config:       baseConfig,
		Message:      message,
		PrintMetrics: printMetrics,
	}, nil
}

// ParseMessage decodes [message] according to [encoding]. Hex messages must be
// 0x prefixed and carry no checksum.
func ParseMessage(encoding, message string) ([]byte, error) {
	switch encoding {
	case UTF8Encoding:
		return []byte(message), nil
	case HexEncoding:
		return formatting.Decode(formatting.HexNC, message)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownMessageEncoding, encoding)
	}
}
