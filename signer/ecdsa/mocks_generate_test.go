// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecdsa

//go:generate go run github.com/golang/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/identity.go -mock_names=Identity=Identity . Identity
