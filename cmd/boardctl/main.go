// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pin Atlas

// Command boardctl encrypts and decrypts board files against a running
// board-vault server. It never handles key material itself: plaintext goes
// up, the sealed envelope comes back, and only the envelope touches disk.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pinatlas/board-vault/internal/adapter"
	"github.com/pinatlas/board-vault/internal/logger"
	"github.com/pinatlas/board-vault/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage:
  boardctl encrypt -in <board.json> [-out <file>] [-password <pass>] [-a <address>]
  boardctl decrypt -in <board.enc.json> [-out <file>] [-password <pass>] [-a <address>]
  boardctl version [-a <address>]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	log := logger.NewCLILogger("boardctl")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "encrypt":
		err = runEncrypt(ctx, os.Args[2:])
	case "decrypt":
		err = runDecrypt(ctx, os.Args[2:])
	case "version":
		err = runVersion(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Msg(os.Args[1] + " failed")
		os.Exit(1)
	}
}

type commonFlags struct {
	address  string
	in       string
	out      string
	password string
}

func parseFlags(name string, args []string) (commonFlags, error) {
	var f commonFlags

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.address, "a", "http://localhost:8080", "board-vault server address")
	fs.StringVar(&f.in, "in", "", "input file path")
	fs.StringVar(&f.out, "out", "", "output file path")
	fs.StringVar(&f.password, "password", "", "board protection password")

	if err := fs.Parse(args); err != nil {
		return commonFlags{}, err
	}

	return f, nil
}

func runEncrypt(ctx context.Context, args []string) error {
	f, err := parseFlags("encrypt", args)
	if err != nil {
		return err
	}
	if f.in == "" {
		return fmt.Errorf("encrypt: -in is required")
	}

	document, err := os.ReadFile(f.in)
	if err != nil {
		return fmt.Errorf("read board document: %w", err)
	}

	vault := adapter.NewHTTPVaultAdapter(adapter.HTTPClientConfig{BaseURL: f.address})
	envelope, err := vault.Encrypt(ctx, string(document), f.password)
	if err != nil {
		return err
	}

	target := f.out
	if target == "" {
		target = f.in
	}

	written, err := store.NewBoardFileStore().Save(ctx, target, envelope)
	if err != nil {
		return err
	}

	fmt.Println(written)

	return nil
}

func runDecrypt(ctx context.Context, args []string) error {
	f, err := parseFlags("decrypt", args)
	if err != nil {
		return err
	}
	if f.in == "" {
		return fmt.Errorf("decrypt: -in is required")
	}

	envelope, err := store.NewBoardFileStore().Load(ctx, f.in)
	if err != nil {
		return err
	}

	vault := adapter.NewHTTPVaultAdapter(adapter.HTTPClientConfig{BaseURL: f.address})
	document, err := vault.Decrypt(ctx, envelope, f.password)
	if err != nil {
		return err
	}

	rendered, err := renderDocument(document)
	if err != nil {
		return err
	}

	if f.out == "" {
		fmt.Println(string(rendered))
		return nil
	}

	if err = os.WriteFile(f.out, rendered, 0o600); err != nil {
		return fmt.Errorf("write decrypted board: %w", err)
	}

	fmt.Println(f.out)

	return nil
}

func runVersion(ctx context.Context, args []string) error {
	printBuildInfo()

	f, err := parseFlags("version", args)
	if err != nil {
		return err
	}

	vault := adapter.NewHTTPVaultAdapter(adapter.HTTPClientConfig{BaseURL: f.address})
	version, err := vault.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Server version: %s\n", version)

	return nil
}

// renderDocument turns the decrypted value back into bytes. Most boards
// come back as the original plaintext string and are emitted verbatim;
// password-protected boards arrive as a decoded object and are re-rendered
// as indented JSON.
func renderDocument(document any) ([]byte, error) {
	if text, ok := document.(string); ok {
		return []byte(text), nil
	}

	rendered, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render decrypted board: %w", err)
	}

	return rendered, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
