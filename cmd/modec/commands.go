package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	modec "github.com/karasuda/modec"
	tomlsrc "github.com/karasuda/modec/source/toml"
	yamlsrc "github.com/karasuda/modec/source/yaml"
)

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <keypath>",
		Short: "Resolve a dot-separated key path against a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			raw, ok := doc.Lookup(args[1])
			if !ok {
				return fmt.Errorf("no value at %q", args[1])
			}
			return printJSON(cmd, raw)
		},
	}
}

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-emit a document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}

func loadDocument(cmd *cobra.Command, path string) (modec.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = formatFromExtension(path)
	}
	src, err := sourceFor(format, data)
	if err != nil {
		return nil, err
	}
	raw, err := src.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: not a key-value document", path)
	}
	return modec.Document(doc), nil
}

func sourceFor(format string, data []byte) (modec.Source, error) {
	switch format {
	case "json":
		return modec.JSONBytes(data), nil
	case "yaml":
		return yamlsrc.Bytes(data), nil
	case "toml":
		return tomlsrc.Bytes(data), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want json, yaml, or toml)", format)
	}
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
