package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-breed-identifier/internal/domain/breeds"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown export format")

// NewGenerateCmd regenera el catálogo de 37 razas y lo persiste (pisa lo que haya).
func NewGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the default 37-breed catalog and save it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closer, err := openService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			c, err := svc.GenerateDefault(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d breeds\n", len(c))
			return nil
		},
	}
}

// NewInitCmd genera el catálogo solo si todavía no existe.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the default catalog if none exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closer, err := openService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			c, generated, err := svc.Bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			if generated {
				fmt.Fprintf(cmd.OutOrStdout(), "Generated %d breeds\n", len(c))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog already present (%d breeds)\n", len(c))
			}
			return nil
		},
	}
}

func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one breed record with defaults applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closer, err := openService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			rec, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			asMarkdown, _ := cmd.Flags().GetBool("markdown")
			if asMarkdown {
				return breeds.RenderMarkdown(cmd.OutOrStdout(), rec)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "    ")
			return enc.Encode(map[string]breeds.Record{rec.Name: rec})
		},
	}
	cmd.Flags().BoolP("markdown", "m", false, "render the record as a markdown card")
	return cmd
}

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole catalog as json, yaml or markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			format = strings.ToLower(strings.TrimSpace(format))

			svc, closer, err := openService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			c, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "    ")
				return enc.Encode(c)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(c); err != nil {
					return err
				}
				return enc.Close()
			case "markdown":
				return breeds.RenderCatalogMarkdown(out, c)
			default:
				return fmt.Errorf("%w: %q (json, yaml, markdown)", errUnknownFormat, format)
			}
		},
	}
	cmd.Flags().StringP("format", "f", "json", "output format: json, yaml or markdown")
	return cmd
}

func NewClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the breed class names in classifier order",
		Run: func(cmd *cobra.Command, _ []string) {
			for i, name := range breeds.ClassNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i, name)
			}
		},
	}
}
